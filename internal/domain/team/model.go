package team

import (
	"strings"
	"unicode/utf8"
)

// Colors is a club's primary/secondary kit colour pair.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// DefaultColors is used for clubs without a known palette.
var DefaultColors = Colors{Primary: "#6B7280", Secondary: "#FFFFFF"}

const (
	placeholderPrefix = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='120' height='120'%3E%3Crect fill='%23374151' width='120' height='120'/%3E%3Ctext x='50%25' y='50%25' font-size='12' fill='%239CA3AF' text-anchor='middle' dy='.3em'%3E"
	placeholderSuffix = "%3C/text%3E%3C/svg%3E"
	placeholderRunes  = 3
)

// Logo returns the crest URL for a club, or an SVG placeholder carrying the
// first letters of the name when the club is unknown.
func Logo(name string) string {
	if url, ok := logos[name]; ok {
		return url
	}
	return Placeholder(name)
}

// HasLogo reports whether a real crest is known for the club.
func HasLogo(name string) bool {
	_, ok := logos[name]
	return ok
}

// Placeholder renders the data-URI badge for a club name.
func Placeholder(name string) string {
	initials := "?"
	if name != "" {
		initials = strings.ToUpper(firstRunes(name, placeholderRunes))
	}
	return placeholderPrefix + encodeURIComponent(initials) + placeholderSuffix
}

// ColorsFor returns the club palette; unknown clubs get DefaultColors and false.
func ColorsFor(name string) (Colors, bool) {
	if c, ok := colors[name]; ok {
		return c, true
	}
	return DefaultColors, false
}

func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// encodeURIComponent escapes everything except the unreserved URI marks.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

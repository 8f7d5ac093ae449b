package app

import (
	"net/url"
	"strings"
)

const (
	binaryResultParam    = "disable_prepared_binary_result"
	maxTracedQueryLength = 512
)

// DatabaseDSN returns the connection string handed to lib/pq and migrate.
// Poolers in transaction mode cannot keep binary prepared results, so the
// flag appends disable_prepared_binary_result=yes unless the URL sets it.
func DatabaseDSN(raw string, disableBinaryResult bool) string {
	if !disableBinaryResult {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Has(binaryResultParam) {
		return raw
	}
	query.Set(binaryResultParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// databaseName accepts URL and key=value DSNs.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			if name = strings.Trim(name, `"'`); name != "" {
				return name
			}
		}
	}
	return ""
}

// traceQuery collapses whitespace so statements read on one line in spans.
func traceQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + "..."
	}
	return query
}

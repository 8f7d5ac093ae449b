package news

import (
	"strings"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := map[string]Tag{
		"Arsenal complete transfer of winger":       TagTransfer,
		"Striker injured in training":               TagInjury,
		"Champions League draw made in Nyon":        TagUCL,
		"EPL weekend preview":                       TagEPL,
		"Breaking: stadium evacuated":               TagBreaking,
		"Dramatic draw at Anfield":                  TagMatch,
		"Manager praises youngsters":                TagManager,
		"Federation publishes annual report":        TagNews,
		"Premier League side sign teenage defender": TagTransfer,
		"Premier League clubs out of pocket":        TagInjury,
	}

	for title, want := range cases {
		if got := Classify(title); got != want {
			t.Fatalf("Classify(%q) = %s, want %s", title, got, want)
		}
	}
}

func TestFormatRecency(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ts   time.Time
		want string
	}{
		{ts: time.Time{}, want: "Recently"},
		{ts: now.Add(-59 * time.Minute), want: "59m ago"},
		{ts: now.Add(-60 * time.Minute), want: "1h ago"},
		{ts: now.Add(-23*time.Hour - 59*time.Minute), want: "23h ago"},
		{ts: now.Add(-24 * time.Hour), want: "1d ago"},
		{ts: now.Add(-6 * 24 * time.Hour), want: "6d ago"},
		{ts: now.Add(-7 * 24 * time.Hour), want: "3/3/2025"},
		{ts: now.Add(5 * time.Minute), want: "0m ago"},
	}

	for _, tc := range cases {
		if got := FormatRecency(tc.ts, now); got != tc.want {
			t.Fatalf("FormatRecency(%s) = %q, want %q", tc.ts, got, tc.want)
		}
	}
}

func TestParseRecency_Malformed(t *testing.T) {
	t.Parallel()

	now := time.Now()
	if got := ParseRecency("", now); got != RecentlyLabel {
		t.Fatalf("empty = %q", got)
	}
	if got := ParseRecency("yesterday-ish", now); got != RecentlyLabel {
		t.Fatalf("malformed = %q", got)
	}
	if got := ParseRecency(now.Add(-2*time.Hour).Format(time.RFC3339), now); got != "2h ago" {
		t.Fatalf("valid = %q", got)
	}
}

func TestArticleID_StableAndSourceScoped(t *testing.T) {
	t.Parallel()

	a := ArticleID(SourceBBCSport, "Title one is long enough")
	b := ArticleID(SourceBBCSport, "Title one is long enough")
	c := ArticleID(SourceSkySports, "Title one is long enough")

	if a != b {
		t.Fatalf("ids differ across calls: %s vs %s", a, b)
	}
	if a == c {
		t.Fatalf("ids should differ across sources")
	}
	if len(a) != 16 {
		t.Fatalf("unexpected id length %d", len(a))
	}
}

func TestFallback(t *testing.T) {
	t.Parallel()

	items := Fallback()
	if len(items) != MaxArticles {
		t.Fatalf("expected %d fallback items, got %d", MaxArticles, len(items))
	}

	wantTags := []Tag{TagEPL, TagBreaking, TagTransfer, TagUCL, TagInjury, TagManager, TagMatch, TagNews}
	for i, item := range items {
		if item.Tag != wantTags[i] {
			t.Fatalf("item %d tag = %s, want %s", i, item.Tag, wantTags[i])
		}
		if item.Source != SourceFootballNews || item.Link != "#" {
			t.Fatalf("item %d has unexpected source/link: %+v", i, item)
		}
	}
	if items[0].Time != "1h ago" || items[7].Time != "8h ago" {
		t.Fatalf("unexpected times: %q, %q", items[0].Time, items[7].Time)
	}

	found, ok := FindByID(items, items[3].ID)
	if !ok || found.Title != items[3].Title {
		t.Fatalf("FindByID failed: %+v %v", found, ok)
	}
	if _, ok := FindByID(items, "missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestNewArticle(t *testing.T) {
	t.Parallel()

	a := NewArticle(SourceSkySports, Candidate{Title: "Coach signs new contract", Link: "https://x"})
	if a.Tag != TagTransfer {
		t.Fatalf("unexpected tag %s", a.Tag)
	}
	if a.Time != RecentlyLabel {
		t.Fatalf("expected Recently, got %q", a.Time)
	}
	if a.ID != ArticleID(SourceSkySports, "Coach signs new contract") {
		t.Fatalf("unexpected id %s", a.ID)
	}
}

func TestEnrich(t *testing.T) {
	t.Parallel()

	a := Article{Title: "Big win for the champions", Source: SourceBBCSport, Tag: TagMatch}
	e := Enrich(a)

	if e.Author != "BBC Sport Editorial Team" {
		t.Fatalf("unexpected author %q", e.Author)
	}
	wantSummary := "Match report: Big win for the champions. Another thrilling encounter in the beautiful game."
	if e.Summary != wantSummary {
		t.Fatalf("unexpected summary %q", e.Summary)
	}
	if !strings.HasPrefix(e.Content, wantSummary+"\n\n") {
		t.Fatalf("content should start with summary: %q", e.Content)
	}
	if parts := strings.Split(e.Content, "\n\n"); len(parts) != 5 {
		t.Fatalf("expected intro + 4 paragraphs, got %d", len(parts))
	}
	if Author(SourceSkySports) != "Sky Sports News" || Author(SourceFootballNews) != "Football News Team" {
		t.Fatalf("unexpected authors")
	}
}

func TestContent_UnknownTagUsesNewsBody(t *testing.T) {
	t.Parallel()

	got := Content("Something happened today", Tag("OTHER"))
	if !strings.HasPrefix(got, "Something happened today. Follow this story for more updates.\n\n") {
		t.Fatalf("unexpected intro: %q", got)
	}
	if !strings.HasSuffix(got, bodyTemplates[TagNews][3]) {
		t.Fatalf("expected NEWS body")
	}
}

package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/PriKalra/priyata-universe/internal/content"
)

var atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Priyata</title>
  <entry>
    <title>On Agents and Papers</title>
    <link rel="self" href="https://world.hey.com/priyata/feed.atom"/>
    <link rel="alternate" type="text/html" href="https://world.hey.com/priyata/on-agents-and-papers"/>
    <published>2025-10-14T09:00:00Z</published>
    <content type="html">&lt;p&gt;` + longBody + `&lt;/p&gt;&lt;img src="https://example.com/pic.jpg"/&gt;</content>
  </entry>
  <entry>
    <title>A Short Note</title>
    <link rel="alternate" href="https://world.hey.com/priyata/a-short-note"/>
    <published>2025-10-06T12:00:00Z</published>
    <summary type="html">&lt;p&gt;Just a short note.&lt;/p&gt;</summary>
  </entry>
  <entry>
    <title>Updated Only</title>
    <link rel="alternate" href="https://world.hey.com/priyata/updated-only"/>
    <updated>2025-09-01T08:30:00Z</updated>
    <summary>Carries only an updated date.</summary>
  </entry>
  <entry>
    <title></title>
    <link rel="alternate" href="https://world.hey.com/priyata/untitled"/>
    <published>2025-08-20T10:00:00Z</published>
    <summary>Entries without a title are skipped.</summary>
  </entry>
</feed>`

// 26 words x 10 chars keeps the plain text comfortably past the excerpt bound.
var longBody = strings.TrimSpace(strings.Repeat("wordsalad ", 26))

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(atomFixture))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchNormalizesEntries(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(Options{FeedURL: srv.URL, Retries: 0, Backoff: time.Millisecond})

	items := client.Fetch(context.Background())
	if len(items) != 3 {
		t.Fatalf("expected 3 items (untitled entry skipped), got %d", len(items))
	}

	first := items[0]
	if first.Title != "On Agents and Papers" {
		t.Errorf("unexpected title: %q", first.Title)
	}
	if first.Link != "https://world.hey.com/priyata/on-agents-and-papers" {
		t.Errorf("expected alternate link, got %q", first.Link)
	}
	if first.Date != "2025-10-14" {
		t.Errorf("expected date 2025-10-14, got %q", first.Date)
	}
	if first.Kind != content.KindBlog {
		t.Errorf("expected blog kind, got %q", first.Kind)
	}
	if first.Source != SourceName {
		t.Errorf("expected source %q, got %q", SourceName, first.Source)
	}
	if first.Image != "https://example.com/pic.jpg" {
		t.Errorf("expected embedded image, got %q", first.Image)
	}
	if first.Size != "large" {
		t.Errorf("expected first item size large, got %q", first.Size)
	}
	if items[1].Size != "small" || items[2].Size != "small" {
		t.Errorf("expected remaining items size small, got %q and %q", items[1].Size, items[2].Size)
	}
}

func TestFetchTruncatesLongExcerpt(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(Options{FeedURL: srv.URL, Backoff: time.Millisecond})

	items := client.Fetch(context.Background())
	if len(items) == 0 {
		t.Fatal("expected items")
	}

	got := items[0].Excerpt
	if !strings.HasSuffix(got, TruncationMarker) {
		t.Errorf("expected truncation marker suffix, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n != ExcerptLimit+1 {
		t.Errorf("expected excerpt length %d (bound plus marker), got %d", ExcerptLimit+1, n)
	}
}

func TestFetchKeepsShortExcerptExact(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(Options{FeedURL: srv.URL, Backoff: time.Millisecond})

	items := client.Fetch(context.Background())
	if len(items) < 2 {
		t.Fatal("expected at least 2 items")
	}
	if items[1].Excerpt != "Just a short note." {
		t.Errorf("expected exact excerpt without marker, got %q", items[1].Excerpt)
	}
}

func TestFetchDateFallsBackToUpdated(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(Options{FeedURL: srv.URL, Backoff: time.Millisecond})

	items := client.Fetch(context.Background())
	if len(items) < 3 {
		t.Fatal("expected at least 3 items")
	}
	if items[2].Date != "2025-09-01" {
		t.Errorf("expected updated-date fallback 2025-09-01, got %q", items[2].Date)
	}
}

func TestFetchLimit(t *testing.T) {
	srv := fixtureServer(t)
	client := NewClient(Options{FeedURL: srv.URL, Limit: 2, Backoff: time.Millisecond})

	items := client.Fetch(context.Background())
	if len(items) != 2 {
		t.Errorf("expected 2 items with limit, got %d", len(items))
	}
}

func TestFetchServerErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Options{FeedURL: srv.URL, Retries: 1, Backoff: time.Millisecond})
	if items := client.Fetch(context.Background()); len(items) != 0 {
		t.Errorf("expected empty result on server error, got %d items", len(items))
	}
}

func TestFetchMalformedPayloadReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	client := NewClient(Options{FeedURL: srv.URL, Backoff: time.Millisecond})
	if items := client.Fetch(context.Background()); len(items) != 0 {
		t.Errorf("expected empty result on malformed payload, got %d items", len(items))
	}
}

func TestFetchFallsBackToMirror(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer broken.Close()
	mirror := fixtureServer(t)

	client := NewClient(Options{
		FeedURL: broken.URL,
		Mirrors: []string{mirror.URL},
		Backoff: time.Millisecond,
	})
	items := client.Fetch(context.Background())
	if len(items) == 0 {
		t.Fatal("expected items from mirror endpoint")
	}
}

func TestEntryDateUnparsableFallsBackToToday(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>No Usable Date</title>
    <link rel="alternate" href="https://world.hey.com/priyata/no-usable-date"/>
    <published>not-a-date</published>
    <summary>Date strings that fail to parse fall back to today.</summary>
  </entry>
</feed>`))
	}))
	defer srv.Close()

	client := NewClient(Options{FeedURL: srv.URL, Backoff: time.Millisecond})
	items := client.Fetch(context.Background())
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	today := time.Now().Format(content.DateLayout)
	if items[0].Date != today {
		t.Errorf("expected fallback to today %s, got %q", today, items[0].Date)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"twelve chars", 6, "twelve" + TruncationMarker},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateUTF8(t *testing.T) {
	// Multi-byte runes must truncate by rune, not byte
	input := "こんにちは世界です"
	got := truncate(input, 5)
	want := "こんにちは" + TruncationMarker
	if got != want {
		t.Errorf("truncate(%q, 5) = %q, want %q", input, got, want)
	}
}

func TestExtractBody(t *testing.T) {
	text, image := extractBody(`<p>Hello   <b>world</b></p><img src="https://example.com/a.png"/><img src="https://example.com/b.png"/>`)
	if text != "Hello world" {
		t.Errorf("expected collapsed plain text, got %q", text)
	}
	if image != "https://example.com/a.png" {
		t.Errorf("expected first image, got %q", image)
	}
}

func TestExtractBodyNoMarkup(t *testing.T) {
	text, image := extractBody("plain  text only")
	if text != "plain text only" {
		t.Errorf("got %q", text)
	}
	if image != "" {
		t.Errorf("expected no image, got %q", image)
	}
}

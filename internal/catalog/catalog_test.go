package catalog

import (
	"testing"
	"time"

	"github.com/PriKalra/priyata-universe/internal/content"
)

func TestItemsNonEmpty(t *testing.T) {
	items := Items()
	if len(items) == 0 {
		t.Fatal("expected curated catalog to be non-empty")
	}
}

func TestItemsUniqueLinks(t *testing.T) {
	seen := make(map[string]bool)
	for _, it := range Items() {
		if it.Link == "" {
			t.Error("catalog item with empty link")
		}
		if seen[it.Link] {
			t.Errorf("duplicate link %q", it.Link)
		}
		seen[it.Link] = true
	}
}

func TestItemsAreAudioPosts(t *testing.T) {
	for _, it := range Items() {
		if it.Kind != content.KindAudio {
			t.Errorf("%s: expected audio kind, got %q", it.Title, it.Kind)
		}
		if it.AudioURL == "" || it.AudioLength == "" {
			t.Errorf("%s: audio posts need audio url and length", it.Title)
		}
		if it.Source != SourceName {
			t.Errorf("%s: expected source %q, got %q", it.Title, SourceName, it.Source)
		}
	}
}

func TestItemsDatesParse(t *testing.T) {
	for _, it := range Items() {
		if _, err := time.Parse(content.DateLayout, it.Date); err != nil {
			t.Errorf("%s: unparsable date %q", it.Title, it.Date)
		}
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	first := Items()
	first[0].Title = "mutated"

	if Items()[0].Title == "mutated" {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

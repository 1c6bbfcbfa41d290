// Package feed retrieves the remote Hey World feed and normalizes its
// entries into content items. Every failure mode degrades to an empty
// list; callers never see an error from this package.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"

	"github.com/PriKalra/priyata-universe/internal/content"
)

const (
	// ExcerptLimit bounds excerpt length in runes before the marker.
	ExcerptLimit = 200
	// TruncationMarker is appended when an excerpt is cut.
	TruncationMarker = "…"

	// SourceName labels items originating from the live feed.
	SourceName = "Hey World"

	userAgent = "priyata-universe-bot (+https://prikalra.github.io/priyata-universe/)"
)

// Options configure a Client.
type Options struct {
	FeedURL string        // primary feed endpoint
	Mirrors []string      // fallback endpoints tried in order after the primary
	Timeout time.Duration // per-request timeout
	Retries uint64        // retry attempts per endpoint after the first try
	Backoff time.Duration // delay between retries
	Limit   int           // max entries taken from the feed, 0 = all
}

// Client fetches and parses the syndication feed. It performs no writes:
// caching is the store's job, and the client holds no mutable state
// between calls.
type Client struct {
	http   *http.Client
	parser *gofeed.Parser
	opts   Options
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 800 * time.Millisecond
	}
	return &Client{
		http:   &http.Client{Timeout: opts.Timeout},
		parser: gofeed.NewParser(),
		opts:   opts,
	}
}

// Fetch retrieves the feed and returns its normalized entries in source
// order. Endpoints are tried in turn (primary first, then mirrors) until
// one yields entries; timeouts, bad statuses and unparsable payloads all
// degrade to an empty result.
func (c *Client) Fetch(ctx context.Context) []content.Item {
	endpoints := append([]string{c.opts.FeedURL}, c.opts.Mirrors...)
	for _, endpoint := range endpoints {
		items, err := c.fetchOne(ctx, endpoint)
		if err != nil {
			logrus.WithError(err).WithField("url", endpoint).Warn("feed fetch failed")
			continue
		}
		if len(items) == 0 {
			logrus.WithField("url", endpoint).Warn("feed contained no entries")
			continue
		}
		return items
	}
	return nil
}

func (c *Client) fetchOne(ctx context.Context, url string) ([]content.Item, error) {
	var body []byte
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.opts.Backoff), c.opts.Retries), ctx)
	err := backoff.Retry(func() error {
		b, err := c.get(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	}, policy)
	if err != nil {
		return nil, err
	}

	parsed, err := c.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return c.normalize(parsed), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) normalize(f *gofeed.Feed) []content.Item {
	items := make([]content.Item, 0, len(f.Items))
	for _, entry := range f.Items {
		if c.opts.Limit > 0 && len(items) >= c.opts.Limit {
			break
		}
		item, ok := normalizeEntry(entry, len(items))
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// normalizeEntry maps one feed entry to a content item. Entries missing a
// title or link are skipped rather than aborting the whole feed.
func normalizeEntry(entry *gofeed.Item, pos int) (content.Item, bool) {
	title := strings.TrimSpace(entry.Title)
	link := strings.TrimSpace(entry.Link)
	if title == "" || link == "" {
		return content.Item{}, false
	}

	body := entry.Content
	if body == "" {
		body = entry.Description
	}
	text, image := extractBody(body)
	if image == "" && entry.Image != nil {
		image = entry.Image.URL
	}

	// The newest post gets the emphasized card on the site.
	size := "small"
	if pos == 0 {
		size = "large"
	}

	return content.Item{
		Kind:    content.KindBlog,
		Title:   title,
		Excerpt: truncate(text, ExcerptLimit),
		Link:    link,
		Source:  SourceName,
		Date:    entryDate(entry),
		Size:    size,
		Image:   image,
	}, true
}

// entryDate prefers the published date, falls back to updated, and
// finally to today. An absent or unparsable date is a documented
// fallback, not an error.
func entryDate(entry *gofeed.Item) string {
	if entry.PublishedParsed != nil {
		return entry.PublishedParsed.Format(content.DateLayout)
	}
	if entry.UpdatedParsed != nil {
		return entry.UpdatedParsed.Format(content.DateLayout)
	}
	return time.Now().Format(content.DateLayout)
}

// extractBody strips markup from an entry body, collapses whitespace, and
// pulls the first embedded image reference if one exists.
func extractBody(html string) (text, image string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " "), ""
	}
	image, _ = doc.Find("img").First().Attr("src")
	text = strings.Join(strings.Fields(doc.Text()), " ")
	return text, image
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + TruncationMarker
}

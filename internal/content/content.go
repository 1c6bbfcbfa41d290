// Package content defines the item model shared by every stage of the
// aggregation pipeline.
package content

// Kind tells a consumer how to render an item and which optional fields
// carry meaning.
type Kind string

const (
	KindBlog  Kind = "blog"
	KindAudio Kind = "audio"
	KindImage Kind = "image"
)

// DateLayout is the calendar-date form used throughout the pipeline.
// It sorts lexicographically, so ordering compares Date strings directly.
const DateLayout = "2006-01-02"

// Item is one entry in the aggregated content hub. Link doubles as the
// identity key: two items with the same link are the same content.
// The JSON tags match the document shape the site frontend consumes.
type Item struct {
	Kind        Kind   `json:"type"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	Size        string `json:"size,omitempty"`
	AudioLength string `json:"audioLength,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
	Image       string `json:"image,omitempty"`
	Views       int    `json:"views,omitempty"`
}

package cache

import (
	"time"

	"github.com/PriKalra/priyata-universe/internal/content"
)

// Record is the persisted snapshot envelope: the merged item list and
// when it was produced.
type Record struct {
	CapturedAt time.Time      `json:"capturedAt"`
	Items      []content.Item `json:"items"`
}

// Fresh reports whether the record is still inside the validity window.
func (r Record) Fresh(window time.Duration) bool {
	return time.Since(r.CapturedAt) < window
}

// Package artifact reads and writes the pre-computed content document
// the web server ships to browsers, so a page load gets instant content
// without touching the remote feed itself.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PriKalra/priyata-universe/internal/content"
)

// Document is the on-disk artifact shape.
type Document struct {
	LastUpdated time.Time      `json:"lastUpdated"`
	Content     []content.Item `json:"content"`
}

// Write persists items to path, creating parent directories as needed.
func Write(path string, items []content.Item) error {
	doc := Document{LastUpdated: time.Now().UTC(), Content: items}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding artifact: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating artifact dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously written artifact.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing artifact %s: %w", path, err)
	}
	return doc, nil
}

// Package feed serves announcements, events and scholarships from a YAML document.
package feed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

//go:embed content.yaml
var defaultContent []byte

type document struct {
	Announcements []domain.ContentItem `yaml:"announcements"`
	Events        []domain.ContentItem `yaml:"events"`
	Scholarships  []domain.ContentItem `yaml:"scholarships"`
}

// Feed is an immutable in-memory content feed.
type Feed struct {
	items map[domain.ContentKind][]domain.ContentItem
}

// Default returns the feed bundled with the binary.
func Default() (*Feed, error) {
	return Parse(defaultContent)
}

// Load reads a feed file. An empty path selects the bundled feed.
func Load(path string) (*Feed, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a feed document and rejects duplicate or empty ids.
func Parse(data []byte) (*Feed, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	f := &Feed{items: map[domain.ContentKind][]domain.ContentItem{
		domain.ContentAnnouncements: doc.Announcements,
		domain.ContentEvents:        doc.Events,
		domain.ContentScholarships:  doc.Scholarships,
	}}
	for kind, items := range f.items {
		seen := make(map[string]bool, len(items))
		for i, it := range items {
			if it.ID == "" {
				return nil, fmt.Errorf("%s[%d]: missing id", kind, i)
			}
			if seen[it.ID] {
				return nil, fmt.Errorf("%s: duplicate id %q", kind, it.ID)
			}
			seen[it.ID] = true
		}
	}
	return f, nil
}

// List returns a copy of the items of kind in document order.
func (f *Feed) List(_ context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	items, ok := f.items[kind]
	if !ok {
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
	if items == nil {
		return []domain.ContentItem{}, nil
	}
	return slices.Clone(items), nil
}

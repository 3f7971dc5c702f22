// Package catalog defines the track catalog the game draws from: genre
// definitions and the storage interface behind the track provider.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/yearline/internal/game"
)

// ErrNotFound indicates a missing catalog record.
var ErrNotFound = errors.New("not found")

// Genre maps a stable key to a display label. Keys are what game
// configurations and stored tracks reference.
type Genre struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

type manifest struct {
	Genres []Genre `yaml:"genres"`
}

// LoadGenres parses a YAML genre manifest. Keys must be unique and
// non-empty.
func LoadGenres(r io.Reader) ([]Genre, error) {
	var m manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode genre manifest: %w", err)
	}
	if len(m.Genres) == 0 {
		return nil, errors.New("genre manifest is empty")
	}

	seen := make(map[string]bool, len(m.Genres))
	for i := range m.Genres {
		key := strings.TrimSpace(m.Genres[i].Key)
		if key == "" {
			return nil, fmt.Errorf("genre %d has an empty key", i)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate genre key %q", key)
		}
		seen[key] = true
		m.Genres[i].Key = key
		m.Genres[i].Label = strings.TrimSpace(m.Genres[i].Label)
	}
	return m.Genres, nil
}

// Store persists catalog tracks keyed by genre.
type Store interface {
	// PutTrack upserts one track under a genre key.
	PutTrack(ctx context.Context, track game.Track, genre string) error
	// ListByGenres returns up to limit tracks with a valid release year
	// across the given genre keys, in random order.
	ListByGenres(ctx context.Context, genres []string, limit int) ([]game.Track, error)
	// CountTracks returns the number of stored tracks.
	CountTracks(ctx context.Context) (int, error)
	// Close releases the underlying handle.
	Close() error
}

// Provider adapts a Store to the session's track provider interface.
type Provider struct {
	store Store
}

// NewProvider wraps a store.
func NewProvider(store Store) *Provider {
	return &Provider{store: store}
}

// Tracks returns up to limit stored tracks for the genre keys.
func (p *Provider) Tracks(ctx context.Context, genres []string, limit int) ([]game.Track, error) {
	if p == nil || p.store == nil {
		return nil, errors.New("catalog store is not configured")
	}
	tracks, err := p.store.ListByGenres(ctx, genres, limit)
	if err != nil {
		return nil, fmt.Errorf("list catalog tracks: %w", err)
	}
	return tracks, nil
}

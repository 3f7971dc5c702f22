package catalog

import (
	"strings"
	"testing"
)

// TestLoadGenresParsesManifest ensures keys and labels round-trip.
func TestLoadGenresParsesManifest(t *testing.T) {
	manifest := `
genres:
  - key: rock_int
    label: Rock Internacional
  - key: pop
    label: Pop
`
	genres, err := LoadGenres(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("load genres: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("expected 2 genres, got %d", len(genres))
	}
	if genres[0].Key != "rock_int" || genres[0].Label != "Rock Internacional" {
		t.Fatalf("unexpected genre: %+v", genres[0])
	}
}

// TestLoadGenresRejectsDuplicates ensures keys are unique.
func TestLoadGenresRejectsDuplicates(t *testing.T) {
	manifest := `
genres:
  - key: pop
    label: Pop
  - key: pop
    label: Pop Again
`
	if _, err := LoadGenres(strings.NewReader(manifest)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

// TestLoadGenresRejectsEmptyManifest ensures at least one genre exists.
func TestLoadGenresRejectsEmptyManifest(t *testing.T) {
	if _, err := LoadGenres(strings.NewReader("genres: []")); err == nil {
		t.Fatal("expected empty manifest error")
	}
}

// TestDefaultGenres ensures the embedded manifest is valid.
func TestDefaultGenres(t *testing.T) {
	genres, err := DefaultGenres()
	if err != nil {
		t.Fatalf("default genres: %v", err)
	}
	if len(genres) != 4 {
		t.Fatalf("expected 4 built-in genres, got %d", len(genres))
	}
	keys := make(map[string]bool)
	for _, genre := range genres {
		keys[genre.Key] = true
	}
	for _, want := range []string{"rock_int", "rock_arg", "pop", "punk"} {
		if !keys[want] {
			t.Fatalf("missing built-in genre %q", want)
		}
	}
}

package game

import (
	"errors"
	"testing"
)

// TestMergeAppliesPartialFields ensures only supplied fields change.
func TestMergeAppliesPartialFields(t *testing.T) {
	cfg := DefaultConfig()
	teams := 3

	merged := cfg.Merge(ConfigPatch{NumTeams: &teams})
	if merged.NumTeams != 3 {
		t.Fatalf("expected 3 teams, got %d", merged.NumTeams)
	}
	if merged.NumSongs != cfg.NumSongs {
		t.Fatalf("song count changed unexpectedly: %d", merged.NumSongs)
	}
	if len(merged.Genres) != 1 || merged.Genres[0] != "rock_int" {
		t.Fatalf("genres changed unexpectedly: %v", merged.Genres)
	}
}

// TestMergeIgnoresEmptyGenres ensures the genre set can never become empty.
func TestMergeIgnoresEmptyGenres(t *testing.T) {
	cfg := DefaultConfig()

	merged := cfg.Merge(ConfigPatch{Genres: []string{}})
	if len(merged.Genres) != 1 || merged.Genres[0] != "rock_int" {
		t.Fatalf("expected genre removal to be ignored, got %v", merged.Genres)
	}
}

// TestMergeReplacesGenres ensures a non-empty genre set replaces the old one.
func TestMergeReplacesGenres(t *testing.T) {
	cfg := DefaultConfig()

	merged := cfg.Merge(ConfigPatch{Genres: []string{"pop", "punk"}})
	if len(merged.Genres) != 2 || merged.Genres[0] != "pop" || merged.Genres[1] != "punk" {
		t.Fatalf("unexpected genres: %v", merged.Genres)
	}
}

// TestValidateBounds ensures team and song bounds are enforced at start.
func TestValidateBounds(t *testing.T) {
	cfg := DefaultConfig()

	cfg.NumTeams = 1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidTeamCount) {
		t.Fatalf("expected team count error, got %v", err)
	}

	cfg.NumTeams = 5
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidTeamCount) {
		t.Fatalf("expected team count error, got %v", err)
	}

	cfg.NumTeams = 2
	cfg.NumSongs = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSongCount) {
		t.Fatalf("expected song count error, got %v", err)
	}

	cfg.NumSongs = 8
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

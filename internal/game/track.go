package game

import "math/rand"

// AnchorID marks the synthetic card that seeds every team's timeline.
const AnchorID = "__anchor__"

// Anchor card years are drawn uniformly from this inclusive range.
const (
	AnchorYearMin = 1960
	AnchorYearMax = 2025
)

// Track is an immutable track record supplied by a track provider.
type Track struct {
	// ID is an opaque unique identifier.
	ID string
	// Title is the track title, hidden from players while the track is active.
	Title string
	// Artist is the primary artist name, hidden while the track is active.
	Artist string
	// Year is the release year used for chronological placement.
	Year int
	// PlayableRef is an opaque reference handed to the playback controller.
	PlayableRef string
}

// IsAnchor reports whether the track is a synthetic anchor card.
func (t Track) IsAnchor() bool {
	return t.ID == AnchorID
}

// NewAnchor builds an anchor card with a year drawn uniformly from the
// anchor range. Title, artist, and playable reference are empty.
func NewAnchor(rng *rand.Rand) Track {
	return Track{
		ID:   AnchorID,
		Year: AnchorYearMin + rng.Intn(AnchorYearMax-AnchorYearMin+1),
	}
}

package spotify

import (
	"testing"

	"github.com/zmb3/spotify/v2"
)

// TestMapTrackExtractsFields ensures the Spotify track shape maps onto the
// catalog track.
func TestMapTrackExtractsFields(t *testing.T) {
	item := spotify.FullTrack{
		SimpleTrack: spotify.SimpleTrack{
			ID:   "4u7EnebtmKWzUH433cf5Qv",
			Name: "Bohemian Rhapsody",
			Artists: []spotify.SimpleArtist{
				{Name: "Queen"},
				{Name: "Someone Else"},
			},
			URI: "spotify:track:4u7EnebtmKWzUH433cf5Qv",
		},
		Album: spotify.SimpleAlbum{
			ReleaseDate:          "1975-10-31",
			ReleaseDatePrecision: "day",
		},
	}

	track := mapTrack(item)
	if track.ID != "4u7EnebtmKWzUH433cf5Qv" {
		t.Fatalf("unexpected id %q", track.ID)
	}
	if track.Title != "Bohemian Rhapsody" {
		t.Fatalf("unexpected title %q", track.Title)
	}
	if track.Artist != "Queen" {
		t.Fatalf("expected first artist, got %q", track.Artist)
	}
	if track.Year != 1975 {
		t.Fatalf("unexpected year %d", track.Year)
	}
	if track.PlayableRef != "spotify:track:4u7EnebtmKWzUH433cf5Qv" {
		t.Fatalf("unexpected playable ref %q", track.PlayableRef)
	}
}

// TestMapTrackWithoutReleaseDate ensures tracks without a parseable date
// get no year and are later filtered.
func TestMapTrackWithoutReleaseDate(t *testing.T) {
	item := spotify.FullTrack{
		SimpleTrack: spotify.SimpleTrack{ID: "x", Name: "Undated"},
	}

	if track := mapTrack(item); track.Year != 0 {
		t.Fatalf("expected zero year, got %d", track.Year)
	}
}

// TestNewClientRequiresCredentials ensures missing credentials fail fast.
func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(t.Context(), "", "secret"); err == nil {
		t.Fatal("expected error for missing client id")
	}
	if _, err := NewClient(t.Context(), "id", " "); err == nil {
		t.Fatal("expected error for missing client secret")
	}
}

// Package spotify fetches candidate tracks from the Spotify Web API using
// the client-credentials flow. It is the import source for the track
// catalog; the game itself never talks to Spotify directly.
//
// Register an application at https://developer.spotify.com/ and set the
// SPOTIFY_ID and SPOTIFY_SECRET environment variables.
package spotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/louisbranch/yearline/internal/game"
)

// Search is bounded to years the game's anchor range can reach.
const (
	searchYearMin = 1970
	searchYearMax = 2025
)

// Client wraps an authenticated Spotify API client.
type Client struct {
	api *spotify.Client
}

// NewClient authenticates with the client-credentials grant. Search does
// not require user authorization.
func NewClient(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		return nil, fmt.Errorf("spotify client id and secret are required")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("get spotify token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &Client{api: spotify.New(httpClient)}, nil
}

// SearchTracks searches for tracks matching the query within the year
// bounds and maps them to catalog tracks. Tracks without a valid release
// year are dropped, and duplicate ids collapse to one.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]game.Track, error) {
	if c == nil || c.api == nil {
		return nil, fmt.Errorf("spotify client is not configured")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	q := fmt.Sprintf("%s year:%d-%d", query, searchYearMin, searchYearMax)
	results, err := c.api.Search(ctx, q, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	if results.Tracks == nil {
		return nil, nil
	}

	tracks := lo.Map(results.Tracks.Tracks, func(item spotify.FullTrack, _ int) game.Track {
		return mapTrack(item)
	})
	tracks = lo.Filter(tracks, func(track game.Track, _ int) bool {
		return track.Year > 0
	})
	return lo.UniqBy(tracks, func(track game.Track) string {
		return track.ID
	}), nil
}

func mapTrack(item spotify.FullTrack) game.Track {
	artist := ""
	if len(item.Artists) > 0 {
		artist = item.Artists[0].Name
	}
	year := 0
	if len(item.Album.ReleaseDate) >= 4 {
		year = item.Album.ReleaseDateTime().Year()
	}
	return game.Track{
		ID:          item.ID.String(),
		Title:       item.Name,
		Artist:      artist,
		Year:        year,
		PlayableRef: string(item.URI),
	}
}

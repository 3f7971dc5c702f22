package game

import "errors"

// Team count bounds enforced at game start.
const (
	MinTeams = 2
	MaxTeams = 4
)

var (
	// ErrInvalidTeamCount indicates a team count outside the allowed bounds.
	ErrInvalidTeamCount = errors.New("team count must be between 2 and 4")
	// ErrInvalidSongCount indicates a non-positive song count.
	ErrInvalidSongCount = errors.New("song count must be positive")
)

// Config holds the pre-game configuration.
type Config struct {
	// NumTeams is the number of competing teams.
	NumTeams int
	// NumSongs is the number of songs requested for the playlist.
	NumSongs int
	// Genres is the non-empty set of genre keys to draw tracks from.
	Genres []string
}

// ConfigPatch carries a partial configuration update. Nil fields are left
// untouched by Merge.
type ConfigPatch struct {
	NumTeams *int
	NumSongs *int
	Genres   []string
}

// DefaultConfig returns the configuration new games start from.
func DefaultConfig() Config {
	return Config{
		NumTeams: 2,
		NumSongs: 8,
		Genres:   []string{"rock_int"},
	}
}

// Merge applies the supplied fields onto the configuration. A genre update
// that would empty the set is ignored for that field; no error is surfaced.
func (c Config) Merge(patch ConfigPatch) Config {
	if patch.NumTeams != nil {
		c.NumTeams = *patch.NumTeams
	}
	if patch.NumSongs != nil {
		c.NumSongs = *patch.NumSongs
	}
	if len(patch.Genres) > 0 {
		c.Genres = append([]string(nil), patch.Genres...)
	}
	return c
}

// Validate checks the bounds a game start requires.
func (c Config) Validate() error {
	if c.NumTeams < MinTeams || c.NumTeams > MaxTeams {
		return ErrInvalidTeamCount
	}
	if c.NumSongs <= 0 {
		return ErrInvalidSongCount
	}
	if len(c.Genres) == 0 {
		return errors.New("genre set is empty")
	}
	return nil
}

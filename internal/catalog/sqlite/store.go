// Package sqlite provides a SQLite-backed track catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/yearline/internal/catalog/sqlite/migrations"
	"github.com/louisbranch/yearline/internal/game"
	"github.com/louisbranch/yearline/internal/platform/storage/sqlitemigrate"
)

// Store persists catalog tracks in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite catalog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutTrack upserts one track under a genre key.
func (s *Store) PutTrack(ctx context.Context, track game.Track, genre string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	trackID := strings.TrimSpace(track.ID)
	if trackID == "" {
		return fmt.Errorf("track id is required")
	}
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return fmt.Errorf("genre is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO tracks (id, title, artist, year, playable_ref, genre, imported_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   artist = excluded.artist,
		   year = excluded.year,
		   playable_ref = excluded.playable_ref,
		   genre = excluded.genre,
		   imported_at = excluded.imported_at`,
		trackID,
		track.Title,
		track.Artist,
		track.Year,
		track.PlayableRef,
		genre,
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("put track: %w", err)
	}
	return nil
}

// ListByGenres returns up to limit tracks with a valid release year across
// the genre keys, in random order.
func (s *Store) ListByGenres(ctx context.Context, genres []string, limit int) ([]game.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if len(genres) == 0 {
		return nil, fmt.Errorf("at least one genre is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	placeholders := strings.Repeat("?,", len(genres))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(genres)+1)
	for _, genre := range genres {
		args = append(args, strings.TrimSpace(genre))
	}
	args = append(args, limit)

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, title, artist, year, playable_ref
		 FROM tracks
		 WHERE genre IN (`+placeholders+`) AND year > 0
		 ORDER BY RANDOM()
		 LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	var tracks []game.Track
	for rows.Next() {
		var track game.Track
		if err := rows.Scan(&track.ID, &track.Title, &track.Artist, &track.Year, &track.PlayableRef); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}

// CountTracks returns the number of stored tracks.
func (s *Store) CountTracks(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	var count int
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM tracks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count tracks: %w", err)
	}
	return count, nil
}

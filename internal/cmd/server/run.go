package server

import (
	"context"
	"fmt"
	"log"

	"github.com/louisbranch/yearline/internal/catalog"
	catalogsqlite "github.com/louisbranch/yearline/internal/catalog/sqlite"
	"github.com/louisbranch/yearline/internal/session"
	"github.com/louisbranch/yearline/internal/web"
)

// logPlayback records play/pause intents in the service log. The actual
// audio output lives in the presentation layer; the server only tracks
// intent so operators can follow a game from the logs.
type logPlayback struct{}

func (logPlayback) Play(ref string) { log.Printf("playback: play %s", ref) }
func (logPlayback) Pause()          { log.Printf("playback: pause") }

// Run opens the catalog, builds a session, and serves the JSON API until
// the context is canceled.
func Run(ctx context.Context, cfg Config) error {
	store, err := catalogsqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	count, err := store.CountTracks(ctx)
	if err != nil {
		return fmt.Errorf("count catalog tracks: %w", err)
	}
	log.Printf("catalog ready with %d tracks at %s", count, cfg.DBPath)

	genres, err := catalog.DefaultGenres()
	if err != nil {
		return fmt.Errorf("load genres: %w", err)
	}

	sess, err := session.New(catalog.NewProvider(store), logPlayback{})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	log.Printf("session %s ready", sess.ID())

	srv, err := web.NewServer(web.Config{Addr: cfg.ListenAddr()}, web.NewHandler(sess, genres))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	return srv.ListenAndServe(ctx)
}

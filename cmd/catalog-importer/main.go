// Command catalog-importer fills the track catalog from Spotify searches.
//
// Credentials come from SPOTIFY_ID and SPOTIFY_SECRET, optionally loaded
// from a .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/louisbranch/yearline/internal/catalog"
	catalogsqlite "github.com/louisbranch/yearline/internal/catalog/sqlite"
	"github.com/louisbranch/yearline/internal/spotify"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	app := &cli.App{
		Name:  "catalog-importer",
		Usage: "import tracks from Spotify into the game catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Value:   "yearline.db",
				Usage:   "path to the catalog database",
				EnvVars: []string{"YEARLINE_DB_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "search Spotify and store the results under a genre",
				ArgsUsage: "<genre-key> <search-query>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 50,
						Usage: "maximum tracks per search",
					},
				},
				Action: importTracks,
			},
			{
				Name:  "import-all",
				Usage: "import every genre in the manifest using its label as the query",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 50,
						Usage: "maximum tracks per genre",
					},
				},
				Action: importAll,
			},
			{
				Name:   "count",
				Usage:  "print the number of stored tracks",
				Action: countTracks,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func openStore(c *cli.Context) (*catalogsqlite.Store, error) {
	store, err := catalogsqlite.Open(c.String("db"))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return store, nil
}

func newSpotifyClient(ctx context.Context) (*spotify.Client, error) {
	return spotify.NewClient(ctx, os.Getenv("SPOTIFY_ID"), os.Getenv("SPOTIFY_SECRET"))
}

func importTracks(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: import <genre-key> <search-query>")
	}
	genre := c.Args().Get(0)
	query := strings.Join(c.Args().Slice()[1:], " ")

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	client, err := newSpotifyClient(c.Context)
	if err != nil {
		return err
	}
	stored, err := importGenre(c.Context, client, store, genre, query, c.Int("limit"))
	if err != nil {
		return err
	}
	fmt.Printf("stored %d tracks under %s\n", stored, genre)
	return nil
}

func importAll(c *cli.Context) error {
	genres, err := catalog.DefaultGenres()
	if err != nil {
		return fmt.Errorf("load genres: %w", err)
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	client, err := newSpotifyClient(c.Context)
	if err != nil {
		return err
	}
	for _, genre := range genres {
		stored, err := importGenre(c.Context, client, store, genre.Key, genre.Label, c.Int("limit"))
		if err != nil {
			return fmt.Errorf("import %s: %w", genre.Key, err)
		}
		fmt.Printf("stored %d tracks under %s\n", stored, genre.Key)
	}
	return nil
}

func importGenre(ctx context.Context, client *spotify.Client, store *catalogsqlite.Store, genre, query string, limit int) (int, error) {
	tracks, err := client.SearchTracks(ctx, query, limit)
	if err != nil {
		return 0, err
	}

	stored := 0
	for _, track := range tracks {
		if err := store.PutTrack(ctx, track, genre); err != nil {
			log.Printf("store %s (%s): %v", track.Title, track.ID, err)
			continue
		}
		stored++
	}
	return stored, nil
}

func countTracks(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.CountTracks(c.Context)
	if err != nil {
		return fmt.Errorf("count tracks: %w", err)
	}
	fmt.Printf("%d tracks\n", count)
	return nil
}

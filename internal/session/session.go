// Package session owns a single game engine instance and the collaborator
// boundaries around it: the track provider feeding game starts and the
// playback controller receiving play/pause intents.
//
// All operations serialize on an internal mutex, giving the engine the
// single-writer discipline it requires even when two rapid UI events race.
package session

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/louisbranch/yearline/internal/game"
	"github.com/louisbranch/yearline/internal/id"
	"github.com/louisbranch/yearline/internal/random"
)

// fetchMargin is how many tracks beyond the configured song count are
// requested, allowing for provider-side de-duplication and shortfall.
const fetchMargin = 5

// TrackProvider supplies candidate tracks for the requested genre keys.
// Providers may return fewer tracks than requested.
type TrackProvider interface {
	Tracks(ctx context.Context, genres []string, limit int) ([]game.Track, error)
}

// Playback receives play/pause intents. Calls are fire-and-forget: the
// session never awaits a playback result and never receives playback
// errors.
type Playback interface {
	Play(playableRef string)
	Pause()
}

// Session wraps one game engine with serialized access and collaborator
// wiring. The zero value is not usable; construct with New.
type Session struct {
	mu       sync.Mutex
	id       string
	game     *game.Game
	provider TrackProvider
	playback Playback
}

// Option configures a session.
type Option func(*options)

type options struct {
	gameOpts []game.Option
}

// WithGameOptions forwards options to the underlying engine.
func WithGameOptions(opts ...game.Option) Option {
	return func(o *options) {
		o.gameOpts = append(o.gameOpts, opts...)
	}
}

// New creates a session with a crypto-seeded engine.
func New(provider TrackProvider, playback Playback, opts ...Option) (*Session, error) {
	if provider == nil {
		return nil, fmt.Errorf("track provider is required")
	}
	if playback == nil {
		return nil, fmt.Errorf("playback controller is required")
	}

	sessionID, err := id.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	seed, err := random.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("seed game: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	gameOpts := append([]game.Option{game.WithRand(rand.New(rand.NewSource(seed)))}, o.gameOpts...)

	return &Session{
		id:       sessionID,
		game:     game.New(gameOpts...),
		provider: provider,
		playback: playback,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Configure merges a partial configuration update. Only effective before
// the game starts.
func (s *Session) Configure(patch game.ConfigPatch) game.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.ApplyConfig(patch)
	return s.game.Config()
}

// StartGame fetches a track batch for the configured genres and starts the
// engine. Provider failures and short batches are logged and absorbed: the
// game stays in the configuring phase untouched, and false is returned.
func (s *Session) StartGame(ctx context.Context) bool {
	s.mu.Lock()
	cfg := s.game.Config()
	s.mu.Unlock()

	// The fetch happens outside the session lock so a slow provider never
	// blocks snapshot reads. The engine is only touched once the batch is
	// in hand, and Start itself is atomic.
	tracks, err := s.provider.Tracks(ctx, cfg.Genres, cfg.NumSongs+fetchMargin)
	if err != nil {
		log.Printf("session %s: fetch tracks: %v", s.id, err)
		return false
	}
	if len(tracks) > cfg.NumSongs {
		tracks = tracks[:cfg.NumSongs]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.Start(tracks); err != nil {
		log.Printf("session %s: start game: %v", s.id, err)
		return false
	}
	log.Printf("session %s: game started with %d tracks for %d teams", s.id, len(tracks), cfg.NumTeams)
	return true
}

// ResolveTurn resolves both guesses and the placement as one atomic
// operation, then forces playback to a paused state so the next team
// starts silent.
func (s *Session) ResolveTurn(req game.TurnRequest) game.TurnOutcome {
	s.mu.Lock()
	outcome := s.game.ResolveTurn(req)
	s.mu.Unlock()

	if outcome.Resolved {
		s.playback.Pause()
	}
	return outcome
}

// PlaceTrack attempts the placement alone and pauses playback when a turn
// advanced. Prefer ResolveTurn, which also evaluates guesses atomically.
func (s *Session) PlaceTrack(index int) bool {
	s.mu.Lock()
	_, hadActive := s.game.ActiveTrack()
	placed := s.game.PlaceTrack(index)
	s.mu.Unlock()

	if hadActive {
		s.playback.Pause()
	}
	return placed
}

// GuessTitle evaluates a title guess for the acting team.
func (s *Session) GuessTitle(input string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.GuessTitle(input)
}

// GuessArtist evaluates an artist guess for the acting team.
func (s *Session) GuessArtist(input string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.GuessArtist(input)
}

// AddPoint credits one point to the team.
func (s *Session) AddPoint(team int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.AddPoint(team)
}

// UsePower executes a power-up for the acting team. An auto-place advances
// the turn, so playback is paused; a swap keeps the turn and the silence
// decision with the presentation layer.
func (s *Session) UsePower(kind game.PowerKind) bool {
	s.mu.Lock()
	applied := s.game.UsePower(kind)
	s.mu.Unlock()

	if applied && kind == game.PowerAutoPlace {
		s.playback.Pause()
	}
	return applied
}

// PlayActive emits a play intent for the active track's reference, if any.
func (s *Session) PlayActive() bool {
	s.mu.Lock()
	active, ok := s.game.ActiveTrack()
	s.mu.Unlock()

	if !ok || active.PlayableRef == "" {
		return false
	}
	s.playback.Play(active.PlayableRef)
	return true
}

// Pause emits a pause intent.
func (s *Session) Pause() {
	s.playback.Pause()
}

// Snapshot is a read-only view of the session state for the presentation
// layer. The active track is exposed only as availability; its title and
// artist stay hidden until a turn reveals them.
type Snapshot struct {
	ID                string
	Phase             game.Phase
	Config            game.Config
	Timelines         []game.Timeline
	Scores            []int
	CurrentTurn       int
	PlaylistRemaining int
	ActiveAvailable   bool
}

// Snapshot captures the current state under the session lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, active := s.game.ActiveTrack()
	return Snapshot{
		ID:                s.id,
		Phase:             s.game.Phase(),
		Config:            s.game.Config(),
		Timelines:         s.game.Timelines(),
		Scores:            s.game.Scores(),
		CurrentTurn:       s.game.Turn(),
		PlaylistRemaining: s.game.PlaylistRemaining(),
		ActiveAvailable:   active,
	}
}

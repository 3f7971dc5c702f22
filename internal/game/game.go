package game

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// Phase describes the lifecycle state of a game.
type Phase int

const (
	// PhaseConfiguring indicates the game is accepting configuration and
	// has not started.
	PhaseConfiguring Phase = iota
	// PhasePlaying indicates a game is in progress.
	PhasePlaying
	// PhaseWon indicates the game has ended; no further mutation occurs.
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// PowerKind identifies a purchasable power-up.
type PowerKind string

const (
	// PowerSwap replaces the active track with the next playlist element.
	PowerSwap PowerKind = "swap"
	// PowerAutoPlace inserts the active track at its correct index.
	PowerAutoPlace PowerKind = "auto"
)

// Rules holds the tunable gameplay constants.
type Rules struct {
	// SwapCost is the score required to swap the active track.
	SwapCost int
	// AutoPlaceCost is the score required to auto-place the active track.
	AutoPlaceCost int
	// SwapAdvancesTurn controls whether a swap passes the turn.
	SwapAdvancesTurn bool
}

// DefaultRules returns the standard power-up economy.
func DefaultRules() Rules {
	return Rules{SwapCost: 4, AutoPlaceCost: 8}
}

// WinPolicy decides whether the game has reached its terminal state. It is
// evaluated after every turn advancement with the current score vector and
// whether the playlist (including the active track) is exhausted.
type WinPolicy func(scores []int, playlistExhausted bool) bool

// PlaylistExhausted ends the game once every track has been presented.
func PlaylistExhausted() WinPolicy {
	return func(_ []int, exhausted bool) bool {
		return exhausted
	}
}

// FirstTo ends the game when any team reaches the target score, or when
// the playlist runs out.
func FirstTo(target int) WinPolicy {
	return func(scores []int, exhausted bool) bool {
		if exhausted {
			return true
		}
		for _, score := range scores {
			if score >= target {
				return true
			}
		}
		return false
	}
}

var (
	// ErrNotConfiguring indicates a start attempt outside the configuring phase.
	ErrNotConfiguring = errors.New("game has already started")
	// ErrNotEnoughTracks indicates the provider batch cannot seed a game.
	ErrNotEnoughTracks = errors.New("at least 2 usable tracks are required")
)

// Game is the engine state container. It is not safe for concurrent use;
// callers must serialize access.
type Game struct {
	phase     Phase
	config    Config
	rules     Rules
	win       WinPolicy
	rng       *rand.Rand
	timelines []Timeline
	playlist  []Track
	active    *Track
	scores    []int
	turn      int
}

// Option configures a new game.
type Option func(*Game)

// WithRules overrides the default power-up economy.
func WithRules(rules Rules) Option {
	return func(g *Game) { g.rules = rules }
}

// WithWinPolicy overrides the default terminal condition.
func WithWinPolicy(win WinPolicy) Option {
	return func(g *Game) {
		if win != nil {
			g.win = win
		}
	}
}

// WithRand injects the random source used for shuffling and anchor years.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// New creates a game in the configuring phase with the default
// configuration.
func New(opts ...Option) *Game {
	g := &Game{
		phase:  PhaseConfiguring,
		config: DefaultConfig(),
		rules:  DefaultRules(),
		win:    PlaylistExhausted(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Config returns a copy of the current configuration.
func (g *Game) Config() Config {
	cfg := g.config
	cfg.Genres = append([]string(nil), g.config.Genres...)
	return cfg
}

// Rules returns the active gameplay constants.
func (g *Game) Rules() Rules {
	return g.rules
}

// ApplyConfig merges a partial configuration update. Reconfiguration is
// only reachable before the game starts; during play the call is a no-op.
func (g *Game) ApplyConfig(patch ConfigPatch) {
	if g.phase != PhaseConfiguring {
		return
	}
	g.config = g.config.Merge(patch)
}

// Start validates the configuration and the provided batch, shuffles it,
// seeds every team's timeline with a shared anchor card, and transitions
// to the playing phase. On any failure the game is left untouched in the
// configuring phase: either every field updates together, or none do.
func (g *Game) Start(tracks []Track) error {
	if g.phase != PhaseConfiguring {
		return ErrNotConfiguring
	}
	if err := g.config.Validate(); err != nil {
		return err
	}

	usable := make([]Track, 0, len(tracks))
	for _, track := range tracks {
		if track.Year > 0 {
			usable = append(usable, track)
		}
	}
	if len(usable) < 2 {
		return ErrNotEnoughTracks
	}

	shuffled := append([]Track(nil), usable...)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Every team starts from the same anchor year.
	anchor := NewAnchor(g.rng)
	timelines := make([]Timeline, g.config.NumTeams)
	for i := range timelines {
		timelines[i] = Timeline{anchor}
	}

	first := shuffled[0]
	g.timelines = timelines
	g.playlist = shuffled[1:]
	g.active = &first
	g.scores = make([]int, g.config.NumTeams)
	g.turn = 0
	g.phase = PhasePlaying
	return nil
}

// ActiveTrack returns a copy of the track currently in play.
func (g *Game) ActiveTrack() (Track, bool) {
	if g.active == nil {
		return Track{}, false
	}
	return *g.active, true
}

// Turn returns the index of the acting team.
func (g *Game) Turn() int {
	return g.turn
}

// Scores returns a copy of the per-team score vector.
func (g *Game) Scores() []int {
	return append([]int(nil), g.scores...)
}

// PlaylistRemaining returns the number of not-yet-presented tracks,
// excluding the active one.
func (g *Game) PlaylistRemaining() int {
	return len(g.playlist)
}

// TimelineFor returns a copy of one team's timeline.
func (g *Game) TimelineFor(team int) Timeline {
	if team < 0 || team >= len(g.timelines) {
		return nil
	}
	return append(Timeline(nil), g.timelines[team]...)
}

// Timelines returns copies of every team's timeline.
func (g *Game) Timelines() []Timeline {
	out := make([]Timeline, len(g.timelines))
	for i := range g.timelines {
		out[i] = append(Timeline(nil), g.timelines[i]...)
	}
	return out
}

// PlaceTrack attempts to insert the active track at index in the acting
// team's timeline. On an invalid index the timeline is untouched and the
// card is discarded. Either way the next playlist element becomes active
// and the turn passes. Returns the placement validity; with no active
// track the call is a no-op reporting false.
func (g *Game) PlaceTrack(index int) bool {
	if g.phase != PhasePlaying || g.active == nil {
		return false
	}

	track := *g.active
	valid := g.timelines[g.turn].CanPlace(track, index)
	if valid {
		g.timelines[g.turn] = g.timelines[g.turn].insert(track, index)
	}
	g.advance()
	return valid
}

// GuessTitle evaluates a free-text title guess against the active track.
// A correct guess credits one point to the acting team. Must be called
// before PlaceTrack advances the turn.
func (g *Game) GuessTitle(input string) bool {
	return g.guessField(input, func(t Track) string { return t.Title })
}

// GuessArtist evaluates a free-text artist guess against the active track.
func (g *Game) GuessArtist(input string) bool {
	return g.guessField(input, func(t Track) string { return t.Artist })
}

func (g *Game) guessField(input string, field func(Track) string) bool {
	if g.phase != PhasePlaying || g.active == nil {
		return false
	}
	if !guessMatches(input, field(*g.active)) {
		return false
	}
	g.AddPoint(g.turn)
	return true
}

// AddPoint credits one point to the team. It is the sole score mutator;
// out-of-range teams are ignored.
func (g *Game) AddPoint(team int) {
	if g.phase != PhasePlaying || team < 0 || team >= len(g.scores) {
		return
	}
	g.scores[team]++
}

// UsePower executes a score-gated power-up for the acting team. Requests
// below cost or without a qualifying resource are atomic no-ops. Returns
// whether the power was applied.
func (g *Game) UsePower(kind PowerKind) bool {
	if g.phase != PhasePlaying {
		return false
	}
	switch kind {
	case PowerSwap:
		if g.scores[g.turn] < g.rules.SwapCost || len(g.playlist) == 0 {
			return false
		}
		g.scores[g.turn] -= g.rules.SwapCost
		next := g.playlist[0]
		g.playlist = g.playlist[1:]
		g.active = &next
		if g.rules.SwapAdvancesTurn {
			g.passTurn()
		}
		return true
	case PowerAutoPlace:
		if g.scores[g.turn] < g.rules.AutoPlaceCost || g.active == nil {
			return false
		}
		g.scores[g.turn] -= g.rules.AutoPlaceCost
		track := *g.active
		index := g.timelines[g.turn].InsertionIndex(track)
		g.timelines[g.turn] = g.timelines[g.turn].insert(track, index)
		g.advance()
		return true
	default:
		return false
	}
}

// TurnRequest bundles both guesses and the placement index for one turn.
type TurnRequest struct {
	// TitleGuess is the free-text title guess; blank means not attempted.
	TitleGuess string
	// ArtistGuess is the free-text artist guess; blank means not attempted.
	ArtistGuess string
	// Index is the requested insertion position in the acting team's timeline.
	Index int
}

// TurnOutcome reports the result of a resolved turn.
type TurnOutcome struct {
	// Resolved is false when no turn took place (no active track or not playing).
	Resolved bool
	// Placed reports whether the placement was chronologically valid.
	Placed bool
	// TitleCorrect reports whether the title guess matched.
	TitleCorrect bool
	// ArtistCorrect reports whether the artist guess matched.
	ArtistCorrect bool
	// PointsAwarded is the number of points credited this turn.
	PointsAwarded int
	// Revealed is the track that was in play, disclosed after resolution.
	Revealed Track
	// Team is the team that acted.
	Team int
	// NextTeam is the team whose turn is next.
	NextTeam int
	// Phase is the lifecycle phase after resolution.
	Phase Phase
}

// ResolveTurn evaluates both guesses against the pre-advance active track
// and then performs the placement, as one atomic operation. This removes
// the ordering hazard of calling the guess evaluators and PlaceTrack
// separately against shared state.
func (g *Game) ResolveTurn(req TurnRequest) TurnOutcome {
	if g.phase != PhasePlaying || g.active == nil {
		return TurnOutcome{Phase: g.phase, Team: g.turn, NextTeam: g.turn}
	}

	outcome := TurnOutcome{
		Resolved: true,
		Team:     g.turn,
		Revealed: *g.active,
	}
	if strings.TrimSpace(req.TitleGuess) != "" && g.GuessTitle(req.TitleGuess) {
		outcome.TitleCorrect = true
		outcome.PointsAwarded++
	}
	if strings.TrimSpace(req.ArtistGuess) != "" && g.GuessArtist(req.ArtistGuess) {
		outcome.ArtistCorrect = true
		outcome.PointsAwarded++
	}
	outcome.Placed = g.PlaceTrack(req.Index)
	outcome.NextTeam = g.turn
	outcome.Phase = g.phase
	return outcome
}

// advance pops the next playlist element into the active slot, passes the
// turn, and evaluates the win policy.
func (g *Game) advance() {
	if len(g.playlist) > 0 {
		next := g.playlist[0]
		g.playlist = g.playlist[1:]
		g.active = &next
	} else {
		g.active = nil
	}
	g.passTurn()

	exhausted := g.active == nil && len(g.playlist) == 0
	if g.win != nil && g.win(g.Scores(), exhausted) {
		g.phase = PhaseWon
	}
}

func (g *Game) passTurn() {
	g.turn = (g.turn + 1) % g.config.NumTeams
}

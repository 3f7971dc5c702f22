package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/louisbranch/yearline/internal/catalog"
	"github.com/louisbranch/yearline/internal/game"
	"github.com/louisbranch/yearline/internal/session"
)

// NewHandler builds the JSON API handler around a session.
func NewHandler(s *session.Session, genres []catalog.Genre) http.Handler {
	h := &handler{session: s, genres: genres}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/genres", h.listGenres)
	mux.HandleFunc("GET /api/config", h.getConfig)
	mux.HandleFunc("PATCH /api/config", h.patchConfig)
	mux.HandleFunc("GET /api/game", h.getGame)
	mux.HandleFunc("POST /api/game/start", h.startGame)
	mux.HandleFunc("POST /api/game/turn", h.resolveTurn)
	mux.HandleFunc("POST /api/game/power", h.usePower)
	mux.HandleFunc("POST /api/playback/play", h.play)
	mux.HandleFunc("POST /api/playback/pause", h.pause)
	return mux
}

type handler struct {
	session *session.Session
	genres  []catalog.Genre
}

type genrePayload struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type configPayload struct {
	NumTeams int      `json:"num_teams"`
	NumSongs int      `json:"num_songs"`
	Genres   []string `json:"genres"`
}

type configPatchPayload struct {
	NumTeams *int     `json:"num_teams"`
	NumSongs *int     `json:"num_songs"`
	Genres   []string `json:"genres"`
}

type trackPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Year        int    `json:"year"`
	PlayableRef string `json:"playable_ref,omitempty"`
}

type snapshotPayload struct {
	SessionID         string           `json:"session_id"`
	Phase             string           `json:"phase"`
	Config            configPayload    `json:"config"`
	Timelines         [][]trackPayload `json:"timelines,omitempty"`
	Scores            []int            `json:"scores,omitempty"`
	CurrentTurn       int              `json:"current_turn"`
	PlaylistRemaining int              `json:"playlist_remaining"`
	ActiveAvailable   bool             `json:"active_available"`
}

type turnRequestPayload struct {
	TitleGuess  string `json:"title_guess"`
	ArtistGuess string `json:"artist_guess"`
	Index       int    `json:"index"`
}

type turnOutcomePayload struct {
	Resolved      bool         `json:"resolved"`
	Placed        bool         `json:"placed"`
	TitleCorrect  bool         `json:"title_correct"`
	ArtistCorrect bool         `json:"artist_correct"`
	PointsAwarded int          `json:"points_awarded"`
	Revealed      trackPayload `json:"revealed"`
	Team          int          `json:"team"`
	NextTeam      int          `json:"next_team"`
	Phase         string       `json:"phase"`
}

type powerRequestPayload struct {
	Kind string `json:"kind"`
}

func (h *handler) listGenres(w http.ResponseWriter, _ *http.Request) {
	payload := make([]genrePayload, len(h.genres))
	for i, genre := range h.genres {
		payload[i] = genrePayload{Key: genre.Key, Label: genre.Label}
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *handler) getConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toConfigPayload(h.session.Snapshot().Config))
}

func (h *handler) patchConfig(w http.ResponseWriter, r *http.Request) {
	var body configPatchPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cfg := h.session.Configure(game.ConfigPatch{
		NumTeams: body.NumTeams,
		NumSongs: body.NumSongs,
		Genres:   body.Genres,
	})
	writeJSON(w, http.StatusOK, toConfigPayload(cfg))
}

func (h *handler) getGame(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toSnapshotPayload(h.session.Snapshot()))
}

func (h *handler) startGame(w http.ResponseWriter, r *http.Request) {
	started := h.session.StartGame(r.Context())
	writeJSON(w, http.StatusOK, struct {
		Started  bool            `json:"started"`
		Snapshot snapshotPayload `json:"snapshot"`
	}{
		Started:  started,
		Snapshot: toSnapshotPayload(h.session.Snapshot()),
	})
}

func (h *handler) resolveTurn(w http.ResponseWriter, r *http.Request) {
	var body turnRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome := h.session.ResolveTurn(game.TurnRequest{
		TitleGuess:  body.TitleGuess,
		ArtistGuess: body.ArtistGuess,
		Index:       body.Index,
	})
	writeJSON(w, http.StatusOK, turnOutcomePayload{
		Resolved:      outcome.Resolved,
		Placed:        outcome.Placed,
		TitleCorrect:  outcome.TitleCorrect,
		ArtistCorrect: outcome.ArtistCorrect,
		PointsAwarded: outcome.PointsAwarded,
		Revealed:      toTrackPayload(outcome.Revealed),
		Team:          outcome.Team,
		NextTeam:      outcome.NextTeam,
		Phase:         outcome.Phase.String(),
	})
}

func (h *handler) usePower(w http.ResponseWriter, r *http.Request) {
	var body powerRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	applied := h.session.UsePower(game.PowerKind(body.Kind))
	writeJSON(w, http.StatusOK, struct {
		Applied  bool            `json:"applied"`
		Snapshot snapshotPayload `json:"snapshot"`
	}{
		Applied:  applied,
		Snapshot: toSnapshotPayload(h.session.Snapshot()),
	})
}

func (h *handler) play(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Playing bool `json:"playing"`
	}{Playing: h.session.PlayActive()})
}

func (h *handler) pause(w http.ResponseWriter, _ *http.Request) {
	h.session.Pause()
	w.WriteHeader(http.StatusNoContent)
}

func toConfigPayload(cfg game.Config) configPayload {
	return configPayload{
		NumTeams: cfg.NumTeams,
		NumSongs: cfg.NumSongs,
		Genres:   cfg.Genres,
	}
}

func toTrackPayload(track game.Track) trackPayload {
	return trackPayload{
		ID:          track.ID,
		Title:       track.Title,
		Artist:      track.Artist,
		Year:        track.Year,
		PlayableRef: track.PlayableRef,
	}
}

func toSnapshotPayload(snap session.Snapshot) snapshotPayload {
	timelines := make([][]trackPayload, len(snap.Timelines))
	for i, tl := range snap.Timelines {
		timelines[i] = make([]trackPayload, len(tl))
		for j, track := range tl {
			timelines[i][j] = toTrackPayload(track)
		}
	}
	return snapshotPayload{
		SessionID:         snap.ID,
		Phase:             snap.Phase.String(),
		Config:            toConfigPayload(snap.Config),
		Timelines:         timelines,
		Scores:            snap.Scores,
		CurrentTurn:       snap.CurrentTurn,
		PlaylistRemaining: snap.PlaylistRemaining,
		ActiveAvailable:   snap.ActiveAvailable,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

type handlers struct {
	src ResultSource
}

type resultJSON struct {
	MatchID   string    `json:"match_id"`
	GameID    string    `json:"game_id"`
	Mode      string    `json:"mode"`
	Black     int       `json:"black"`
	White     int       `json:"white"`
	Winner    string    `json:"winner"`
	Moves     int       `json:"moves"`
	Duration  int       `json:"duration_secs"`
	CreatedAt time.Time `json:"created_at"`
}

type statsJSON struct {
	Mode       string     `json:"mode,omitempty"`
	Games      int        `json:"games"`
	BlackWins  int        `json:"black_wins"`
	WhiteWins  int        `json:"white_wins"`
	Draws      int        `json:"draws"`
	AvgMoves   float64    `json:"avg_moves"`
	LastPlayed *time.Time `json:"last_played,omitempty"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func toResultJSON(r storage.Result) resultJSON {
	return resultJSON{
		MatchID:   r.MatchID,
		GameID:    r.GameID,
		Mode:      r.Mode,
		Black:     r.Black,
		White:     r.White,
		Winner:    r.Winner,
		Moves:     r.Moves,
		Duration:  r.Duration,
		CreatedAt: r.CreatedAt,
	}
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (h *handlers) results(w http.ResponseWriter, r *http.Request) {
	mode, ok := modeParam(w, r)
	if !ok {
		return
	}

	limit := defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorJSON{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxLimit)
	}

	results, err := h.src.RecentResults(mode, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorJSON{Error: "failed to load results"})
		return
	}

	out := make([]resultJSON, 0, len(results))
	for _, res := range results {
		out = append(out, toResultJSON(res))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) result(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "matchID")

	res, err := h.src.ResultByMatchID(id)
	if errors.Is(err, storage.ErrResultNotFound) {
		writeJSON(w, http.StatusNotFound, errorJSON{Error: "result not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorJSON{Error: "failed to load result"})
		return
	}
	writeJSON(w, http.StatusOK, toResultJSON(res))
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	mode, ok := modeParam(w, r)
	if !ok {
		return
	}

	st, err := h.src.GetStats(mode)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorJSON{Error: "failed to load stats"})
		return
	}

	out := statsJSON{
		Mode:      st.Mode,
		Games:     st.Games,
		BlackWins: st.BlackWins,
		WhiteWins: st.WhiteWins,
		Draws:     st.Draws,
		AvgMoves:  st.AvgMoves,
	}
	if !st.LastPlayed.IsZero() {
		out.LastPlayed = &st.LastPlayed
	}
	writeJSON(w, http.StatusOK, out)
}

// modeParam reads the optional ?mode= filter. An absent mode means all
// modes; anything but friend or cpu is a 400.
func modeParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	s := r.URL.Query().Get("mode")
	if s == "" {
		return "", true
	}
	m, err := reversi.ParseMode(s)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return "", false
	}
	return string(m), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

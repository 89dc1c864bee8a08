package agent

import (
	"encoding/json"
	"net/http"
	"time"

	"mctschess/game"
	"mctschess/searcher"

	"github.com/rs/zerolog/log"
)

type FindMoveRequest struct {
	FEN        string `json:"fen"`                  // Empty for the starting position
	Iterations *int   `json:"iterations,omitempty"` // Server default when omitted
	Depth      *int   `json:"depth,omitempty"`
}

type FindMoveResponse struct {
	Move     string `json:"move"`
	Fallback bool   `json:"fallback"`
	Episodes int    `json:"episodes"`
	Nodes    int    `json:"nodes"`
}

// Server answers move requests over HTTP. Every request runs its own search.
type Server struct {
	episodes int
	cutoff   int
}

func NewServer(episodes, cutoff int) *Server {
	return &Server{episodes: episodes, cutoff: cutoff}
}

// Handler routes POST /findmove.
func (s *Server) Handler() http.Handler {
	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("POST /findmove", s.handleFindMove)
	return mux
}

// ListenAndServe blocks serving move requests on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s with %d episodes and cutoff %d", addr, s.episodes, s.cutoff)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var payload FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	episodes, cutoff := s.episodes, s.cutoff
	if payload.Iterations != nil {
		episodes = *payload.Iterations
	}
	if payload.Depth != nil {
		cutoff = *payload.Depth
	}
	if episodes < 0 || cutoff < 0 {
		http.Error(w, "bad request: iterations and depth must not be negative", http.StatusBadRequest)
		return
	}

	state, err := game.FromFEN(payload.FEN)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	mcts := searcher.NewMCTS(
		game.EvaluateMaterial,
		searcher.WithEpisodes(episodes),
		searcher.WithCutoff(cutoff),
		searcher.WithMetrics(),
	)
	move, metric := NewEvaluationAgent(mcts).FindMove(state)
	if move == nil {
		http.Error(w, "position has no legal moves", http.StatusConflict)
		return
	}

	log.Debug().Msgf("found move %s for %q in %s", move, state.FEN(), metric.Duration)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(FindMoveResponse{
		Move:     move.String(),
		Fallback: metric.IsFallback,
		Episodes: metric.Episodes,
		Nodes:    metric.Nodes,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode move")
	}
}

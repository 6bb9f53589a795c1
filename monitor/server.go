// Package monitor exposes context budget telemetry over HTTP so the product
// can warn the candidate or force interview wrap-up as the budget fills.
package monitor

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/prakashsanker/yeet-coder-sub002/session"
	"github.com/prakashsanker/yeet-coder-sub002/store"
)

// Server serves health and per-session token stats.
type Server struct {
	router   *chi.Mux
	sessions *session.Manager
	port     int
}

// NewServer creates a Server on the given port.
func NewServer(port int, sessions *session.Manager) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		sessions: sessions,
		port:     port,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/sessions/{sessionID}/context/stats", s.contextStats)

	return s
}

// Handler returns the underlying HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	srv := s.httpServer()
	slog.Info("context monitor starting", "addr", srv.Addr)
	return srv.ListenAndServe()
}

// httpServer builds the listener with timeouts so a stalled client cannot
// pin a connection indefinitely.
func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) contextStats(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return
	}

	stats, err := s.sessions.TokenStats(r.Context(), sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	if err != nil {
		slog.Error("failed to compute token stats", "session_id", sessionID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

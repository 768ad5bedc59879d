// Package health exposes a small HTTP endpoint for hosting-panel probes.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const readHeaderTimeout = 2 * time.Second

// WebsiteChecker reports whether the vocabulary website answers.
type WebsiteChecker interface {
	Status(ctx context.Context) bool
}

// UserCounter reports how many users the bot knows.
type UserCounter interface {
	Count() int
}

// Server hosts the health endpoint and owns the underlying HTTP server.
type Server struct {
	server  *http.Server
	logger  *zap.Logger
	website WebsiteChecker
	users   UserCounter
}

type response struct {
	Status    string `json:"status"`
	Bot       string `json:"bot"`
	Website   string `json:"website"`
	Users     int    `json:"users"`
	Timestamp string `json:"timestamp"`
}

// NewServer constructs a health server answering GET /health and a small
// landing page on GET / at the given address.
func NewServer(addr string, users UserCounter, website WebsiteChecker, logger *zap.Logger) *Server {
	srv := &Server{
		logger:  logger,
		website: website,
		users:   users,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/", srv.handleIndex)

	srv.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return srv
}

// ListenAndServe starts the health server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("Starting health server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Info("Health server stopped")
	return nil
}

// Shutdown gracefully stops the health server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := response{
		Status:    "healthy",
		Bot:       "running",
		Website:   "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if s.users != nil {
		resp.Users = s.users.Count()
	}
	if s.website == nil || !s.website.Status(r.Context()) {
		resp.Status = "degraded"
		resp.Website = "unreachable"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Failed to encode health response", zap.Error(err))
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(indexPage)); err != nil {
		s.logger.Error("Failed to write index page", zap.Error(err))
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
	<title>Language Notes Bot</title>
	<meta charset="utf-8">
</head>
<body>
	<h1>🤖 Language Notes Bot</h1>
	<p>✅ The bot is up. Find it in Telegram to save vocabulary notes with hashtags,
	manage categories and export word lists as PDF.</p>
	<p><a href="/health">Health check</a></p>
</body>
</html>
`

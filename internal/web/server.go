package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vitos/lp_wave/internal/usecase"
	"go.uber.org/zap"
)

type Options struct {
	Port            int
	BannerText      string
	DonationAddress string
}

type Server struct {
	router   *http.ServeMux
	server   *http.Server
	sessions *usecase.SessionService
	opts     Options
	logger   *zap.Logger
}

func NewServer(opts Options, sessions *usecase.SessionService, logger *zap.Logger) *Server {
	s := &Server{
		router:   http.NewServeMux(),
		sessions: sessions,
		opts:     opts,
		logger:   logger,
	}
	s.routes()
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: s.router,
	}
	return s
}

func (s *Server) routes() {
	// Pages
	s.router.HandleFunc("GET /{$}", s.handleHome)
	s.router.HandleFunc("GET /curve", s.handleCurve)
	s.router.HandleFunc("GET /strategies/{name}", s.handleComingSoon)

	// Sessions
	s.router.HandleFunc("POST /api/sessions", s.handleCreateSession)
	s.router.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	s.router.HandleFunc("POST /api/sessions/{id}/commands", s.handleCommand)
	s.router.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)

	// Journal
	s.router.HandleFunc("GET /api/runs", s.handleListRuns)

	// Donation
	s.router.HandleFunc("GET /api/donation", s.handleDonation)

	// Frames
	s.router.HandleFunc("GET /ws", s.handleWS)
}

// Handler exposes the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

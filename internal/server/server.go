// Package server provides the HTTP REST API for the outfit stylist.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/outfit-stylist/internal/cache"
	"github.com/jonathan/outfit-stylist/internal/db"
	"github.com/jonathan/outfit-stylist/internal/pipeline"
	"github.com/jonathan/outfit-stylist/internal/preferences"
)

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	CacheTTL    time.Duration
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	engine     *pipeline.Engine
	prefs      preferences.Store
}

// New creates a server. The database is optional: without one, only the
// stateless endpoints (inline recommendations, analysis, health) are
// served and feedback is kept in memory.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{
		engine: pipeline.New(pipeline.WithCache(cache.New(cfg.CacheTTL, cache.DefaultMaxEntries))),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
		s.prefs = preferences.NewPostgresStore(database.Pool())
	} else {
		s.prefs = preferences.NewMemoryStore()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /recommendations", s.handleRecommend)
	mux.HandleFunc("POST /outfits/analyze", s.handleAnalyze)

	mux.HandleFunc("GET /users/{user_id}/wardrobe", s.handleListWardrobe)
	mux.HandleFunc("POST /users/{user_id}/wardrobe", s.handleCreateItem)
	mux.HandleFunc("DELETE /users/{user_id}/wardrobe/{item_id}", s.handleDeleteItem)
	mux.HandleFunc("GET /users/{user_id}/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /users/{user_id}/profile", s.handlePutProfile)
	mux.HandleFunc("POST /users/{user_id}/feedback", s.handleAddFeedback)
	mux.HandleFunc("GET /users/{user_id}/preferences", s.handleGetPreferences)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		errCh <- s.httpServer.Serve(listener)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// Package api exposes the task store over HTTP. It is a stateless
// pass-through: verbs and paths map onto service operations and the
// results are serialized as JSON.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"tasktrackr/internal/config"
	"tasktrackr/internal/services"
)

// Server wires the task service to an HTTP router.
type Server struct {
	cfg    *config.Config
	tasks  services.TaskService
	router *mux.Router
}

// NewServer creates a new Server with all routes registered.
func NewServer(cfg *config.Config, tasks services.TaskService) *Server {
	s := &Server{
		cfg:   cfg,
		tasks: tasks,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter registers the API routes.
func (s *Server) buildRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	router.HandleFunc("/tasks", s.handleListTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks", s.handleCreateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{id}", s.handleGetTask).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{id}", s.handleUpdateTask).Methods(http.MethodPut)
	router.HandleFunc("/tasks/{id}", s.handleDeleteTask).Methods(http.MethodDelete)

	return router
}

// Router returns the HTTP handler, exposed for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("%s is starting up on %s", s.cfg.Application.Name, s.cfg.Server.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("%s is shutting down", s.cfg.Application.Name)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tasktrackr/internal/domain"
	"tasktrackr/internal/errors"
	"tasktrackr/internal/logging"
)

// taskPayload is the JSON wire form of a task. On create, any
// client-supplied id is ignored; the backend assigns one.
type taskPayload struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func taskToPayload(task *domain.Task) taskPayload {
	return taskPayload{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
	}
}

// respondWithJSON is a helper function to format and send JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError sends a JSON error body with the given status.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps a service error onto an HTTP response.
func respondWithServiceError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status == http.StatusNotFound {
		respondWithError(w, status, "Task not found")
		return
	}
	if status == http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}
	respondWithError(w, status, errors.GetUserMessage(err))
}

// requestContext derives a per-request context bounded by the
// configured query timeout.
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.cfg.Database.QueryTimeout)
}

// taskIDFromRequest parses the {id} path variable.
func taskIDFromRequest(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %q", vars["id"])
	}
	return id, nil
}

// handleRoot greets with the configured application name.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	logging.Debugf("root endpoint hit\n")
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Welcome to %s!", s.cfg.Application.Name),
	})
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListTasks returns all stored tasks. An empty store yields an
// empty array, not an error.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	payload := make([]taskPayload, len(tasks))
	for i, task := range tasks {
		payload[i] = taskToPayload(task)
	}
	respondWithJSON(w, http.StatusOK, payload)
}

// handleCreateTask stores a new task and returns it with its assigned ID.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	ctx, cancel := s.requestContext(r)
	defer cancel()

	task, err := s.tasks.Create(ctx, payload.Title, payload.Completed)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, taskToPayload(task))
}

// handleGetTask returns a single task by ID.
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, taskToPayload(task))
}

// handleUpdateTask wholly replaces a task's title and completed flag.
// Fields absent from the payload are overwritten with their defaults.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	ctx, cancel := s.requestContext(r)
	defer cancel()

	task, err := s.tasks.Update(ctx, id, payload.Title, payload.Completed)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, taskToPayload(task))
}

// handleDeleteTask removes a task by ID.
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	ctx, cancel := s.requestContext(r)
	defer cancel()

	if err := s.tasks.Delete(ctx, id); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

/* handlers.go
 * Contains the read-only HTTP handlers over the match mirror.
 */

package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"matchday-bot/api/shared"
	"matchday-bot/internal/log"
)

type healthResponse struct {
	Status string `json:"status"`
}

type matchesResponse struct {
	Matches []shared.MatchRecord `json:"matches"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// healthHandler reports liveness.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// matchesHandler returns the whole collection in display order: unfinished
// matches first, newest created first within each group.
func (s *Server) matchesHandler(w http.ResponseWriter, r *http.Request) {
	matches := s.api.Matches()
	if matches == nil {
		matches = []shared.MatchRecord{}
	}
	writeJSON(w, http.StatusOK, matchesResponse{Matches: matches})
}

// matchHandler returns a single match by id, from the mirror only.
func (s *Server) matchHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	match, found := s.api.FindByID(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no match found with id " + id})
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to write response", zap.Error(err))
	}
}

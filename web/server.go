/* server.go
 * Contains the HTTP server Start function that listens for incoming
 * connections, and the route table.
 */

package web

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"matchday-bot/internal/log"
)

// Start initializes and starts the HTTP server with the given configuration.
// It blocks until the listener fails.
func Start(cfg Config) error {
	s := &Server{
		api: cfg.API,
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	log.Info("HTTP server listening", zap.String("addr", cfg.Addr))
	return srv.ListenAndServe()
}

// router binds the handler methods that have access to s.api
func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/matches", s.matchesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/matches/{id}", s.matchHandler).Methods(http.MethodGet)
	return r
}

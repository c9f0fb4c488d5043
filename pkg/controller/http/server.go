package http

import (
	"encoding/json"
	"net/http"

	"github.com/benogren/brand-agent/pkg/usecase"
	"github.com/benogren/brand-agent/pkg/utils/errutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.createSession)
			r.Get("/", s.listSessions)
			r.Get("/{sessionID}", s.getSession)
			r.Delete("/{sessionID}", s.deleteSession)
		})
		r.Get("/stats", s.stats)
		r.Post("/validate", s.validate)
		r.Post("/generate", s.generate)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON marshals the body before touching the response so an encoding
// failure can still produce a 500.
func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data) //nolint:errcheck // header already committed
}

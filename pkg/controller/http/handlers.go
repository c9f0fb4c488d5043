package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/usecase"
	"github.com/benogren/brand-agent/pkg/utils/errutil"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

type createSessionRequest struct {
	UserID   types.UserID   `json:"user_id"`
	Metadata map[string]any `json:"metadata"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid session request"), http.StatusBadRequest)
		return
	}

	session, err := s.uc.Session.Create(r.Context(), req.UserID, req.Metadata)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusCreated, session)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	userID := types.UserID(r.URL.Query().Get("user_id"))

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			errutil.HandleHTTP(r.Context(), w, goerr.New("invalid limit", goerr.V("limit", raw)), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	sessions, err := s.uc.Session.List(r.Context(), userID, limit)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"sessions": sessions})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id := types.SessionID(chi.URLParam(r, "sessionID"))

	session, err := s.uc.Session.Get(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, sessionErrorStatus(err))
		return
	}

	respondJSON(w, r, http.StatusOK, session)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := types.SessionID(chi.URLParam(r, "sessionID"))

	if err := s.uc.Session.Delete(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, sessionErrorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.uc.Session.Statistics(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, stats)
}

type validateRequest struct {
	BrandNames []string `json:"brand_names"`
	Category   string   `json:"category"`
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid validation request"), http.StatusBadRequest)
		return
	}
	if len(req.BrandNames) == 0 {
		errutil.HandleHTTP(r.Context(), w, goerr.New("brand_names is required"), http.StatusBadRequest)
		return
	}

	results, err := s.uc.Validation.ValidateBatch(r.Context(), req.BrandNames, req.Category)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"results": results})
}

type generateRequest struct {
	SessionID   types.SessionID `json:"session_id"`
	UserID      types.UserID    `json:"user_id"`
	Brief       model.UserBrief `json:"brief"`
	Count       int             `json:"count"`
	ValidateTop int             `json:"validate_top"`
	Category    string          `json:"category"`
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid generation request"), http.StatusBadRequest)
		return
	}
	if req.Brief.ProductDescription == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("brief.product_description is required"), http.StatusBadRequest)
		return
	}

	output, err := s.uc.Pipeline.Generate(r.Context(), &usecase.GenerateInput{
		SessionID:   req.SessionID,
		UserID:      req.UserID,
		Brief:       &req.Brief,
		Count:       req.Count,
		ValidateTop: req.ValidateTop,
		Category:    req.Category,
	})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, sessionErrorStatus(err))
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"session_id":  output.Session.ID,
		"candidates":  output.Candidates,
		"validations": output.Validations,
		"best":        output.Best,
		"seo":         output.SEO,
		"story":       output.Story,
		"compacted":   output.Compaction != nil,
	})
}

func sessionErrorStatus(err error) int {
	if errors.Is(err, interfaces.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

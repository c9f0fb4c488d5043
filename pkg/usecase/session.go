package usecase

import (
	"context"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SessionUseCase exposes session lifecycle operations over the repository
type SessionUseCase struct {
	repo interfaces.Repository
}

func NewSessionUseCase(repo interfaces.Repository) *SessionUseCase {
	return &SessionUseCase{repo: repo}
}

// Create starts a new session for the user
func (uc *SessionUseCase) Create(ctx context.Context, userID types.UserID, metadata map[string]any) (*model.Session, error) {
	session, err := uc.repo.Create(ctx, userID, metadata)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}

	logging.From(ctx).Info("session created",
		"session_id", session.ID,
		"user_id", session.UserID,
	)
	return session, nil
}

// Get loads a session by ID
func (uc *SessionUseCase) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	if id == "" {
		return nil, goerr.New("session ID is required")
	}
	return uc.repo.Get(ctx, id)
}

// List returns session summaries, newest first. userID filters when
// non-empty; limit of zero means no limit.
func (uc *SessionUseCase) List(ctx context.Context, userID types.UserID, limit int) ([]model.SessionSummary, error) {
	return uc.repo.List(ctx, userID, limit)
}

// Delete removes a session
func (uc *SessionUseCase) Delete(ctx context.Context, id types.SessionID) error {
	if id == "" {
		return goerr.New("session ID is required")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	logging.From(ctx).Info("session deleted", "session_id", id)
	return nil
}

// Statistics aggregates counts across all sessions
func (uc *SessionUseCase) Statistics(ctx context.Context) (*model.Statistics, error) {
	return uc.repo.Statistics(ctx)
}

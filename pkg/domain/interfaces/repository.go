package interfaces

import (
	"context"

	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
)

// Repository defines the interface for session persistence.
// One instance should exist per process lifetime; it is constructed in the
// entrypoint and injected into consumers.
type Repository interface {
	// Create generates a fresh session for the user and persists it immediately
	Create(ctx context.Context, userID types.UserID, metadata map[string]any) (*model.Session, error)

	// Get loads a session. Returns ErrSessionNotFound if the session does
	// not exist, and ErrSessionCorrupt if the stored record cannot be parsed.
	Get(ctx context.Context, id types.SessionID) (*model.Session, error)

	// Update merges the given fields into the stored session. The identifier
	// and creation timestamp are immutable. Fails if the session is missing.
	Update(ctx context.Context, id types.SessionID, update *model.SessionUpdate) error

	// AddEvent appends an event and re-persists the full session record
	AddEvent(ctx context.Context, id types.SessionID, event *model.Event) error

	// AddBrand appends a generated brand and re-persists the full session record
	AddBrand(ctx context.Context, id types.SessionID, brand *model.GeneratedBrand) error

	// List returns session summaries sorted by update timestamp descending,
	// optionally filtered by user, truncated to limit.
	List(ctx context.Context, userID types.UserID, limit int) ([]model.SessionSummary, error)

	// Delete removes the session. Returns ErrSessionNotFound if absent.
	Delete(ctx context.Context, id types.SessionID) error

	// Statistics scans all stored sessions and returns aggregate counts
	Statistics(ctx context.Context) (*model.Statistics, error)

	// Close releases any resources held by the repository
	Close() error
}

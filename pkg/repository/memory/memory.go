package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory is an in-memory session repository for development and testing
type Memory struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]*model.Session
}

var _ interfaces.Repository = &Memory{}

// New creates a new in-memory repository
func New() *Memory {
	return &Memory{
		sessions: make(map[types.SessionID]*model.Session),
	}
}

// Create generates a fresh session and stores it
func (r *Memory) Create(ctx context.Context, userID types.UserID, metadata map[string]any) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userID == "" {
		userID = types.DefaultUserID
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	now := time.Now().UTC()
	session := &model.Session{
		ID:              types.NewSessionID(),
		UserID:          userID,
		CreatedAt:       now,
		UpdatedAt:       now,
		Metadata:        metadata,
		Events:          []model.Event{},
		GeneratedBrands: []model.GeneratedBrand{},
	}

	r.sessions[session.ID] = session.Clone()
	return session, nil
}

// Get returns a deep copy of the stored session
func (r *Memory) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrSessionNotFound, "no such session", goerr.V("session_id", id))
	}
	return session.Clone(), nil
}

// Update merges the given fields into the stored session
func (r *Memory) Update(ctx context.Context, id types.SessionID, update *model.SessionUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return goerr.Wrap(interfaces.ErrSessionNotFound, "no such session", goerr.V("session_id", id))
	}

	if update.UserID != nil {
		session.UserID = *update.UserID
	}
	if update.Metadata != nil {
		if session.Metadata == nil {
			session.Metadata = map[string]any{}
		}
		for k, v := range update.Metadata {
			session.Metadata[k] = v
		}
	}
	session.UpdatedAt = time.Now().UTC()
	return nil
}

// AddEvent appends an event to the session
func (r *Memory) AddEvent(ctx context.Context, id types.SessionID, event *model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return goerr.Wrap(interfaces.ErrSessionNotFound, "no such session", goerr.V("session_id", id))
	}

	if event.ID == "" {
		event.ID = types.NewEventID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.Metadata == nil {
		event.Metadata = map[string]any{}
	}

	session.Events = append(session.Events, *event)
	session.UpdatedAt = time.Now().UTC()
	return nil
}

// AddBrand appends a generated brand to the session
func (r *Memory) AddBrand(ctx context.Context, id types.SessionID, brand *model.GeneratedBrand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return goerr.Wrap(interfaces.ErrSessionNotFound, "no such session", goerr.V("session_id", id))
	}

	if brand.ID == "" {
		brand.ID = types.NewBrandID()
	}
	if brand.GeneratedAt.IsZero() {
		brand.GeneratedAt = time.Now().UTC()
	}

	session.GeneratedBrands = append(session.GeneratedBrands, *brand)
	session.UpdatedAt = time.Now().UTC()
	return nil
}

// List returns session summaries sorted by update timestamp descending
func (r *Memory) List(ctx context.Context, userID types.UserID, limit int) ([]model.SessionSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]model.SessionSummary, 0, len(r.sessions))
	for _, s := range r.sessions {
		if userID != "" && s.UserID != userID {
			continue
		}
		summaries = append(summaries, s.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Delete removes the session
func (r *Memory) Delete(ctx context.Context, id types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return goerr.Wrap(interfaces.ErrSessionNotFound, "no such session", goerr.V("session_id", id))
	}
	delete(r.sessions, id)
	return nil
}

// Statistics returns aggregate counts across all stored sessions
func (r *Memory) Statistics(ctx context.Context) (*model.Statistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &model.Statistics{}
	users := map[types.UserID]struct{}{}
	for _, s := range r.sessions {
		stats.TotalSessions++
		stats.TotalEvents += len(s.Events)
		stats.TotalBrands += len(s.GeneratedBrands)
		users[s.UserID] = struct{}{}
	}
	stats.UniqueUsers = len(users)

	return stats, nil
}

// Close is a no-op for the in-memory backend
func (r *Memory) Close() error {
	return nil
}

package filesystem

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Filesystem stores one JSON document per session under a storage root.
// Every mutation rewrites the full record; there are no partial writes.
// Not designed for concurrent multi-process access (last writer wins).
type Filesystem struct {
	root string
}

var _ interfaces.Repository = &Filesystem{}

// New creates a filesystem repository rooted at the given directory,
// creating it if needed.
func New(root string) (*Filesystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create session storage directory", goerr.V("root", root))
	}
	return &Filesystem{root: root}, nil
}

func (r *Filesystem) sessionPath(id types.SessionID) string {
	return filepath.Join(r.root, id.String()+".json")
}

func (r *Filesystem) save(session *model.Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to serialize session", goerr.V("session_id", session.ID))
	}
	if err := os.WriteFile(r.sessionPath(session.ID), data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write session file", goerr.V("session_id", session.ID))
	}
	return nil
}

func (r *Filesystem) load(path string) (*model.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(interfaces.ErrSessionNotFound, "no session file", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read session file", goerr.V("path", path))
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, goerr.Wrap(interfaces.ErrSessionCorrupt, "failed to parse session file",
			goerr.V("path", path),
			goerr.V("cause", err.Error()),
		)
	}
	return &session, nil
}

// Create generates a fresh session and persists it immediately
func (r *Filesystem) Create(ctx context.Context, userID types.UserID, metadata map[string]any) (*model.Session, error) {
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

	if err := r.save(session); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("created session", "session_id", session.ID, "user_id", userID)
	return session, nil
}

// Get loads a session by ID
func (r *Filesystem) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	return r.load(r.sessionPath(id))
}

// Update merges the given fields into the stored session. Identifier and
// creation timestamp are immutable; the update timestamp is refreshed.
func (r *Filesystem) Update(ctx context.Context, id types.SessionID, update *model.SessionUpdate) error {
	session, err := r.load(r.sessionPath(id))
	if err != nil {
		return err
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

	return r.save(session)
}

// AddEvent appends an event and re-persists the full session record
func (r *Filesystem) AddEvent(ctx context.Context, id types.SessionID, event *model.Event) error {
	session, err := r.load(r.sessionPath(id))
	if err != nil {
		return err
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

	return r.save(session)
}

// AddBrand appends a generated brand and re-persists the full session record
func (r *Filesystem) AddBrand(ctx context.Context, id types.SessionID, brand *model.GeneratedBrand) error {
	session, err := r.load(r.sessionPath(id))
	if err != nil {
		return err
	}

	if brand.ID == "" {
		brand.ID = types.NewBrandID()
	}
	if brand.GeneratedAt.IsZero() {
		brand.GeneratedAt = time.Now().UTC()
	}

	session.GeneratedBrands = append(session.GeneratedBrands, *brand)
	session.UpdatedAt = time.Now().UTC()

	return r.save(session)
}

// List returns session summaries sorted by update timestamp descending.
// Corrupt session files are skipped with a warning rather than failing
// the whole listing.
func (r *Filesystem) List(ctx context.Context, userID types.UserID, limit int) ([]model.SessionSummary, error) {
	sessions, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.SessionSummary, 0, len(sessions))
	for _, s := range sessions {
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

// Delete removes the session file
func (r *Filesystem) Delete(ctx context.Context, id types.SessionID) error {
	path := r.sessionPath(id)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(interfaces.ErrSessionNotFound, "no session file to delete", goerr.V("session_id", id))
		}
		return goerr.Wrap(err, "failed to stat session file", goerr.V("session_id", id))
	}
	if err := os.Remove(path); err != nil {
		return goerr.Wrap(err, "failed to delete session file", goerr.V("session_id", id))
	}

	logging.From(ctx).Info("deleted session", "session_id", id)
	return nil
}

// Statistics scans all stored sessions and returns aggregate counts.
// Acceptable because the corpus is small; not designed for scale.
func (r *Filesystem) Statistics(ctx context.Context) (*model.Statistics, error) {
	sessions, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.Statistics{}
	users := map[types.UserID]struct{}{}
	for _, s := range sessions {
		stats.TotalSessions++
		stats.TotalEvents += len(s.Events)
		stats.TotalBrands += len(s.GeneratedBrands)
		users[s.UserID] = struct{}{}
	}
	stats.UniqueUsers = len(users)

	return stats, nil
}

// Close is a no-op for the filesystem backend
func (r *Filesystem) Close() error {
	return nil
}

func (r *Filesystem) scan(ctx context.Context) ([]*model.Session, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read session storage directory", goerr.V("root", r.root))
	}

	var sessions []*model.Session
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		session, err := r.load(filepath.Join(r.root, entry.Name()))
		if err != nil {
			logging.From(ctx).Warn("skipping unreadable session file",
				"file", entry.Name(),
				"error", err.Error(),
			)
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

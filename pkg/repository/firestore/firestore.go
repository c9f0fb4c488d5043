package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore stores sessions as documents in a Firestore collection.
// Listing and statistics scan the whole collection, same as the
// filesystem backend; the corpus is expected to stay small.
type Firestore struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes the sessions collection name, which keeps
// test data separable from production data in a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.collectionPrefix = prefix
	}
}

// New creates a Firestore-backed session repository
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
		)
	}

	f := &Firestore{client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (r *Firestore) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_sessions"
	}
	return "sessions"
}

func (r *Firestore) doc(id types.SessionID) *firestore.DocumentRef {
	return r.client.Collection(r.collection()).Doc(id.String())
}

func (r *Firestore) getSession(ctx context.Context, id types.SessionID) (*model.Session, error) {
	snapshot, err := r.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrSessionNotFound, "no such session document", goerr.V("session_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get session document", goerr.V("session_id", id))
	}

	var session model.Session
	if err := snapshot.DataTo(&session); err != nil {
		return nil, goerr.Wrap(interfaces.ErrSessionCorrupt, "failed to decode session document",
			goerr.V("session_id", id),
			goerr.V("cause", err.Error()),
		)
	}
	return &session, nil
}

func (r *Firestore) putSession(ctx context.Context, session *model.Session) error {
	if _, err := r.doc(session.ID).Set(ctx, session); err != nil {
		return goerr.Wrap(err, "failed to write session document", goerr.V("session_id", session.ID))
	}
	return nil
}

// Create generates a fresh session and writes it to Firestore
func (r *Firestore) Create(ctx context.Context, userID types.UserID, metadata map[string]any) (*model.Session, error) {
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

	if err := r.putSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads a session by ID
func (r *Firestore) Get(ctx context.Context, id types.SessionID) (*model.Session, error) {
	return r.getSession(ctx, id)
}

// Update merges the given fields into the stored session
func (r *Firestore) Update(ctx context.Context, id types.SessionID, update *model.SessionUpdate) error {
	session, err := r.getSession(ctx, id)
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

	return r.putSession(ctx, session)
}

// AddEvent appends an event and rewrites the session document
func (r *Firestore) AddEvent(ctx context.Context, id types.SessionID, event *model.Event) error {
	session, err := r.getSession(ctx, id)
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

	return r.putSession(ctx, session)
}

// AddBrand appends a generated brand and rewrites the session document
func (r *Firestore) AddBrand(ctx context.Context, id types.SessionID, brand *model.GeneratedBrand) error {
	session, err := r.getSession(ctx, id)
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

	return r.putSession(ctx, session)
}

// List returns session summaries sorted by update timestamp descending
func (r *Firestore) List(ctx context.Context, userID types.UserID, limit int) ([]model.SessionSummary, error) {
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

// Delete removes the session document
func (r *Firestore) Delete(ctx context.Context, id types.SessionID) error {
	// Firestore deletes are idempotent, so check existence first to keep
	// the not-found contract.
	if _, err := r.getSession(ctx, id); err != nil {
		return err
	}
	if _, err := r.doc(id).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete session document", goerr.V("session_id", id))
	}
	return nil
}

// Statistics scans all session documents and returns aggregate counts
func (r *Firestore) Statistics(ctx context.Context) (*model.Statistics, error) {
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

// Close releases the underlying Firestore client
func (r *Firestore) Close() error {
	return r.client.Close()
}

func (r *Firestore) scan(ctx context.Context) ([]*model.Session, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var sessions []*model.Session
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate session documents")
		}

		var session model.Session
		if err := snapshot.DataTo(&session); err != nil {
			// Skip undecodable documents, matching the filesystem
			// backend's behavior for corrupt files.
			continue
		}
		sessions = append(sessions, &session)
	}
	return sessions, nil
}

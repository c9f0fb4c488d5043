package model

import (
	"time"

	"github.com/benogren/brand-agent/pkg/domain/types"
)

// Session represents a brand naming brainstorming session.
// Events and GeneratedBrands are append-only; their order is append order.
type Session struct {
	ID              types.SessionID  `json:"session_id"`
	UserID          types.UserID     `json:"user_id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Metadata        map[string]any   `json:"metadata"`
	Events          []Event          `json:"events"`
	GeneratedBrands []GeneratedBrand `json:"generated_brands"`
}

// Event represents a single interaction recorded in a session.
// Immutable once appended.
type Event struct {
	ID        types.EventID  `json:"event_id"`
	Type      string         `json:"event_type"`
	Author    string         `json:"author"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata"`
}

// GeneratedBrand records one brand candidate produced during a session.
// Attributes is an open mapping because downstream agents attach ad-hoc
// fields (name, rationale, tagline, strategy, scores).
type GeneratedBrand struct {
	ID          types.BrandID  `json:"brand_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Attributes  map[string]any `json:"attributes"`
}

// Name returns the brand name attribute, or an empty string if missing
func (b *GeneratedBrand) Name() string {
	if name, ok := b.Attributes["brand_name"].(string); ok {
		return name
	}
	return ""
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	copied := &Session{
		ID:        s.ID,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Metadata:  copyMetadata(s.Metadata),
	}

	if s.Events != nil {
		copied.Events = make([]Event, len(s.Events))
		for i, ev := range s.Events {
			copied.Events[i] = ev
			copied.Events[i].Metadata = copyMetadata(ev.Metadata)
		}
	}

	if s.GeneratedBrands != nil {
		copied.GeneratedBrands = make([]GeneratedBrand, len(s.GeneratedBrands))
		for i, b := range s.GeneratedBrands {
			copied.GeneratedBrands[i] = b
			copied.GeneratedBrands[i].Attributes = copyMetadata(b.Attributes)
		}
	}

	return copied
}

func copyMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	copied := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case []string:
			s := make([]string, len(val))
			copy(s, val)
			copied[k] = s
		case []any:
			s := make([]any, len(val))
			copy(s, val)
			copied[k] = s
		default:
			copied[k] = v
		}
	}
	return copied
}

// Summary returns the listing view of the session with derived counts
func (s *Session) Summary() SessionSummary {
	return SessionSummary{
		ID:         s.ID,
		UserID:     s.UserID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		EventCount: len(s.Events),
		BrandCount: len(s.GeneratedBrands),
	}
}

// SessionSummary is the listing view of a session. Counts are derived at
// listing time, never stored.
type SessionSummary struct {
	ID         types.SessionID `json:"session_id"`
	UserID     types.UserID    `json:"user_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	EventCount int             `json:"event_count"`
	BrandCount int             `json:"brand_count"`
}

// Statistics holds aggregate counts across all stored sessions
type Statistics struct {
	TotalSessions int `json:"total_sessions"`
	TotalBrands   int `json:"total_brands_generated"`
	TotalEvents   int `json:"total_events"`
	UniqueUsers   int `json:"unique_users"`
}

// SessionUpdate holds the mutable fields of a session for partial updates.
// Nil fields are left unchanged.
type SessionUpdate struct {
	UserID   *types.UserID
	Metadata map[string]any
}

package types

import "github.com/google/uuid"

// SessionID identifies a brainstorming session
type SessionID string

// NewSessionID generates a new time-ordered session ID
func NewSessionID() SessionID {
	return SessionID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of the session ID
func (id SessionID) String() string {
	return string(id)
}

// EventID identifies an event within a session
type EventID string

// NewEventID generates a new event ID
func NewEventID() EventID {
	return EventID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of the event ID
func (id EventID) String() string {
	return string(id)
}

// BrandID identifies a generated brand record
type BrandID string

// NewBrandID generates a new brand ID
func NewBrandID() BrandID {
	return BrandID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of the brand ID
func (id BrandID) String() string {
	return string(id)
}

// UserID identifies the owning user of a session
type UserID string

// DefaultUserID is used when no user is specified
const DefaultUserID UserID = "default_user"

// String returns the string representation of the user ID
func (id UserID) String() string {
	return string(id)
}

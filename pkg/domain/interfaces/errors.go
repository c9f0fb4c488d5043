package interfaces

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for session persistence
var (
	// ErrSessionNotFound is returned when the storage location for a
	// session does not exist. Recoverable; the caller decides.
	ErrSessionNotFound = goerr.New("session not found")

	// ErrSessionCorrupt is returned when a stored session record exists
	// but cannot be parsed. The system does not attempt repair.
	ErrSessionCorrupt = goerr.New("session record corrupt")
)

package types

import "github.com/m-mizutani/goerr/v2"

// ValidationStatus represents the overall verdict for a brand name candidate
type ValidationStatus string

const (
	ValidationStatusClear   ValidationStatus = "clear"
	ValidationStatusCaution ValidationStatus = "caution"
	ValidationStatusBlocked ValidationStatus = "blocked"
)

// AllValidationStatuses returns all valid validation statuses
func AllValidationStatuses() []ValidationStatus {
	return []ValidationStatus{
		ValidationStatusClear,
		ValidationStatusCaution,
		ValidationStatusBlocked,
	}
}

// IsValid checks if the validation status is valid
func (s ValidationStatus) IsValid() bool {
	switch s {
	case ValidationStatusClear,
		ValidationStatusCaution,
		ValidationStatusBlocked:
		return true
	default:
		return false
	}
}

// String returns the string representation of the validation status
func (s ValidationStatus) String() string {
	return string(s)
}

// StatusFromScore derives the validation status from an overall score.
// Thresholds: >= 80 clear, >= 50 caution, otherwise blocked.
func StatusFromScore(score int) ValidationStatus {
	switch {
	case score >= 80:
		return ValidationStatusClear
	case score >= 50:
		return ValidationStatusCaution
	default:
		return ValidationStatusBlocked
	}
}

// ParseValidationStatus parses a string into a ValidationStatus
func ParseValidationStatus(s string) (ValidationStatus, error) {
	status := ValidationStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid validation status", goerr.V("status", s))
	}
	return status, nil
}

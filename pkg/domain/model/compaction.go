package model

import "time"

// Turn is one entry of a conversation history. Most fields are optional;
// essential-info extraction scans for whichever are present.
type Turn struct {
	Role          string         `json:"role,omitempty"`
	Type          string         `json:"type,omitempty"`
	Content       string         `json:"content,omitempty"`
	UserBrief     *UserBrief     `json:"user_brief,omitempty"`
	ApprovedNames []string       `json:"approved_names,omitempty"`
	Feedback      *Feedback      `json:"feedback,omitempty"`
	Decision      string         `json:"decision,omitempty"`
	Constraint    string         `json:"constraint,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Feedback carries user reactions to proposed names
type Feedback struct {
	LikedNames    []string `json:"liked_names,omitempty"`
	DislikedNames []string `json:"disliked_names,omitempty"`
}

// FeedbackThemes aggregates liked/disliked patterns across a history
type FeedbackThemes struct {
	Liked    []string `json:"liked"`
	Disliked []string `json:"disliked"`
}

// KeyDecision records a decision or constraint stated during the session
type KeyDecision struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// EssentialInfo is the information that must survive compaction.
// Derived by scanning the full turn sequence; never persisted on its own.
type EssentialInfo struct {
	UserBrief      *UserBrief     `json:"user_brief,omitempty"`
	ApprovedNames  []string       `json:"approved_names"`
	FeedbackThemes FeedbackThemes `json:"feedback_themes"`
	KeyDecisions   []KeyDecision  `json:"key_decisions"`
}

// CompactionResult is the outcome of compacting a conversation history
type CompactionResult struct {
	Summary         string        `json:"summary"`
	EssentialInfo   EssentialInfo `json:"essential_info"`
	CompactedAt     time.Time     `json:"compacted_at"`
	OriginalTurns   int           `json:"original_turns"`
	CompactionRatio float64       `json:"compaction_ratio"`
}

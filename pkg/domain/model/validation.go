package model

import "github.com/benogren/brand-agent/pkg/domain/types"

// DomainCheck summarizes domain availability for a candidate name
type DomainCheck struct {
	ComAvailable  bool            `json:"com_available"`
	AIAvailable   bool            `json:"ai_available"`
	IOAvailable   bool            `json:"io_available"`
	BestAvailable types.Extension `json:"best_available"`
}

// TrademarkMatch is a single mark returned by a trademark search
type TrademarkMatch struct {
	Mark         string `json:"mark"`
	Owner        string `json:"owner,omitempty"`
	Status       string `json:"status,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}

// TrademarkCheck is the raw result of a trademark search for one name
type TrademarkCheck struct {
	RiskLevel      types.TrademarkRisk `json:"risk_level"`
	ConflictsFound int                 `json:"conflicts_found"`
	ExactMatches   []TrademarkMatch    `json:"exact_matches"`
	SimilarMarks   []TrademarkMatch    `json:"similar_marks"`
}

// TrademarkReport is the flattened trademark view carried in a ValidationResult
type TrademarkReport struct {
	RiskLevel      types.TrademarkRisk `json:"risk_level"`
	ConflictsFound int                 `json:"conflicts_found"`
	ExactMatches   []string            `json:"exact_matches"`
	SimilarMarks   []string            `json:"similar_marks"`
}

// ValidationResult is the aggregated verdict for one brand name candidate.
// It is derived purely from checker inputs and recomputed on each call.
type ValidationResult struct {
	BrandName      string                 `json:"brand_name"`
	Status         types.ValidationStatus `json:"validation_status"`
	Domain         DomainCheck            `json:"domain_check"`
	Trademark      TrademarkReport        `json:"trademark_check"`
	Recommendation string                 `json:"recommendation"`
	Concerns       []string               `json:"concerns"`
	Score          int                    `json:"overall_score"`
}

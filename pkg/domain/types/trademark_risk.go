package types

// TrademarkRisk represents the assessed risk of a trademark conflict
type TrademarkRisk string

const (
	TrademarkRiskLow      TrademarkRisk = "low"
	TrademarkRiskMedium   TrademarkRisk = "medium"
	TrademarkRiskHigh     TrademarkRisk = "high"
	TrademarkRiskCritical TrademarkRisk = "critical"
	TrademarkRiskUnknown  TrademarkRisk = "unknown"
)

// AllTrademarkRisks returns all valid trademark risk levels
func AllTrademarkRisks() []TrademarkRisk {
	return []TrademarkRisk{
		TrademarkRiskLow,
		TrademarkRiskMedium,
		TrademarkRiskHigh,
		TrademarkRiskCritical,
		TrademarkRiskUnknown,
	}
}

// IsValid checks if the trademark risk level is valid
func (r TrademarkRisk) IsValid() bool {
	switch r {
	case TrademarkRiskLow,
		TrademarkRiskMedium,
		TrademarkRiskHigh,
		TrademarkRiskCritical,
		TrademarkRiskUnknown:
		return true
	default:
		return false
	}
}

// Normalize returns the risk level, treating empty or unrecognized values as unknown
func (r TrademarkRisk) Normalize() TrademarkRisk {
	if !r.IsValid() {
		return TrademarkRiskUnknown
	}
	return r
}

// ScorePenalty returns the validation score penalty for this risk level
func (r TrademarkRisk) ScorePenalty() int {
	switch r {
	case TrademarkRiskCritical:
		return 60
	case TrademarkRiskHigh:
		return 40
	case TrademarkRiskMedium:
		return 20
	case TrademarkRiskLow:
		return 5
	default:
		return 10
	}
}

// String returns the string representation of the trademark risk
func (r TrademarkRisk) String() string {
	return string(r)
}

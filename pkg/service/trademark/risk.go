package trademark

import (
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
)

// deriveRisk maps search matches to a risk level. An exact match on a live
// mark is always critical; otherwise risk grows with the similar-mark count.
func deriveRisk(exactMatches, similarMarks []model.TrademarkMatch) types.TrademarkRisk {
	switch {
	case len(exactMatches) > 0:
		return types.TrademarkRiskCritical
	case len(similarMarks) >= 5:
		return types.TrademarkRiskHigh
	case len(similarMarks) >= 2:
		return types.TrademarkRiskMedium
	default:
		return types.TrademarkRiskLow
	}
}

func buildCheck(exactMatches, similarMarks []model.TrademarkMatch) *model.TrademarkCheck {
	if exactMatches == nil {
		exactMatches = []model.TrademarkMatch{}
	}
	if similarMarks == nil {
		similarMarks = []model.TrademarkMatch{}
	}
	return &model.TrademarkCheck{
		RiskLevel:      deriveRisk(exactMatches, similarMarks),
		ConflictsFound: len(exactMatches) + len(similarMarks),
		ExactMatches:   exactMatches,
		SimilarMarks:   similarMarks,
	}
}

// unknownCheck is the conservative default returned when a search backend
// fails. The caller never sees the failure; validation scoring treats
// unknown risk with its own penalty.
func unknownCheck() *model.TrademarkCheck {
	return &model.TrademarkCheck{
		RiskLevel:    types.TrademarkRiskUnknown,
		ExactMatches: []model.TrademarkMatch{},
		SimilarMarks: []model.TrademarkMatch{},
	}
}

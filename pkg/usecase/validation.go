package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/service/domaincheck"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ValidationUseCase aggregates domain and trademark checks into a verdict
// per brand name.
type ValidationUseCase struct {
	domains    interfaces.DomainChecker
	trademarks interfaces.TrademarkChecker
	batchDelay time.Duration
}

func NewValidationUseCase(domains interfaces.DomainChecker, trademarks interfaces.TrademarkChecker, batchDelay time.Duration) *ValidationUseCase {
	if batchDelay <= 0 {
		batchDelay = domaincheck.DefaultBatchDelay
	}
	return &ValidationUseCase{
		domains:    domains,
		trademarks: trademarks,
		batchDelay: batchDelay,
	}
}

// Validate checks one brand name against domain availability and trademark
// conflicts and compiles the combined verdict. category is an optional
// trademark classification hint.
func (uc *ValidationUseCase) Validate(ctx context.Context, brandName, category string) (*model.ValidationResult, error) {
	if brandName == "" {
		return nil, goerr.New("brand name is required")
	}

	domains, err := uc.domains.Check(ctx, brandName, types.DefaultExtensions())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check domain availability", goerr.V("brand_name", brandName))
	}

	trademarks, err := uc.trademarks.Search(ctx, brandName, category)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search trademarks", goerr.V("brand_name", brandName))
	}

	result := Compile(brandName, domains, trademarks)

	logging.From(ctx).Info("brand name validated",
		"brand_name", brandName,
		"status", result.Status,
		"score", result.Score,
	)
	return result, nil
}

// ValidateBatch validates names sequentially with a fixed pause between
// them, then sorts the results best first. Ties keep input order.
func (uc *ValidationUseCase) ValidateBatch(ctx context.Context, brandNames []string, category string) ([]*model.ValidationResult, error) {
	results := make([]*model.ValidationResult, 0, len(brandNames))
	for i, name := range brandNames {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, goerr.Wrap(ctx.Err(), "batch validation canceled")
			case <-time.After(uc.batchDelay):
			}
		}

		result, err := uc.Validate(ctx, name, category)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// Compile derives a validation verdict from raw check results. It is a pure
// function: the same inputs always produce the same verdict, and nothing is
// cached between calls.
func Compile(brandName string, domains map[string]bool, trademarks *model.TrademarkCheck) *model.ValidationResult {
	label := domaincheck.Normalize(brandName)
	domain := model.DomainCheck{
		ComAvailable: domains[label+types.ExtensionCom.String()],
		AIAvailable:  domains[label+types.ExtensionAI.String()],
		IOAvailable:  domains[label+types.ExtensionIO.String()],
	}

	switch {
	case domain.ComAvailable:
		domain.BestAvailable = types.ExtensionCom
	case domain.AIAvailable:
		domain.BestAvailable = types.ExtensionAI
	case domain.IOAvailable:
		domain.BestAvailable = types.ExtensionIO
	default:
		domain.BestAvailable = types.ExtensionNone
	}

	if trademarks == nil {
		trademarks = &model.TrademarkCheck{RiskLevel: types.TrademarkRiskUnknown}
	}
	risk := trademarks.RiskLevel.Normalize()

	score := validationScore(domain, risk, len(trademarks.ExactMatches))
	status := types.StatusFromScore(score)

	return &model.ValidationResult{
		BrandName: brandName,
		Status:    status,
		Domain:    domain,
		Trademark: model.TrademarkReport{
			RiskLevel:      risk,
			ConflictsFound: trademarks.ConflictsFound,
			ExactMatches:   markNames(trademarks.ExactMatches),
			SimilarMarks:   markNames(trademarks.SimilarMarks),
		},
		Recommendation: recommendation(status, domain.BestAvailable),
		Concerns:       concerns(domain.BestAvailable, risk, trademarks.ExactMatches),
		Score:          score,
	}
}

// validationScore starts from 100 and subtracts penalties for missing
// domains, trademark risk, and exact matches. Clamped to [0, 100].
func validationScore(domain model.DomainCheck, risk types.TrademarkRisk, exactMatches int) int {
	score := 100

	if !domain.ComAvailable {
		score -= 20
	}
	if !domain.AIAvailable && !domain.IOAvailable {
		score -= 10
	}

	score -= risk.ScorePenalty()

	if exactMatches > 0 {
		score -= 30
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func recommendation(status types.ValidationStatus, best types.Extension) string {
	switch status {
	case types.ValidationStatusClear:
		return fmt.Sprintf("Clear to use - %s domain available with low trademark risk", best)
	case types.ValidationStatusCaution:
		if best == types.ExtensionNone {
			return "Use with caution - no ideal domain available"
		}
		return fmt.Sprintf("Use with caution - %s available but trademark concerns exist", best)
	default:
		return "Blocked - high risk due to trademark conflicts or domain unavailability"
	}
}

func concerns(best types.Extension, risk types.TrademarkRisk, exactMatches []model.TrademarkMatch) []string {
	var concerns []string

	if best == types.ExtensionNone {
		concerns = append(concerns, "No premium domains (.com, .ai, .io) available")
	} else if best != types.ExtensionCom {
		concerns = append(concerns, ".com domain not available")
	}

	if risk == types.TrademarkRiskCritical || risk == types.TrademarkRiskHigh {
		concerns = append(concerns, fmt.Sprintf("High trademark risk (%s)", risk))
	}

	if len(exactMatches) > 0 {
		mark := exactMatches[0].Mark
		if mark == "" {
			mark = "Unknown"
		}
		concerns = append(concerns, fmt.Sprintf("Exact trademark match found: %s", mark))
	}

	return concerns
}

func markNames(matches []model.TrademarkMatch) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Mark)
	}
	return names
}

package interfaces

import (
	"context"

	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
)

// DomainChecker checks domain availability for a brand name candidate.
// Implementations normalize the name (lowercase, spaces and hyphens
// removed) and return a mapping of fully-qualified domain to availability.
type DomainChecker interface {
	Check(ctx context.Context, brandName string, extensions []types.Extension) (map[string]bool, error)
}

// TrademarkChecker searches for conflicting trademarks for a candidate name.
// category is an optional Nice classification hint and may be empty.
type TrademarkChecker interface {
	Search(ctx context.Context, brandName string, category string) (*model.TrademarkCheck, error)
}

package trademark

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
)

// wellKnownMarks always produce an exact match in the stub, so validation
// of famous names behaves plausibly without network access.
var wellKnownMarks = map[string]string{
	"apple":     "Apple Inc.",
	"google":    "Google LLC",
	"amazon":    "Amazon Technologies, Inc.",
	"nike":      "Nike, Inc.",
	"tesla":     "Tesla, Inc.",
	"microsoft": "Microsoft Corporation",
	"spotify":   "Spotify AB",
	"netflix":   "Netflix, Inc.",
}

// StubChecker is a deterministic offline trademark checker, selected by
// configuration when no USPTO credentials are present.
type StubChecker struct{}

var _ interfaces.TrademarkChecker = &StubChecker{}

// NewStubChecker creates a deterministic stub trademark checker
func NewStubChecker() *StubChecker {
	return &StubChecker{}
}

// Search returns a deterministic result derived from the brand name
func (c *StubChecker) Search(ctx context.Context, brandName string, category string) (*model.TrademarkCheck, error) {
	key := strings.ToLower(strings.TrimSpace(brandName))

	var exact []model.TrademarkMatch
	if owner, ok := wellKnownMarks[key]; ok {
		exact = append(exact, model.TrademarkMatch{
			Mark:   brandName,
			Owner:  owner,
			Status: "LIVE",
		})
	}

	// Hash-derived similar-mark count in [0, 3], stable per name
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	similarCount := int(h.Sum32() % 4)

	var similar []model.TrademarkMatch
	for i := 0; i < similarCount; i++ {
		similar = append(similar, model.TrademarkMatch{
			Mark:   brandName + similarSuffixes[i],
			Owner:  "Registered Holder",
			Status: "LIVE",
		})
	}

	return buildCheck(exact, similar), nil
}

var similarSuffixes = []string{" Labs", " Co", " Pro"}

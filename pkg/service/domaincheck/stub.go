package domaincheck

import (
	"context"
	"hash/fnv"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// wellKnownLabels are names whose .com is always reported taken, which
// keeps demo output believable without network access.
var wellKnownLabels = map[string]struct{}{
	"google": {}, "apple": {}, "amazon": {}, "meta": {}, "stripe": {},
	"tesla": {}, "spotify": {}, "netflix": {}, "airbnb": {}, "slack": {},
}

// StubChecker is a deterministic offline domain checker. The same input
// always yields the same result, which makes it usable in tests and as the
// no-credentials fallback selected by configuration.
type StubChecker struct {
	cache *Cache
}

var _ interfaces.DomainChecker = &StubChecker{}

// NewStubChecker creates a deterministic stub domain checker
func NewStubChecker() *StubChecker {
	return &StubChecker{cache: NewCache(DefaultTTL)}
}

// Check returns deterministic availability derived from a hash of the
// fully-qualified domain.
func (c *StubChecker) Check(ctx context.Context, brandName string, extensions []types.Extension) (map[string]bool, error) {
	if len(extensions) == 0 {
		extensions = types.DefaultExtensions()
	}
	label := Normalize(brandName)
	if label == "" {
		return nil, goerr.New("brand name normalizes to empty label", goerr.V("brand_name", brandName))
	}

	results := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		domain := label + ext.String()
		if available, ok := c.cache.Get(domain); ok {
			results[domain] = available
			continue
		}

		available := stubAvailable(label, domain)
		c.cache.Set(domain, available)
		results[domain] = available
	}
	return results, nil
}

func stubAvailable(label, domain string) bool {
	if _, taken := wellKnownLabels[label]; taken {
		return false
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(domain))
	// Roughly three out of four domains report available
	return h.Sum32()%4 != 0
}

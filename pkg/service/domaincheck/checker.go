package domaincheck

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultBatchDelay is the fixed pause between names in a batch check,
// to stay polite toward WHOIS servers.
const DefaultBatchDelay = 500 * time.Millisecond

// Normalize converts a brand name into the label used for domain lookups:
// lowercase with spaces and hyphens removed.
func Normalize(brandName string) string {
	s := strings.ToLower(brandName)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// WhoisChecker checks availability through live WHOIS lookups.
// Lookup failures are treated as "available": WHOIS servers are flaky and
// a false positive here is caught later by registration itself. This
// optimistic default is deliberate.
type WhoisChecker struct {
	client *whois.Client
	cache  *Cache
}

var _ interfaces.DomainChecker = &WhoisChecker{}

type WhoisOption func(*WhoisChecker)

// WithCache replaces the default availability cache
func WithCache(cache *Cache) WhoisOption {
	return func(c *WhoisChecker) {
		c.cache = cache
	}
}

// NewWhoisChecker creates a WHOIS-backed domain checker
func NewWhoisChecker(opts ...WhoisOption) *WhoisChecker {
	c := &WhoisChecker{
		client: whois.NewClient(),
		cache:  NewCache(DefaultTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns availability for the brand name across the given
// extensions. Results are served from the TTL cache when fresh.
func (c *WhoisChecker) Check(ctx context.Context, brandName string, extensions []types.Extension) (map[string]bool, error) {
	if len(extensions) == 0 {
		extensions = types.DefaultExtensions()
	}
	label := Normalize(brandName)
	if label == "" {
		return nil, goerr.New("brand name normalizes to empty label", goerr.V("brand_name", brandName))
	}

	results := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "domain check canceled")
		}

		domain := label + ext.String()
		if available, ok := c.cache.Get(domain); ok {
			results[domain] = available
			continue
		}

		available := c.lookup(ctx, domain)
		c.cache.Set(domain, available)
		results[domain] = available
	}
	return results, nil
}

func (c *WhoisChecker) lookup(ctx context.Context, domain string) bool {
	raw, err := c.client.Whois(domain)
	if err != nil {
		logging.From(ctx).Debug("whois lookup failed, assuming available",
			"domain", domain,
			"error", err.Error(),
		)
		return true
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		if errors.Is(err, whoisparser.ErrNotFoundDomain) {
			return true
		}
		logging.From(ctx).Debug("whois parse failed, assuming available",
			"domain", domain,
			"error", err.Error(),
		)
		return true
	}

	// A registrar or creation date means the domain is registered
	if parsed.Registrar != nil && parsed.Registrar.Name != "" {
		return false
	}
	if parsed.Domain != nil && parsed.Domain.CreatedDate != "" {
		return false
	}
	return true
}

// Batch checks multiple brand names sequentially with a fixed delay
// between names. No adaptive backoff; the delay is the rate limit.
func Batch(ctx context.Context, checker interfaces.DomainChecker, brandNames []string, extensions []types.Extension, delay time.Duration) (map[string]map[string]bool, error) {
	if delay <= 0 {
		delay = DefaultBatchDelay
	}

	results := make(map[string]map[string]bool, len(brandNames))
	for i, name := range brandNames {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, goerr.Wrap(ctx.Err(), "batch domain check canceled")
			case <-time.After(delay):
			}
		}

		checked, err := checker.Check(ctx, name, extensions)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to check domains", goerr.V("brand_name", name))
		}
		results[name] = checked
	}
	return results, nil
}

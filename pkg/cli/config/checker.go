package config

import (
	"time"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/service/domaincheck"
	"github.com/benogren/brand-agent/pkg/service/trademark"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Checker holds CLI flags for domain and trademark checker backends
type Checker struct {
	domainBackend    string
	trademarkBackend string
	usptoAPIKey      string
	cacheTTL         time.Duration
	batchDelay       time.Duration
}

// Flags returns CLI flags for checker configuration
func (c *Checker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "domain-backend",
			Usage:       "Domain availability backend (whois or stub)",
			Value:       "whois",
			Sources:     cli.EnvVars("BRAND_STUDIO_DOMAIN_BACKEND"),
			Destination: &c.domainBackend,
		},
		&cli.StringFlag{
			Name:        "trademark-backend",
			Usage:       "Trademark search backend (uspto or stub)",
			Value:       "uspto",
			Sources:     cli.EnvVars("BRAND_STUDIO_TRADEMARK_BACKEND"),
			Destination: &c.trademarkBackend,
		},
		&cli.StringFlag{
			Name:        "uspto-api-key",
			Usage:       "USPTO API key for trademark search",
			Sources:     cli.EnvVars("BRAND_STUDIO_USPTO_API_KEY"),
			Destination: &c.usptoAPIKey,
		},
		&cli.DurationFlag{
			Name:        "domain-cache-ttl",
			Usage:       "TTL for cached domain availability results",
			Value:       domaincheck.DefaultTTL,
			Sources:     cli.EnvVars("BRAND_STUDIO_DOMAIN_CACHE_TTL"),
			Destination: &c.cacheTTL,
		},
		&cli.DurationFlag{
			Name:        "batch-delay",
			Usage:       "Pause between names during batch validation",
			Value:       domaincheck.DefaultBatchDelay,
			Sources:     cli.EnvVars("BRAND_STUDIO_BATCH_DELAY"),
			Destination: &c.batchDelay,
		},
	}
}

// BatchDelay returns the configured batch validation delay
func (c *Checker) BatchDelay() time.Duration {
	return c.batchDelay
}

// ConfigureDomain builds the domain availability checker
func (c *Checker) ConfigureDomain() (interfaces.DomainChecker, error) {
	switch c.domainBackend {
	case "whois":
		return domaincheck.NewWhoisChecker(
			domaincheck.WithCache(domaincheck.NewCache(c.cacheTTL)),
		), nil
	case "stub":
		logging.Default().Info("Using stub domain checker (development mode)")
		return domaincheck.NewStubChecker(), nil
	default:
		return nil, goerr.New("invalid domain backend", goerr.V("backend", c.domainBackend))
	}
}

// ConfigureTrademark builds the trademark search checker
func (c *Checker) ConfigureTrademark() (interfaces.TrademarkChecker, error) {
	switch c.trademarkBackend {
	case "uspto":
		return trademark.NewUSPTOClient(c.usptoAPIKey), nil
	case "stub":
		logging.Default().Info("Using stub trademark checker (development mode)")
		return trademark.NewStubChecker(), nil
	default:
		return nil, goerr.New("invalid trademark backend", goerr.V("backend", c.trademarkBackend))
	}
}

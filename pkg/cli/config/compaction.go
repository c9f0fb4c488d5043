package config

import (
	"github.com/benogren/brand-agent/pkg/service/compaction"
	"github.com/urfave/cli/v3"
)

// Compaction holds CLI flags for context compaction configuration
type Compaction struct {
	model      string
	tokenLimit int
}

// Flags returns CLI flags for compaction configuration
func (c *Compaction) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "compaction-model",
			Usage:       "Model name whose token budget drives compaction",
			Value:       compaction.DefaultModelName,
			Sources:     cli.EnvVars("BRAND_STUDIO_COMPACTION_MODEL"),
			Destination: &c.model,
		},
		&cli.IntFlag{
			Name:        "token-limit",
			Usage:       "Override the compaction token budget (0 uses the model preset)",
			Sources:     cli.EnvVars("BRAND_STUDIO_TOKEN_LIMIT"),
			Destination: &c.tokenLimit,
		},
	}
}

// Model returns the configured compaction model name
func (c *Compaction) Model() string {
	return c.model
}

// TokenLimit returns the configured token budget override
func (c *Compaction) TokenLimit() int {
	return c.tokenLimit
}

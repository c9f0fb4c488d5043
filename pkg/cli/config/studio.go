package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// StudioConfig customizes brand generation: the personality presets users
// may pick from and the naming strategies offered to the generator.
// Loaded from a TOML file; an absent file means built-in defaults apply.
type StudioConfig struct {
	Personalities []Personality `toml:"personality"`
	Strategies    []Strategy    `toml:"strategy"`
}

// Personality is one selectable brand personality preset
type Personality struct {
	ID         string `toml:"id"`
	Name       string `toml:"name"`
	Adjectives string `toml:"adjectives"`
}

// Validate checks if the Personality is valid
func (p *Personality) Validate() error {
	if p.ID == "" {
		return goerr.New("personality ID is required")
	}
	if p.ID != strings.ToLower(p.ID) {
		return goerr.New("personality ID must be lowercase", goerr.V("id", p.ID))
	}
	if p.Name == "" {
		return goerr.New("personality name is required", goerr.V("id", p.ID))
	}
	return nil
}

// Strategy is one naming strategy offered during generation
type Strategy struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Validate checks if the Strategy is valid
func (s *Strategy) Validate() error {
	if s.ID == "" {
		return goerr.New("strategy ID is required")
	}
	if s.Name == "" {
		return goerr.New("strategy name is required", goerr.V("id", s.ID))
	}
	return nil
}

// Validate checks if the StudioConfig is valid
func (c *StudioConfig) Validate() error {
	personalityIDs := make(map[string]bool)
	for _, p := range c.Personalities {
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid personality")
		}
		if personalityIDs[p.ID] {
			return goerr.New("duplicate personality ID", goerr.V("id", p.ID))
		}
		personalityIDs[p.ID] = true
	}

	strategyIDs := make(map[string]bool)
	for _, s := range c.Strategies {
		if err := s.Validate(); err != nil {
			return goerr.Wrap(err, "invalid strategy")
		}
		if strategyIDs[s.ID] {
			return goerr.New("duplicate strategy ID", goerr.V("id", s.ID))
		}
		strategyIDs[s.ID] = true
	}

	return nil
}

// HasPersonality reports whether the given personality is defined.
// An empty config accepts everything.
func (c *StudioConfig) HasPersonality(id string) bool {
	if len(c.Personalities) == 0 {
		return true
	}
	for _, p := range c.Personalities {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Studio holds the CLI flag pointing at the studio configuration file
type Studio struct {
	path string
}

// Flags returns CLI flags for studio configuration
func (s *Studio) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "studio-config",
			Usage:       "Path to studio configuration TOML file",
			Sources:     cli.EnvVars("BRAND_STUDIO_CONFIG"),
			Destination: &s.path,
		},
	}
}

// Configure loads and validates the studio configuration. Returns an empty
// config when no path was given.
func (s *Studio) Configure() (*StudioConfig, error) {
	if s.path == "" {
		return &StudioConfig{}, nil
	}
	return LoadStudioConfig(s.path)
}

// LoadStudioConfig loads the studio configuration from a TOML file
func LoadStudioConfig(path string) (*StudioConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read studio config", goerr.V("path", path))
	}

	var config StudioConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "studio config validation failed", goerr.V("path", path))
	}

	return &config, nil
}

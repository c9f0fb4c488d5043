package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benogren/brand-agent/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studio.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadStudioConfig(t *testing.T) {
	path := writeTOML(t, `
[[personality]]
id = "playful"
name = "Playful"
adjectives = "fun, creative, innovative"

[[personality]]
id = "luxury"
name = "Luxury"
adjectives = "premium, exclusive, sophisticated"

[[strategy]]
id = "portmanteau"
name = "Portmanteau"
description = "Blend two meaningful words"
`)

	cfg, err := config.LoadStudioConfig(path)
	gt.NoError(t, err).Required()

	gt.Array(t, cfg.Personalities).Length(2)
	gt.Value(t, cfg.Personalities[0].ID).Equal("playful")
	gt.Array(t, cfg.Strategies).Length(1)

	gt.Bool(t, cfg.HasPersonality("playful")).True()
	gt.Bool(t, cfg.HasPersonality("professional")).False()
}

func TestLoadStudioConfigDuplicateID(t *testing.T) {
	path := writeTOML(t, `
[[personality]]
id = "playful"
name = "Playful"

[[personality]]
id = "playful"
name = "Also Playful"
`)

	_, err := config.LoadStudioConfig(path)
	gt.Error(t, err)
}

func TestLoadStudioConfigInvalidID(t *testing.T) {
	path := writeTOML(t, `
[[personality]]
id = "Playful"
name = "Playful"
`)

	_, err := config.LoadStudioConfig(path)
	gt.Error(t, err)
}

func TestLoadStudioConfigMissingFile(t *testing.T) {
	_, err := config.LoadStudioConfig(filepath.Join(t.TempDir(), "absent.toml"))
	gt.Error(t, err)
}

func TestEmptyStudioConfigAcceptsAnyPersonality(t *testing.T) {
	cfg := &config.StudioConfig{}
	gt.Bool(t, cfg.HasPersonality("anything")).True()
}

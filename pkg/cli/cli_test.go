package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/benogren/brand-agent/pkg/cli"
	"github.com/m-mizutani/gt"
)

func TestRun_ValidateCommand_StubBackends(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"brand-agent", "validate",
		"--domain-backend", "stub",
		"--trademark-backend", "stub",
		"--batch-delay", "1ms",
		"Nourly", "Mealshift",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_RequiresNames(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"brand-agent", "validate",
		"--domain-backend", "stub",
		"--trademark-backend", "stub",
	}, "test")
	gt.Error(t, err)
}

func TestRun_ValidateCommand_InvalidBackend(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"brand-agent", "validate",
		"--domain-backend", "carrier-pigeon",
		"Nourly",
	}, "test")
	gt.Error(t, err)
}

func TestRun_GenerateCommand_FilesystemRepo(t *testing.T) {
	sessionDir := t.TempDir()

	err := cli.Run(context.Background(), []string{
		"brand-agent", "generate",
		"--description", "AI meal planning app for busy parents",
		"--audience", "busy parents",
		"--personality", "playful",
		"--industry", "food_tech",
		"--domain-backend", "stub",
		"--trademark-backend", "stub",
		"--batch-delay", "1ms",
		"--repository-backend", "filesystem",
		"--session-dir", sessionDir,
	}, "test")
	gt.NoError(t, err)

	// A session file was persisted.
	entries, err := os.ReadDir(sessionDir)
	gt.NoError(t, err).Required()
	gt.Value(t, len(entries)).Equal(1)
}

func TestRun_GenerateCommand_StudioConfigRejectsPersonality(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "studio.toml")
	content := `
[[personality]]
id = "luxury"
name = "Luxury"
adjectives = "premium, exclusive, sophisticated"
`
	gt.NoError(t, os.WriteFile(configPath, []byte(content), 0o600)).Required()

	err := cli.Run(context.Background(), []string{
		"brand-agent", "generate",
		"--description", "AI meal planning app",
		"--personality", "playful",
		"--studio-config", configPath,
		"--domain-backend", "stub",
		"--trademark-backend", "stub",
		"--repository-backend", "memory",
	}, "test")
	gt.Error(t, err)
}

func TestRun_SessionsAndStats(t *testing.T) {
	sessionDir := t.TempDir()

	err := cli.Run(context.Background(), []string{
		"brand-agent", "generate",
		"--description", "AI meal planning app",
		"--domain-backend", "stub",
		"--trademark-backend", "stub",
		"--batch-delay", "1ms",
		"--repository-backend", "filesystem",
		"--session-dir", sessionDir,
	}, "test")
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{
		"brand-agent", "sessions", "list",
		"--repository-backend", "filesystem",
		"--session-dir", sessionDir,
	}, "test")
	gt.NoError(t, err)

	err = cli.Run(context.Background(), []string{
		"brand-agent", "stats",
		"--repository-backend", "filesystem",
		"--session-dir", sessionDir,
	}, "test")
	gt.NoError(t, err)
}

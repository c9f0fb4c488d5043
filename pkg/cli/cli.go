package cli

import (
	"context"

	"github.com/benogren/brand-agent/pkg/cli/config"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	// Optional .env for local development; absence is not an error.
	// Loaded before flag parsing so env-sourced flags can see it.
	godotenv.Load() //nolint:errcheck

	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "brand-agent",
		Usage:   "AI brand naming studio: generate, validate and develop brand names",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("Starting brand-agent", "logger", &loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdGenerate(),
			cmdValidate(),
			cmdSessions(),
			cmdStats(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/benogren/brand-agent/pkg/cli/config"
	"github.com/benogren/brand-agent/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdStats() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "stats",
		Usage: "Show aggregate statistics across stored sessions",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer closeRepo(repo.Close)

			uc := usecase.NewSessionUseCase(repo)
			stats, err := uc.Statistics(ctx)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold).SprintFunc()
			fmt.Printf("%s\n", bold("Session statistics"))
			fmt.Printf("  Sessions:         %d\n", stats.TotalSessions)
			fmt.Printf("  Brands generated: %d\n", stats.TotalBrands)
			fmt.Printf("  Events:           %d\n", stats.TotalEvents)
			fmt.Printf("  Unique users:     %d\n", stats.UniqueUsers)
			return nil
		},
	}
}

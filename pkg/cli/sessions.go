package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/benogren/brand-agent/pkg/cli/config"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/usecase"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSessions() *cli.Command {
	return &cli.Command{
		Name:  "sessions",
		Usage: "Manage stored brainstorming sessions",
		Commands: []*cli.Command{
			cmdSessionsList(),
			cmdSessionsDelete(),
		},
	}
}

func cmdSessionsList() *cli.Command {
	var userID string
	var limit int
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "user",
			Usage:       "Filter sessions by user ID",
			Destination: &userID,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of sessions to list (0 for all)",
			Destination: &limit,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List sessions, newest first",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer closeRepo(repo.Close)

			uc := usecase.NewSessionUseCase(repo)
			sessions, err := uc.List(ctx, types.UserID(userID), limit)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold).SprintFunc()
			fmt.Printf("%-40s %-16s %-20s %7s %7s\n",
				bold("SESSION"), bold("USER"), bold("UPDATED"), bold("EVENTS"), bold("BRANDS"))
			for _, s := range sessions {
				fmt.Printf("%-40s %-16s %-20s %7d %7d\n",
					s.ID, s.UserID, s.UpdatedAt.Format("2006-01-02 15:04:05"),
					s.EventCount, s.BrandCount)
			}
			return nil
		},
	}
}

func cmdSessionsDelete() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a session",
		ArgsUsage: "SESSION_ID",
		Flags:     repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return goerr.New("session ID is required")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer closeRepo(repo.Close)

			uc := usecase.NewSessionUseCase(repo)
			if err := uc.Delete(ctx, types.SessionID(id)); err != nil {
				return err
			}

			fmt.Printf("Deleted session %s\n", id)
			return nil
		},
	}
}

func closeRepo(close func() error) {
	if err := close(); err != nil {
		logging.Default().Error("failed to close repository", "error", err.Error())
	}
}

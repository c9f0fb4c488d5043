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

func cmdValidate() *cli.Command {
	var category string
	var checkerCfg config.Checker

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Trademark category hint",
			Destination: &category,
		},
	}
	flags = append(flags, checkerCfg.Flags()...)

	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate brand names for domain and trademark availability",
		ArgsUsage: "NAME [NAME...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			names := c.Args().Slice()
			if len(names) == 0 {
				return goerr.New("at least one brand name is required")
			}

			domainChecker, err := checkerCfg.ConfigureDomain()
			if err != nil {
				return goerr.Wrap(err, "failed to configure domain checker")
			}
			trademarkChecker, err := checkerCfg.ConfigureTrademark()
			if err != nil {
				return goerr.Wrap(err, "failed to configure trademark checker")
			}

			uc := usecase.NewValidationUseCase(domainChecker, trademarkChecker, checkerCfg.BatchDelay())
			results, err := uc.ValidateBatch(ctx, names, category)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold).SprintFunc()
			fmt.Printf("%-20s %-8s %-6s %-12s %s\n",
				bold("NAME"), bold("STATUS"), bold("SCORE"), bold("BEST DOMAIN"), bold("RISK"))
			for _, r := range results {
				fmt.Printf("%-20s %s %5d  %-12s %s\n",
					r.BrandName, statusLabel(r.Status), r.Score,
					r.Domain.BestAvailable, r.Trademark.RiskLevel)
				for _, concern := range r.Concerns {
					fmt.Printf("    - %s\n", concern)
				}
			}
			return nil
		},
	}
}

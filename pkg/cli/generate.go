package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/benogren/brand-agent/pkg/cli/config"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/service/namegen"
	"github.com/benogren/brand-agent/pkg/usecase"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdGenerate() *cli.Command {
	var description string
	var audience string
	var personality string
	var industry string
	var userID string
	var sessionID string
	var count int
	var validateTop int
	var category string
	var repoCfg config.Repository
	var checkerCfg config.Checker
	var geminiCfg config.Gemini
	var compactionCfg config.Compaction
	var studioCfg config.Studio

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "description",
			Aliases:     []string{"d"},
			Usage:       "Product description to name (required)",
			Required:    true,
			Destination: &description,
		},
		&cli.StringFlag{
			Name:        "audience",
			Usage:       "Target audience",
			Destination: &audience,
		},
		&cli.StringFlag{
			Name:        "personality",
			Usage:       "Brand personality (playful, professional, innovative, luxury)",
			Value:       namegen.DefaultPersonality,
			Destination: &personality,
		},
		&cli.StringFlag{
			Name:        "industry",
			Usage:       "Target industry",
			Destination: &industry,
		},
		&cli.StringFlag{
			Name:        "user",
			Usage:       "User ID owning the session",
			Value:       string(types.DefaultUserID),
			Sources:     cli.EnvVars("BRAND_STUDIO_USER"),
			Destination: &userID,
		},
		&cli.StringFlag{
			Name:        "session",
			Usage:       "Resume an existing session instead of creating one",
			Destination: &sessionID,
		},
		&cli.IntFlag{
			Name:        "count",
			Usage:       "Number of name candidates to generate",
			Value:       namegen.DefaultNames,
			Destination: &count,
		},
		&cli.IntFlag{
			Name:        "validate-top",
			Usage:       "How many top candidates get full validation",
			Value:       usecase.DefaultValidateTop,
			Destination: &validateTop,
		},
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Trademark category hint",
			Destination: &category,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, checkerCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, compactionCfg.Flags()...)
	flags = append(flags, studioCfg.Flags()...)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate and validate brand name candidates",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			studio, err := studioCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load studio configuration")
			}
			if !studio.HasPersonality(personality) {
				return goerr.New("personality not defined in studio configuration",
					goerr.V("personality", personality))
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc, err := buildUseCases(ctx, repo, &checkerCfg, &geminiCfg, &compactionCfg)
			if err != nil {
				return err
			}

			output, err := uc.Pipeline.Generate(ctx, &usecase.GenerateInput{
				SessionID: types.SessionID(sessionID),
				UserID:    types.UserID(userID),
				Brief: &model.UserBrief{
					ProductDescription: description,
					TargetAudience:     audience,
					BrandPersonality:   personality,
					Industry:           industry,
				},
				Count:       count,
				ValidateTop: validateTop,
				Category:    category,
			})
			if err != nil {
				return err
			}

			printGenerateOutput(output)
			return nil
		},
	}
}

func printGenerateOutput(output *usecase.GenerateOutput) {
	bold := color.New(color.Bold).SprintFunc()

	fmt.Printf("%s %s\n\n", bold("Session:"), output.Session.ID)
	fmt.Printf("%s %d candidates generated, %d validated\n\n",
		bold("Names:"), len(output.Candidates), len(output.Validations))

	for _, v := range output.Validations {
		fmt.Printf("  %-20s %s  score %3d  best domain %s\n",
			v.BrandName, statusLabel(v.Status), v.Score, v.Domain.BestAvailable)
		for _, concern := range v.Concerns {
			fmt.Printf("      - %s\n", concern)
		}
	}

	if output.Best == nil {
		return
	}

	fmt.Printf("\n%s %s\n", bold("Best:"), output.Best.BrandName)
	fmt.Printf("  %s\n", output.Best.Recommendation)

	if output.SEO != nil {
		fmt.Printf("\n%s\n", bold("SEO"))
		fmt.Printf("  Score:       %d\n", output.SEO.Score)
		fmt.Printf("  Title:       %s\n", output.SEO.MetaTitle)
		fmt.Printf("  Description: %s\n", output.SEO.MetaDescription)
	}

	if output.Story != nil {
		fmt.Printf("\n%s\n", bold("Taglines"))
		for _, tagline := range output.Story.Taglines {
			fmt.Printf("  - %s\n", tagline)
		}
		fmt.Printf("\n%s\n  %s\n", bold("Value proposition"), output.Story.ValueProposition)
	}

	if output.Compaction != nil {
		fmt.Printf("\n%s session history compacted (%d turns)\n",
			bold("Note:"), output.Compaction.OriginalTurns)
	}
}

func statusLabel(status types.ValidationStatus) string {
	switch status {
	case types.ValidationStatusClear:
		return color.GreenString("%-7s", status)
	case types.ValidationStatusCaution:
		return color.YellowString("%-7s", status)
	default:
		return color.RedString("%-7s", status)
	}
}

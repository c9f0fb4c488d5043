package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/benogren/brand-agent/pkg/cli/config"
	httpctrl "github.com/benogren/brand-agent/pkg/controller/http"
	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/usecase"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var checkerCfg config.Checker
	var geminiCfg config.Gemini
	var compactionCfg config.Compaction

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("BRAND_STUDIO_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, checkerCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, compactionCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
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

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(sigCtx)
			g.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return g.Wait()
		},
	}
}

// buildUseCases wires checkers and the optional LLM client into the
// application use cases. Shared by serve and the one-shot commands.
func buildUseCases(ctx context.Context, repo interfaces.Repository, checkerCfg *config.Checker, geminiCfg *config.Gemini, compactionCfg *config.Compaction) (*usecase.UseCases, error) {
	domainChecker, err := checkerCfg.ConfigureDomain()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure domain checker")
	}
	trademarkChecker, err := checkerCfg.ConfigureTrademark()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure trademark checker")
	}

	opts := []usecase.Option{
		usecase.WithDomainChecker(domainChecker),
		usecase.WithTrademarkChecker(trademarkChecker),
		usecase.WithBatchDelay(checkerCfg.BatchDelay()),
		usecase.WithCompactionModel(compactionCfg.Model()),
	}
	if limit := compactionCfg.TokenLimit(); limit > 0 {
		opts = append(opts, usecase.WithTokenLimit(limit))
	}

	llmClient, err := geminiCfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Gemini client")
	}
	if llmClient != nil {
		opts = append(opts, usecase.WithLLMClient(llmClient))
		logging.Default().Info("Gemini client enabled")
	} else {
		logging.Default().Info("Gemini not configured, using deterministic generation")
	}

	return usecase.New(repo, opts...), nil
}

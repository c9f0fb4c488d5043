package config

import (
	"log/slog"
	"os"

	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Logger holds CLI flags for logging configuration
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns CLI flags for logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("BRAND_STUDIO_LOG_LEVEL"),
			Destination: &l.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console or json)",
			Value:       "console",
			Sources:     cli.EnvVars("BRAND_STUDIO_LOG_FORMAT"),
			Destination: &l.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output destination (- for stdout, or a file path)",
			Value:       "-",
			Sources:     cli.EnvVars("BRAND_STUDIO_LOG_OUTPUT"),
			Destination: &l.output,
		},
	}
}

// LogValue renders the configuration for startup logging
func (l *Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.level),
		slog.String("format", l.format),
		slog.String("output", l.output),
	)
}

// Configure builds the process-wide logger from the configured flags and
// installs it as the default. The returned closer releases the log file
// when one was opened.
func (l *Logger) Configure() (func(), error) {
	level, err := logging.ParseLevel(l.level)
	if err != nil {
		return nil, err
	}

	format := logging.FormatConsole
	switch l.format {
	case "console", "":
	case "json":
		format = logging.FormatJSON
	default:
		return nil, goerr.New("invalid log format", goerr.V("format", l.format))
	}

	closer := func() {}
	w := os.Stdout
	if l.output != "-" && l.output != "" {
		f, err := os.OpenFile(l.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", l.output))
		}
		w = f
		closer = func() {
			f.Close() //nolint:errcheck // nothing left to do on close failure
		}
	}

	logging.SetDefault(logging.New(w, level, format))
	return closer, nil
}

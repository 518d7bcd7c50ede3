package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// ErrInvalidInput is returned by the validate command when the input did not
// pass validation. The report has already been written at that point.
var ErrInvalidInput = errors.New("input failed validation")

// Version is set at build time.
var Version = "dev"

// RunIDKey is the context key holding the identifier of one invocation.
type RunIDKey struct{}

// RunID returns the invocation identifier stored in ctx, or "".
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey{}).(string)
	return id
}

type app struct {
	cfg config.Config
	log *slog.Logger
}

// NewRoot returns the formcheck command tree.
func NewRoot() *cli.Command {
	a := &app{log: logger.Discard()}

	return &cli.Command{
		Name:                  "formcheck",
		Usage:                 "Validate form input against a declarative schema",
		Version:               Version,
		EnableShellCompletion: true,
		Description: `Validates a JSON or YAML document mapping field names to raw string values
against a schema of typed, rule-constrained fields.

Settings are read from the environment (and ./.env when present):

  FORMCHECK_ENV          development or production (default: development)
  FORMCHECK_LOG_LEVEL    debug, info, warn or error (default: debug in development, info in production)
  FORMCHECK_LOG_FORMAT   text or json (default: depends on FORMCHECK_ENV)
  FORMCHECK_LANG         message language (default: en)
  FORMCHECK_LOCALES_DIR  directory of YAML catalogs overriding bundled messages`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load environment variables from these files before reading settings (can be repeated)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override FORMCHECK_LOG_LEVEL",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			validateCmd(a),
			typesCmd(),
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.LoadConfig(cmd.StringSlice("env-file")...)
	if err != nil {
		return ctx, err
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	log, err := newLogger(cfg, cmd.Root().ErrWriter)
	if err != nil {
		return ctx, err
	}

	a.cfg = cfg
	a.log = log
	logger.SetAsDefault(log)
	return context.WithValue(ctx, RunIDKey{}, uuid.NewString()), nil
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "formcheck"),
		logger.WithOutput(w),
		logger.WithContextValue("run_id", RunIDKey{}),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(strings.ToLower(cfg.LogFormat))))
	}
	return logger.New(opts...), nil
}

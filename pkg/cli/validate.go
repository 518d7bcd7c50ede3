package cli

import (
	"cmp"
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formcheck"
	"github.com/dmitrymomot/formcheck/pkg/i18n"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/metrics"
	"github.com/dmitrymomot/formcheck/pkg/schema"
)

func validateCmd(a *app) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate an input document against a schema",
		Description: `Reads a JSON or YAML document whose keys are field names and whose values
are a scalar or a list of scalars, validates it with the checkers declared in
the schema and prints a report:

  valid           true when every field passed
  values          coerced values of the fields that passed
  errors          messages per failing field, in rule order
  unknown_fields  input keys the schema does not declare

Exits with status 1 when the input is invalid.

# Examples

  formcheck validate --schema signup.yaml --input form.json
  cat form.yaml | formcheck validate -s signup.yaml --lang zh-CN --format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "Path to the schema file (YAML or JSON)",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "-",
				Usage:   "Path to the input document (YAML or JSON), - reads stdin",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "Message language or Accept-Language list (default: FORMCHECK_LANG)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(formatJSON),
				Usage:   "Output format (json, yaml)",
			},
			&cli.StringSliceFlag{
				Name:  "locale",
				Usage: "Translation file (YAML or JSON) layered over the bundled messages (can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when the input holds fields the schema does not declare",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Write Prometheus metrics of the run to stderr",
			},
		},
		Action: a.validate,
	}
}

func (a *app) validate(ctx context.Context, cmd *cli.Command) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	log := a.log.With(logger.Component("validate"))
	schemaPath := cmd.String("schema")

	s, err := schema.Load(ctx, schemaPath)
	if err != nil {
		log.ErrorContext(ctx, "failed to load schema", logger.Schema(schemaPath), logger.Error(err))
		return err
	}

	input, err := loadInput(cmd.String("input"), cmd.Root().Reader)
	if err != nil {
		return err
	}

	tr, err := a.translator(ctx, cmd.StringSlice("locale"))
	if err != nil {
		return err
	}
	lang := tr.Match(cmp.Or(cmd.String("lang"), a.cfg.Lang))

	reg := prometheus.NewRegistry()
	v, err := s.Build(
		formcheck.WithRenderer(formcheck.TranslatorRenderer(tr, lang)),
		formcheck.WithLogger(log.With(logger.RunID(RunID(ctx)))),
		formcheck.WithObserver(metrics.NewCollector(reg)),
	)
	if err != nil {
		return err
	}

	v.Validate(input)
	report := newReport(s, v, input, lang)
	if cmd.Bool("strict") && len(report.UnknownFields) > 0 {
		report.Valid = false
	}

	for _, u := range report.UnknownFields {
		log.WarnContext(ctx, "unknown input field",
			logger.Field(u.Name),
			slog.String("suggestion", u.Suggestion),
		)
	}
	log.InfoContext(ctx, "validation finished",
		logger.Schema(schemaPath),
		logger.Lang(lang),
		slog.Bool("valid", report.Valid),
		slog.Int("invalid_fields", len(report.Errors)),
	)

	if err := writeReport(cmd.Root().Writer, format, report); err != nil {
		return err
	}
	if cmd.Bool("metrics") {
		if err := metrics.WriteText(cmd.Root().ErrWriter, reg); err != nil {
			return err
		}
	}

	if !report.Valid {
		return ErrInvalidInput
	}
	return nil
}

// translator loads the bundled catalog, patched by FORMCHECK_LOCALES_DIR
// and then by every --locale file in order.
func (a *app) translator(ctx context.Context, files []string) (*i18n.Translator, error) {
	log := a.log.With(logger.Component("i18n"))

	adapters := []i18n.TranslationAdapter{formcheck.Catalog()}
	if dir := a.cfg.LocalesDir; dir != "" {
		adapters = append(adapters, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), dir))
	}

	var errs []error
	for _, f := range files {
		fa, err := i18n.NewFileAdapterFor(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		adapters = append(adapters, fa)
	}
	if len(errs) > 0 {
		log.ErrorContext(ctx, "unusable locale files", logger.Errors(errs...))
		return nil, errors.Join(errs...)
	}

	return i18n.NewTranslator(ctx, i18n.NewMultiAdapter(adapters...),
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log),
	)
}

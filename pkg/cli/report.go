package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck"
	"github.com/dmitrymomot/formcheck/pkg/schema"
)

type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
func parseOutputFormat(cmd *cli.Command) (outputFormat, error) {
	switch f := outputFormat(cmd.String("format")); f {
	case formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %q, valid formats are: json, yaml", f)
	}
}

// Report is the document printed by the validate command.
type Report struct {
	Valid         bool                  `json:"valid" yaml:"valid"`
	Lang          string                `json:"lang" yaml:"lang"`
	Values        map[string]any        `json:"values" yaml:"values"`
	Errors        map[string][]string   `json:"errors,omitempty" yaml:"errors,omitempty"`
	UnknownFields []schema.UnknownField `json:"unknown_fields,omitempty" yaml:"unknown_fields,omitempty"`
}

func newReport(s *schema.Schema, v *formcheck.Validator, input formcheck.RawInput, lang string) Report {
	r := Report{
		Valid:         v.IsValid(),
		Lang:          lang,
		Values:        make(map[string]any),
		UnknownFields: s.UnknownFields(input),
	}

	for _, f := range s.Fields {
		if msgs := v.ErrorsFor(f.Name); len(msgs) > 0 {
			if r.Errors == nil {
				r.Errors = make(map[string][]string)
			}
			r.Errors[f.Name] = msgs
			continue
		}

		vals := v.GetAll(f.Name)
		if len(vals) == 0 {
			continue
		}
		if !f.Multiple {
			r.Values[f.Name] = vals[0].Interface()
			continue
		}
		list := make([]any, 0, len(vals))
		for _, val := range vals {
			list = append(list, val.Interface())
		}
		r.Values[f.Name] = list
	}
	return r
}

func writeReport(w io.Writer, format outputFormat, r Report) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}
}

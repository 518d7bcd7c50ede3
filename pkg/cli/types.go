package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formcheck"
	"github.com/dmitrymomot/formcheck/pkg/schema"
)

func typesCmd() *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List field types and rule keys accepted in schemas",
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer

			fmt.Fprintln(w, "Types:")
			for _, name := range formcheck.TypeNames() {
				t, _ := formcheck.ParseType(name)
				fmt.Fprintf(w, "  %-14s %s\n", name, t.Kind())
			}

			fmt.Fprintln(w, "Rules:")
			for _, key := range schema.RuleKeys() {
				fmt.Fprintf(w, "  %s\n", key)
			}
			return nil
		},
	}
}

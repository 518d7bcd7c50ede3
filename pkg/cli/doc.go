// Package cli implements the formcheck command line interface on top of
// github.com/urfave/cli/v3.
//
// Commands:
//
//	formcheck validate --schema FILE [--input FILE] [--lang LANG] [--format json|yaml]
//	formcheck types
//
// validate returns ErrInvalidInput after printing the report when the input
// fails validation; the caller maps it to exit status 1.
package cli

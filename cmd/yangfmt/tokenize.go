package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yangfmt/internal/diag"
	"yangfmt/internal/diagfmt"
	"yangfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.yang",
	Short: "Dump the raw lexer output for a YANG file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	result, scanErr := driver.Tokenize(args[0])
	if result == nil {
		return scanErr
	}

	switch outputFormat {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	if err != nil {
		return err
	}

	if scanErr != nil {
		if d, ok := diag.FromError(scanErr); ok {
			diagfmt.PrettyDiagnostic(os.Stderr, d, result.File, diagfmt.PrettyOpts{
				Color: useColor(cmd, os.Stderr),
			})
		}
		cmd.SilenceErrors = true
		return fmt.Errorf("tokenize: %s: %v", args[0], scanErr)
	}
	return nil
}

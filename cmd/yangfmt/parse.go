package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yangfmt/internal/diag"
	"yangfmt/internal/diagfmt"
	"yangfmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.yang",
	Short: "Dump the syntax tree for a YANG file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	result, parseErr := driver.ParseFile(args[0])
	if parseErr != nil {
		if result != nil {
			if d, ok := diag.FromError(parseErr); ok {
				diagfmt.PrettyDiagnostic(os.Stderr, d, result.File, diagfmt.PrettyOpts{
					Color: useColor(cmd, os.Stderr),
				})
				cmd.SilenceErrors = true
			}
		}
		return fmt.Errorf("parse: %s: %v", args[0], parseErr)
	}

	switch outputFormat {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, result.Tree)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}

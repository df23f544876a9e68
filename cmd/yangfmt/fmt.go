package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"yangfmt/internal/config"
	"yangfmt/internal/diag"
	"yangfmt/internal/diagfmt"
	"yangfmt/internal/driver"
	"yangfmt/internal/format"
	"yangfmt/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [path...]",
	Short: "Format YANG files",
	Long: `Format YANG files or directories in place. With no paths (or "-"),
reads from STDIN and prints the result to STDOUT.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Int("max-width", 79, "try to wrap lines at this column")
	fmtCmd.Flags().Int("indent", 2, "number of spaces used for indentation")
	fmtCmd.Flags().Bool("canonical-order", false, "sort statements into canonical order where unambiguous")
	fmtCmd.Flags().Bool("check", false, "report files that would change, without rewriting them")
	fmtCmd.Flags().Bool("stdout", false, "print formatted output instead of rewriting files")
	fmtCmd.Flags().Bool("cache", false, "skip files already known to be formatted")
	fmtCmd.Flags().Int("jobs", 0, "number of files to format concurrently (0 = one per CPU)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}

	formatOpts, err := resolveFormatOptions(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return runFmtStdin(cmd, formatOpts)
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:  check,
		Stdout: writeToStdout,
		Cache:  useCache,
		Jobs:   jobs,
		Format: formatOpts,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			renderFmtError(cmd, res.Path, res.Err, res.File)
			continue
		}

		switch {
		case writeToStdout:
			_, _ = os.Stdout.Write(res.Formatted)
		case check && res.Changed:
			hasChanges = true
			if !quiet {
				fmt.Fprintln(os.Stdout, res.Path)
			}
		case res.Changed && !quiet:
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func runFmtStdin(cmd *cobra.Command, opts format.Options) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("fmt: failed to read from STDIN: %w", err)
	}

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<stdin>", data))

	if err := format.FormatFile(os.Stdout, file, opts); err != nil {
		renderFmtError(cmd, "<stdin>", err, file)
		return fmt.Errorf("fmt: failed to format STDIN")
	}
	return nil
}

// resolveFormatOptions merges flags over the nearest yangfmt.toml over the
// defaults. Flags only win when set explicitly.
func resolveFormatOptions(cmd *cobra.Command) (format.Options, error) {
	maxWidth, err := cmd.Flags().GetInt("max-width")
	if err != nil {
		return format.Options{}, err
	}
	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return format.Options{}, err
	}
	canonical, err := cmd.Flags().GetBool("canonical-order")
	if err != nil {
		return format.Options{}, err
	}

	opts := format.Options{
		MaxWidth:       maxWidth,
		IndentWidth:    indent,
		CanonicalOrder: canonical,
	}

	cfg, found, err := config.Discover(".")
	if err != nil {
		return format.Options{}, err
	}
	if !found {
		return opts, nil
	}

	if cfg.MaxWidth > 0 && !cmd.Flags().Changed("max-width") {
		opts.MaxWidth = cfg.MaxWidth
	}
	if cfg.Indent > 0 && !cmd.Flags().Changed("indent") {
		opts.IndentWidth = cfg.Indent
	}
	if cfg.CanonicalOrder && !cmd.Flags().Changed("canonical-order") {
		opts.CanonicalOrder = true
	}
	return opts, nil
}

// renderFmtError shows a positional diagnostic with source context when the
// error carries one, and a plain message otherwise.
func renderFmtError(cmd *cobra.Command, path string, err error, file *source.File) {
	if d, ok := diag.FromError(err); ok && file != nil {
		diagfmt.PrettyDiagnostic(os.Stderr, d, file, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
		return
	}
	fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", path, err)
}

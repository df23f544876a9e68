package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"yangfmt/internal/diag"
	"yangfmt/internal/source"
)

// PrettyOpts configures diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

var (
	errorColor    = color.New(color.FgRed, color.Bold)
	locationColor = color.New(color.Bold)
	caretColor    = color.New(color.FgRed)
)

// PrettyDiagnostic renders one diagnostic as
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//
// followed by the offending source line with a caret underneath.
func PrettyDiagnostic(w io.Writer, d *diag.Diagnostic, file *source.File, opts PrettyOpts) {
	pos := file.Pos(d.Primary.Start)

	location := fmt.Sprintf("%s:%d:%d:", file.Path, pos.Line, pos.Col)
	severity := fmt.Sprintf("%s %s:", d.Severity, d.Code.ID())
	if opts.Color {
		location = locationColor.Sprint(location)
		severity = errorColor.Sprint(severity)
	}
	fmt.Fprintf(w, "%s %s %s\n", location, severity, d.Message)

	line := file.LineText(pos.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// The caret column accounts for tabs in the source line.
	var pad strings.Builder
	for i := uint32(0); i+1 < pos.Col && int(i) < len(line); i++ {
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	caret := "^"
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "  %s%s\n", pad.String(), caret)
}

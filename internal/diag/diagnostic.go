package diag

import (
	"errors"
	"fmt"

	"yangfmt/internal/source"
)

// Diagnostic captures a single finding with its source location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}

// New creates an error-severity diagnostic.
func New(code Code, primary source.Span, msg string) *Diagnostic {
	return &Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	}
}

// Newf creates an error-severity diagnostic with a formatted message.
func Newf(code Code, primary source.Span, format string, args ...any) *Diagnostic {
	return New(code, primary, fmt.Sprintf(format, args...))
}

// Error implements the error interface. The position is reported as a raw
// byte offset; human-readable line/column rendering lives in diagfmt.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", d.Code.ID(), d.Primary.Start, d.Message)
}

// FromError extracts a *Diagnostic from an error chain, if any.
func FromError(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"itemize-generator/internal/diagnostic"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// useColor reports whether w is a terminal that should receive colored output.
func useColor(w io.Writer, disabled bool) bool {
	if disabled {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printDiagnostics writes one line per diagnostic, errors first.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics, color bool) {
	for _, d := range diags.All() {
		label := d.Severity.String()

		if color {
			label = severityColor(d.Severity) + label + ansiReset
		}

		fmt.Fprintf(w, "%s: %s\n", label, d)
	}
}

func severityColor(s diagnostic.DiagnosticSeverity) string {
	switch s {
	case diagnostic.DiagnosticError:
		return ansiRed
	case diagnostic.DiagnosticWarning:
		return ansiYellow
	default:
		return ansiBlue
	}
}

// rejectedError summarizes rejected declarations as the command's error.
func rejectedError(o *outcome) error {
	if n := o.Rejected(); n > 0 {
		return fmt.Errorf("%d of %d declarations rejected", n, o.Declarations)
	}

	if o.Diagnostics.HasErrors() {
		return fmt.Errorf("declaration file has %d errors", len(o.Diagnostics.Errors))
	}

	return nil
}

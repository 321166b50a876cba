package errors

import (
	"fmt"
	"io"
)

// LexError represents a single problem found while scanning.
// It includes the position of the error.
type LexError struct {
	Message string
	Line    int
	Column  int
}

func (e LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// LexErrors is a slice of LexError that implements the error interface.
// A scan collects every lexical error instead of stopping at the first.
type LexErrors []LexError

func (p LexErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	msg := fmt.Sprintf("loxt: lexical error at line %d, column %d: %s", p[0].Line, p[0].Column, p[0].Message)
	if len(p) > 1 {
		msg += fmt.Sprintf(" (and %d more errors)", len(p)-1)
	}
	return msg
}

// Reporter is notified of every lexical error as it is detected.
type Reporter interface {
	Report(line, column int, message string)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(line, column int, message string)

func (f ReporterFunc) Report(line, column int, message string) { f(line, column, message) }

// Discard is a Reporter that ignores every report.
var Discard Reporter = ReporterFunc(func(int, int, string) {})

// WriterReporter writes human readable diagnostics to W, one per line.
type WriterReporter struct {
	W io.Writer
}

func (r WriterReporter) Report(line, column int, message string) {
	fmt.Fprintf(r.W, "%d:%d: Error: %s\n", line, column, message)
}

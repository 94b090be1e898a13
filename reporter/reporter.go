/*
File    : lox/reporter/reporter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package reporter is the shared diagnostic sink threaded through the
// scanner, parser, resolver and interpreter. It plays the role the
// teacher's Parser.Errors/addError/HasErrors trio plays for a single
// pass, generalized to every pass of the pipeline, and borrows red and
// cyan from the teacher's color palette for terminal output.
package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter accumulates static diagnostics (scan, parse, resolve) and
// tracks whether a runtime error has aborted the current execution. It
// is reset between REPL lines and created fresh for each file run.
type Reporter struct {
	Out     io.Writer // destination for diagnostics
	err     *color.Color
	info    *color.Color

	hadError        bool
	hadRuntimeError bool
}

// New creates a Reporter writing colored diagnostics to out. Colors are
// only emitted when the process's standard output is a terminal
// (fatih/color checks os.Stdout, not out); file-mode callers
// should use NewPlain so piped/scripted stderr stays machine-parseable.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out, err: color.New(color.FgRed), info: color.New(color.FgCyan)}
}

// NewPlain creates a Reporter that never emits ANSI color codes,
// matching the teacher's runFile path which writes plain diagnostics.
func NewPlain(out io.Writer) *Reporter {
	err := color.New(color.FgRed)
	err.DisableColor()
	info := color.New(color.FgCyan)
	info.DisableColor()
	return &Reporter{Out: out, err: err, info: info}
}

// HadError reports whether any scan/parse/resolve error has been
// recorded since the last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error aborted the most
// recent interpretation.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears both error flags, as the REPL does between lines.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
}

// Error reports a diagnostic attributed to a source line, with no
// token context (used by the scanner).
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAt reports a diagnostic attributed to a specific token: "at end"
// for an EOF token, "at '<lexeme>'" otherwise. Used by the parser and
// resolver.
func (r *Reporter) ErrorAt(line int, lexeme string, atEOF bool, message string) {
	if atEOF {
		r.report(line, " at end", message)
	} else {
		r.report(line, fmt.Sprintf(" at '%s'", lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	r.hadError = true
	line_msg := fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
	if r.Out != nil {
		r.err.Fprintln(r.Out, line_msg)
	}
}

// RuntimeError reports a runtime error on two lines: the message, then
// the attributed source line.
func (r *Reporter) RuntimeError(line int, message string) {
	r.hadRuntimeError = true
	if r.Out != nil {
		r.err.Fprintln(r.Out, message)
		r.err.Fprintf(r.Out, "[line %d]\n", line)
	}
}

// Info prints a non-error message (REPL banner, usage text) in the
// teacher's informational color.
func (r *Reporter) Info(format string, args ...interface{}) {
	if r.Out != nil {
		r.info.Fprintf(r.Out, format, args...)
	}
}

/*
File    : lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the Read-Eval-Print Loop for the Lox
// interpreter: an interactive session that scans, parses, resolves and
// evaluates one line at a time, sharing a single Interpreter (and so a
// single global environment) across lines.
//
// Grounded on the teacher's repl.Repl (repl/repl.go), which owns the
// same banner/prompt/line fields and drives chzyer/readline the same
// way; this port threads its input through scanner->parser->resolver
// ->interp instead of go-mix's single parser.Parse+eval.Eval call, and
// replaces per-line error recovery with a reporter.Reporter whose
// error flags are reset every line rather than read from an evaluator.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/resolver"
	"github.com/akashmaji946/lox/scanner"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
)

// Repl is an interactive Lox session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given display fields.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	rep := reporter.New(writer)
	rep.Info("Version: %s | Author: %s | License: %s\n", r.Version, r.Author, r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	rep.Info("%s\n", "Welcome to Lox!")
	rep.Info("%s\n", "Type a statement and press enter")
	rep.Info("%s\n", "Type '.exit' to quit")
	rep.Info("%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading lines from stdin (via readline)
// and writing all diagnostics and print output to writer, until the
// user types ".exit" or sends EOF.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: writer})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	rep := reporter.New(writer)
	in := interp.New(rep, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.run(rep, in, line)
	}
}

// run scans, parses, resolves and interprets one line, resetting the
// reporter's error flags first so one bad line never poisons the next:
// errors are reported but never exit the session.
func (r *Repl) run(rep *reporter.Reporter, in *interp.Interpreter, source string) {
	rep.Reset()

	sc := scanner.New(source, rep)
	tokens := sc.ScanTokens()
	if rep.HadError() {
		return
	}

	p := parser.New(tokens, rep)
	statements := p.Parse()
	if rep.HadError() {
		return
	}

	res := resolver.New(in, rep)
	res.Resolve(statements)
	if rep.HadError() {
		return
	}

	in.Interpret(statements)
}

/*
File    : lox/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command lox is the entry point for the Lox interpreter: invoked with
// no arguments it starts an interactive REPL, invoked with one argument
// it runs that file as a script.
//
// Grounded on the teacher's main/main.go, which dispatches on os.Args
// the same way (no-arg -> REPL, one positional arg -> runFile); this
// port swaps the teacher's raw os.Args switch for spf13/cobra (borrowed
// from the opal-lang-opal example's cli/main.go, which uses cobra for
// exactly this positional-arg-or-none CLI shape) and drops the
// teacher's --help/--version/server-mode extensions, which this
// interpreter has no use for.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/reporter"
	"github.com/akashmaji946/lox/repl"
	"github.com/akashmaji946/lox/resolver"
	"github.com/akashmaji946/lox/scanner"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "lox >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
    ▄█           ▄██████▄  ▀████    ▐████▀
   ███          ███    ███   ███▌   ████▀
   ███          ███    ███    ███  ▐███
   ███          ███    ███    ▐███▄███▀
   ███          ███    ███    ███▀▀▀██▄
   ███          ███    ███   ███    ▀███
   ███▌    ▄    ███    ███  ███      ▀███
   █████▄▄██     ▀██████▀ ▄████▄      ███▄
`
)

// Exit codes: 64 for CLI usage errors, 65 for a static (scan/parse/
// resolve) error, 70 for an unrecovered runtime error, 74 for a file
// I/O failure — the same four-way split as the book's Lox.java, which
// the teacher's own runFile/executeFileWithRecovery pair only
// distinguishes as a single os.Exit(1).
const (
	exitUsage   = 64
	exitDataErr = 65
	exitSoftErr = 70
	exitIOErr   = 74
)

func main() {
	root := &cobra.Command{
		Use:                   "lox [script]",
		Short:                 "Lox is a tree-walking interpreter for the Lox language",
		Args:                  cobra.ArbitraryArgs,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				runPrompt()
				return nil
			case 1:
				return runFile(args[0])
			default:
				return usageError{}
			}
		},
	}
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		if _, ok := err.(usageError); ok {
			fmt.Fprintln(os.Stderr, "Usage: lox [script]")
			os.Exit(exitUsage)
		}
		os.Exit(exitSoftErr)
	}
}

type usageError struct{}

func (usageError) Error() string { return "usage" }

// runFile reads and runs a Lox script, exiting with the code matching
// the first phase that failed. Diagnostics go to stderr and "print"
// output goes to stdout, so a script's output stays clean when errors
// are redirected or discarded.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		red := color.New(color.FgRed)
		red.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(exitIOErr)
	}

	rep := reporter.NewPlain(os.Stderr)
	in := interp.New(rep, os.Stdout)

	sc := scanner.New(string(source), rep)
	tokens := sc.ScanTokens()

	p := parser.New(tokens, rep)
	statements := p.Parse()

	if rep.HadError() {
		os.Exit(exitDataErr)
	}

	res := resolver.New(in, rep)
	res.Resolve(statements)
	if rep.HadError() {
		os.Exit(exitDataErr)
	}

	in.Interpret(statements)
	if rep.HadRuntimeError() {
		os.Exit(exitSoftErr)
	}
	return nil
}

// runPrompt starts the interactive REPL.
func runPrompt() {
	r := repl.New(banner, version, author, line, license, prompt)
	r.Start(os.Stdout)
}

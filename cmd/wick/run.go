package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wick-lang/wick/internal/compiler/lexer"
	"github.com/wick-lang/wick/internal/compiler/parser"
	"github.com/wick-lang/wick/internal/diagnostics"
	"github.com/wick-lang/wick/internal/runtime/interpreter"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Wick script",
	Long:  "Lex, parse, and interpret a single Wick source file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0], os.Stdout, os.Stderr)
	},
}

// runFile lexes, parses, and (if no diagnostics were reported) interprets
// one source file, matching spec's recovery policy exactly: lex/parse
// errors are collected and printed, but only skip the interpret phase --
// they never abort the earlier phases themselves.
func runFile(path string, stdout, stderr *os.File) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	reporter := diagnostics.New()
	errColor := color.New(color.FgRed)

	tokens, lexErrors := lexer.New(string(source)).ScanTokens()
	diagnostics.CollectLexErrors(reporter, lexErrors)

	program, parseErrors := parser.New(tokens).Parse()
	diagnostics.CollectParseErrors(reporter, parseErrors)

	for _, d := range reporter.Diagnostics() {
		errColor.Fprintln(stderr, d.String())
	}
	if reporter.HadError() {
		return fmt.Errorf("%d diagnostic(s) reported, interpretation skipped", len(reporter.Diagnostics()))
	}

	it := interpreter.New(stdout, os.Stdin)
	if err := it.Run(program); err != nil {
		errColor.Fprintln(stderr, err.Error())
		return err
	}
	return nil
}

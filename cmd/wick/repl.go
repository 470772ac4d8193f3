package main

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wick-lang/wick/internal/cli/config"
	"github.com/wick-lang/wick/internal/compiler/lexer"
	"github.com/wick-lang/wick/internal/compiler/parser"
	"github.com/wick-lang/wick/internal/diagnostics"
	"github.com/wick-lang/wick/internal/runtime/interpreter"
)

var (
	blueColor = color.New(color.FgBlue)
	redColor  = color.New(color.FgRed)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Wick session",
	Long:  "Read-eval-print loop: one persistent interpreter across every line typed at the prompt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.REPL.NoColor {
			color.NoColor = true
		}
		startRepl(cfg, os.Stdout)
		return nil
	},
}

// startRepl persists one Interpreter (and therefore one global Environment)
// across every line, so a variable or subroutine defined on one line is
// visible on the next -- the same persistence the language's own closures
// rely on, just driven one statement group at a time instead of all at once.
func startRepl(cfg *config.Config, writer io.Writer) {
	blueColor.Fprintln(writer, "Wick interactive session -- type '.exit' to quit")

	rl, err := readline.New(cfg.REPL.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interpreter.New(writer, os.Stdin)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return
		}
		rl.SaveHistory(line)
		evalLine(it, line, writer)
	}
}

// evalLine recovers from any interpreter panic so one bad line never kills
// the session -- the REPL-specific counterpart to the file runner's
// "abort the program" policy, mirrored from the reference REPL idiom of
// catching per-line failures and returning to the prompt.
func evalLine(it *interpreter.Interpreter, line string, writer io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(writer, "[runtime panic] %v\n", r)
		}
	}()

	reporter := diagnostics.New()
	tokens, lexErrors := lexer.New(line).ScanTokens()
	diagnostics.CollectLexErrors(reporter, lexErrors)

	program, parseErrors := parser.New(tokens).Parse()
	diagnostics.CollectParseErrors(reporter, parseErrors)

	for _, d := range reporter.Diagnostics() {
		redColor.Fprintln(writer, d.String())
	}
	if reporter.HadError() {
		return
	}

	if err := it.Run(program); err != nil {
		redColor.Fprintln(writer, err.Error())
	}
}

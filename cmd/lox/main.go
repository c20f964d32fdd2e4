// Command lox runs Lox source files and provides an interactive REPL,
// recovering to a friendly error message on panic, dispatching between a
// file argument, a piped stdin script, and an interactive terminal
// session, and handling REPL detection, the REPL banner timestamp, and the
// LOX_TIMING run summary via mattn/go-isatty, ncruces/go-strftime, and
// dustin/go-humanize.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"

	"github.com/loxwalk/loxwalk/internal/diagnostics"
	"github.com/loxwalk/loxwalk/internal/evaluator"
	"github.com/loxwalk/loxwalk/internal/history"
	"github.com/loxwalk/loxwalk/internal/parser"
	"github.com/loxwalk/loxwalk/internal/replconfig"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	args := os.Args
	if len(args) >= 2 {
		runFile(args[1])
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		runREPL()
		return
	}

	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %s\n", err)
		os.Exit(1)
	}
	if len(source) == 0 {
		return
	}
	if !runSource(string(source), os.Stdout) {
		os.Exit(1)
	}
}

// runFile loads path, runs it, and reports elapsed wall-clock time the
// way a batch tool's summary line does.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}
	start := time.Now()
	ok := runSource(string(source), os.Stdout)
	if os.Getenv("LOX_TIMING") == "1" {
		fmt.Fprintf(os.Stderr, "%s: ran in %s\n", filepath.Base(path), humanize.Time(start))
	}
	if !ok {
		os.Exit(1)
	}
}

// runSource parses and interprets source, printing any parse or runtime
// errors to stderr. It returns false if the program did not run to
// completion: execution never begins after a ParseError, and a
// RuntimeError halts immediately.
func runSource(source string, out io.Writer) bool {
	statements, parseErrors := parser.Parse(source)
	if len(parseErrors) > 0 {
		for _, pe := range parseErrors {
			fmt.Fprintln(os.Stderr, pe.Error())
		}
		return false
	}

	eval := evaluator.New()
	eval.Out = out
	if err := eval.Interpret(statements); err != nil {
		if _, ok := err.(*diagnostics.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return false
	}
	return true
}

// runREPL drives an interactive session, persisting input history to a
// local SQLite file and replaying a summary of it on startup.
func runREPL() {
	cfg := replconfig.LoadOrDefault(".loxrc.yaml")

	store, err := history.Open(cfg.HistoryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %s\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	fmt.Printf("lox repl — started %s\n", strftime.Format("%Y-%m-%d %H:%M:%S", time.Now()))
	if store != nil {
		if recent, err := store.Recent(cfg.HistoryLimit); err == nil && len(recent) > 0 {
			fmt.Printf("(%d lines of history loaded from %s)\n", len(recent), cfg.HistoryFile)
		}
	}

	eval := evaluator.New()
	switch cfg.LogLevel {
	case "debug":
		eval.Logger.SetLevel(evaluator.LevelDebug)
	case "warn":
		eval.Logger.SetLevel(evaluator.LevelWarn)
	case "error":
		eval.Logger.SetLevel(evaluator.LevelError)
	}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cfg.Prompt)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if store != nil {
			if err := store.Append(line); err != nil {
				eval.Logger.Warn("failed to persist history: %s", err)
			}
		}

		statements, parseErrors := parser.Parse(line)
		if len(parseErrors) > 0 {
			for _, pe := range parseErrors {
				fmt.Fprintln(os.Stderr, pe.Error())
			}
			continue
		}
		if err := eval.Interpret(statements); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}

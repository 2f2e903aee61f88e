// Package repl implements the interactive Read-Eval-Print Loop spec.md §6
// names as the CLI's external-collaborator interface: an interactive
// session over tokenize → parse → eval, with readline-backed line editing
// and colorized output, grounded in go-mix/repl/repl.go.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/go-scm/environment"
	"github.com/akashmaji946/go-scm/eval"
	"github.com/akashmaji946/go-scm/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration for one interactive session —
// the same banner/version/author/line/license/prompt shape
// go-mix/repl/repl.go uses, so the session "feels" like one program.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to go-scm!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: print the banner, then read, parse, and
// evaluate one line at a time against a single shared global environment
// until '.exit' or EOF (spec.md §6 — REPL mode has no persisted state
// across invocations, but one session's environment persists across its
// own lines).
func (r *Repl) Start(writer io.Writer, env *environment.Env) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, env)
	}
}

// evalLine parses and evaluates one line, printing its value or error.
// Unlike file mode, a failing line never aborts the session — the REPL
// returns to its prompt so the user can correct their input.
func (r *Repl) evalLine(writer io.Writer, line string, env *environment.Env) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	exprs, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	for _, expr := range exprs {
		result, err := eval.Eval(expr, env)
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return
		}
		if result.String() != "" {
			yellowColor.Fprintf(writer, "%s\n", result.String())
		}
	}
}

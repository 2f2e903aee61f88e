// Command goscm is the entry point for the go-scm interpreter, grounded in
// go-mix/main/main.go: bare invocation starts an interactive REPL, a single
// file argument is tokenized/parsed/evaluated, and --help/--version print
// and exit. Unlike go-mix/main/main.go, there is no `server <port>` mode —
// spec.md §6 names only REPL and single-file execution as the CLI's
// external interface, and explicitly rules out any network collaborator.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/go-scm/eval"
	"github.com/akashmaji946/go-scm/parser"
	"github.com/akashmaji946/go-scm/prelude"
	"github.com/akashmaji946/go-scm/repl"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "go-scm >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
   ___  ___           ___  ___ ____  __
  / _ \/ _ \  ___ ____/ __\/ __|  \/  |
 / ___/ // / |___/___/\__ \ (__ | |\/| |
/_/  /____/           |___/\___||_|  |_|
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}
		runFile(os.Args[1])
		return
	}

	env, err := prelude.NewGlobalEnv(os.Stdout)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PRELUDE ERROR] %v\n", err)
	}
	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdout, env)
}

func showHelp() {
	cyanColor.Println("go-scm - a CORE Scheme interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  goscm                     Start interactive REPL mode")
	yellowColor.Println("  goscm <path-to-file>      Execute a Scheme source file")
	yellowColor.Println("  goscm --help              Display this help message")
	yellowColor.Println("  goscm --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Println("go-scm - a CORE Scheme interpreter")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}

// runFile reads path, loads the prelude into a fresh global environment,
// then tokenizes/parses/evaluates its top-level forms in order. Per
// spec.md §6, an error evaluating one form is printed to stderr and
// execution continues with the next; only a file-read or parse failure
// exits non-zero. A prelude error (spec.md §4.7) is reported but never
// aborts startup — env is still usable for the rest of the file.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	env, err := prelude.NewGlobalEnv(os.Stdout)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PRELUDE ERROR] %v\n", err)
	}

	exprs, err := parser.Parse(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		os.Exit(1)
	}

	for _, expr := range exprs {
		result, err := eval.Eval(expr, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if result.String() != "" {
			yellowColor.Fprintf(os.Stdout, "%s\n", result.String())
		}
	}
}

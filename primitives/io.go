package primitives

import (
	"fmt"
	"io"

	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/schemeerr"
)

// ioBuiltins implements display and error, grounded in go-mix/std/common.go's
// writer-based print idiom: display writes through whatever io.Writer
// Install was given rather than hardcoding os.Stdout, so the REPL and tests
// can both capture output.
func ioBuiltins(w io.Writer) []*Builtin {
	return []*Builtin{
		{Name: "display", Fn: display(w)},
		{Name: "error", Fn: raiseError},
	}
}

func display(w io.Writer) Fn {
	return func(args []ast.Expr) (ast.Expr, error) {
		if err := requireArity("display", args, 1); err != nil {
			return nil, err
		}
		if atom, ok := args[0].(*ast.Atom); ok && atom.Kind == ast.StringAtom {
			fmt.Fprint(w, atom.Str)
		} else {
			fmt.Fprint(w, args[0].String())
		}
		return args[0], nil
	}
}

func raiseError(args []ast.Expr) (ast.Expr, error) {
	if err := requireMinArity("error", args, 1); err != nil {
		return nil, err
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	msg := parts[0]
	for _, p := range parts[1:] {
		msg += " " + p
	}
	return nil, &schemeerr.RuntimeException{Message: msg}
}

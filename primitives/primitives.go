// Package primitives implements the native procedures spec.md §4.6
// requires, in the teacher's Builtin{Name, Callback} idiom
// (go-mix/std/builtins.go): each is a plain Go function operating on
// already-evaluated ast.Expr arguments, collected into a registry and
// installed into a fresh environment frame by Install.
//
// apply is deliberately NOT defined here: its semantics ("call this
// procedure with this list's elements as arguments") need the evaluator's
// Apply function, and primitives must not import eval (eval installs
// primitives, so the reverse import would cycle). eval registers apply
// itself, after calling Install, for exactly this reason.
package primitives

import (
	"fmt"
	"io"

	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/environment"
	"github.com/akashmaji946/go-scm/schemeerr"
)

// Fn is the signature every primitive implements: it receives its
// arguments already evaluated and returns a value or an error.
type Fn func(args []ast.Expr) (ast.Expr, error)

// Builtin pairs a primitive's name with its implementation, the same
// shape go-mix/std/builtins.go uses for its registry.
type Builtin struct {
	Name string
	Fn   Fn
}

// Install defines every primitive in env, the global frame the prelude is
// then evaluated into. w is where display writes (the teacher's
// CallbackFunc(rt Runtime, writer io.Writer, ...) convention, simplified
// since this language has no other Runtime state to thread through).
func Install(env *environment.Env, w io.Writer) {
	for _, b := range arithmeticBuiltins() {
		env.DefineLocal(b.Name, &ast.Primitive{Name: b.Name, Fn: b.Fn})
	}
	for _, b := range comparisonBuiltins() {
		env.DefineLocal(b.Name, &ast.Primitive{Name: b.Name, Fn: b.Fn})
	}
	for _, b := range pairBuiltins() {
		env.DefineLocal(b.Name, &ast.Primitive{Name: b.Name, Fn: b.Fn})
	}
	for _, b := range predicateBuiltins() {
		env.DefineLocal(b.Name, &ast.Primitive{Name: b.Name, Fn: b.Fn})
	}
	for _, b := range ioBuiltins(w) {
		env.DefineLocal(b.Name, &ast.Primitive{Name: b.Name, Fn: b.Fn})
	}
}

func numberArg(e ast.Expr) (float64, error) {
	atom, ok := e.(*ast.Atom)
	if !ok || atom.Kind != ast.NumberAtom {
		return 0, &schemeerr.TypeError{Expected: "number", Got: e.String()}
	}
	return atom.Number, nil
}

func typeErrorf(expected string, got ast.Expr) error {
	return &schemeerr.TypeError{Expected: expected, Got: got.String()}
}

func requireArity(name string, args []ast.Expr, n int) error {
	if len(args) != n {
		return &schemeerr.InvalidArgs{Message: fmt.Sprintf("'%s' expects %d argument(s), got %d", name, n, len(args))}
	}
	return nil
}

func requireMinArity(name string, args []ast.Expr, n int) error {
	if len(args) < n {
		return &schemeerr.InvalidArgs{Message: fmt.Sprintf("'%s' expects at least %d argument(s), got %d", name, n, len(args))}
	}
	return nil
}

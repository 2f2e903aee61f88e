package eval

import (
	"io"

	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/environment"
	"github.com/akashmaji946/go-scm/primitives"
	"github.com/akashmaji946/go-scm/schemeerr"
)

// NewGlobalEnv builds the root frame a program runs in: every primitive
// primitives.Install provides, plus apply, which is wired here rather than
// inside primitives because apply's semantics route back through Apply
// above, and primitives must not import eval (eval already imports
// primitives to call Install, so the reverse would cycle).
func NewGlobalEnv(w io.Writer) *environment.Env {
	env := environment.NewEnv(nil)
	primitives.Install(env, w)
	env.DefineLocal("apply", &ast.Primitive{Name: "apply", Fn: applyPrimitive})
	return env
}

// applyPrimitive implements (apply proc list): per spec.md §4.5, list must
// be a proper list (or the empty list); it is flattened into the argument
// vector proc is then called with.
func applyPrimitive(args []ast.Expr) (ast.Expr, error) {
	if len(args) != 2 {
		return nil, &schemeerr.InvalidArgs{Message: "'apply' expects a procedure and a list of arguments"}
	}
	callArgs, ok := ast.ExprToList(args[1])
	if !ok {
		return nil, &schemeerr.InvalidArgs{Message: "'apply' expects a proper list as its second argument"}
	}
	return Apply(args[0], callArgs)
}

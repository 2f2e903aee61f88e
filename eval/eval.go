// Package eval implements the tree-walking evaluator spec.md §4.4
// describes: Eval dispatches on an ast.Expr's concrete type, and Apply
// invokes a procedure (primitive or compound) against already-evaluated
// arguments. Unlike the teacher's stateful *Evaluator struct, there is no
// evaluator object here — every call takes its *environment.Env
// explicitly, because this language has no global variables (spec.md §3).
package eval

import (
	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/environment"
	"github.com/akashmaji946/go-scm/schemeerr"
)

// Eval reduces expr to a value in env, applicative-order, left to right,
// with no tail-call optimization — recursive Scheme procedures consume
// host stack frames one for one (spec.md §5).
func Eval(expr ast.Expr, env *environment.Env) (ast.Expr, error) {
	switch e := expr.(type) {
	case *ast.Atom:
		return evalAtom(e, env)
	case *ast.Quoted:
		return e.Datum, nil
	case *ast.EmptyListExpr:
		return e, nil
	case *ast.Pair:
		return e, nil
	case *ast.VoidExpr:
		return e, nil
	case *ast.Primitive:
		return e, nil
	case *ast.Compound:
		return e, nil
	case *ast.If:
		return evalIf(e, env)
	case *ast.Lambda:
		return &ast.Compound{Params: e.Params, Body: e.Body, Env: env}, nil
	case *ast.Define:
		return evalDefine(e, env)
	case *ast.Assignment:
		return evalAssignment(e, env)
	case *ast.And:
		return evalAnd(e, env)
	case *ast.Or:
		return evalOr(e, env)
	case *ast.Begin:
		return evalSequence(e.Exprs, env)
	case *ast.Call:
		return evalCall(e, env)
	default:
		return nil, &schemeerr.TypeError{Expected: "evaluable expression", Got: expr.String()}
	}
}

func evalAtom(a *ast.Atom, env *environment.Env) (ast.Expr, error) {
	if a.Kind == ast.SymbolAtom {
		return env.LookUp(a.Symbol)
	}
	return a, nil
}

func evalIf(f *ast.If, env *environment.Env) (ast.Expr, error) {
	test, err := Eval(f.Test, env)
	if err != nil {
		return nil, err
	}
	if ast.IsTruthy(test) {
		return Eval(f.Conseq, env)
	}
	if f.Alt == nil {
		return ast.Void, nil
	}
	return Eval(f.Alt, env)
}

func evalDefine(d *ast.Define, env *environment.Env) (ast.Expr, error) {
	val, err := Eval(d.Value, env)
	if err != nil {
		return nil, err
	}
	if compound, ok := val.(*ast.Compound); ok && compound.Name == "" {
		compound.Name = d.Name
	}
	env.DefineLocal(d.Name, val)
	return ast.Void, nil
}

func evalAssignment(a *ast.Assignment, env *environment.Env) (ast.Expr, error) {
	val, err := Eval(a.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(a.Name, val); err != nil {
		return nil, err
	}
	return ast.Void, nil
}

func evalAnd(a *ast.And, env *environment.Env) (ast.Expr, error) {
	for _, operand := range a.Operands {
		val, err := Eval(operand, env)
		if err != nil {
			return nil, err
		}
		if !ast.IsTruthy(val) {
			return ast.False, nil
		}
	}
	return ast.True, nil
}

func evalOr(o *ast.Or, env *environment.Env) (ast.Expr, error) {
	for _, operand := range o.Operands {
		val, err := Eval(operand, env)
		if err != nil {
			return nil, err
		}
		if ast.IsTruthy(val) {
			return ast.True, nil
		}
	}
	return ast.False, nil
}

// evalSequence evaluates each expr in order for effect, returning the
// last's value. An empty sequence evaluates to Void.
func evalSequence(exprs []ast.Expr, env *environment.Env) (ast.Expr, error) {
	var result ast.Expr = ast.Void
	for _, e := range exprs {
		val, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func evalCall(c *ast.Call, env *environment.Env) (ast.Expr, error) {
	if len(c.Items) == 0 {
		return nil, &schemeerr.InvalidArgs{Message: "cannot apply an empty form"}
	}
	proc, err := Eval(c.Items[0], env)
	if err != nil {
		return nil, err
	}
	args := make([]ast.Expr, len(c.Items)-1)
	for i, item := range c.Items[1:] {
		val, err := Eval(item, env)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}
	return Apply(proc, args)
}

// Apply invokes proc against already-evaluated args. It is also what the
// apply primitive calls into directly, so (apply f (list 1 2)) and (f 1 2)
// share this one code path.
func Apply(proc ast.Expr, args []ast.Expr) (ast.Expr, error) {
	switch p := proc.(type) {
	case *ast.Primitive:
		return p.Fn(args)
	case *ast.Compound:
		return applyCompound(p, args)
	default:
		return nil, &schemeerr.TypeError{Expected: "procedure", Got: proc.String()}
	}
}

func applyCompound(c *ast.Compound, args []ast.Expr) (ast.Expr, error) {
	if len(args) != len(c.Params) {
		return nil, &schemeerr.InvalidArgs{Message: "procedure expects a different number of arguments"}
	}
	parentEnv, ok := c.Env.(*environment.Env)
	if !ok {
		return nil, &schemeerr.RuntimeException{Message: "closure captured an invalid environment"}
	}
	frame := environment.Extend(parentEnv, c.Params, args)
	return evalSequence(c.Body, frame)
}

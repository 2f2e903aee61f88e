package primitives

import "github.com/akashmaji946/go-scm/ast"

// pairBuiltins implements cons, car, cdr, set-car!, set-cdr!, list, pair?
// and null?, grounded in original_source/src/primitives/pair.rs. That
// original mutates cons cells through an unsafe raw-pointer cast; Go's
// *ast.Pair is already a heap pointer shared by every alias, so set-car!
// and set-cdr! need nothing more exotic than assigning through it.
func pairBuiltins() []*Builtin {
	return []*Builtin{
		{Name: "cons", Fn: cons},
		{Name: "car", Fn: car},
		{Name: "cdr", Fn: cdr},
		{Name: "set-car!", Fn: setCar},
		{Name: "set-cdr!", Fn: setCdr},
		{Name: "list", Fn: list},
		{Name: "pair?", Fn: isPair},
		{Name: "null?", Fn: isNull},
	}
}

func cons(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("cons", args, 2); err != nil {
		return nil, err
	}
	return &ast.Pair{Car: args[0], Cdr: args[1]}, nil
}

func pairArg(name string, e ast.Expr) (*ast.Pair, error) {
	p, ok := e.(*ast.Pair)
	if !ok {
		return nil, typeErrorf("pair", e)
	}
	return p, nil
}

func car(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("car", args, 1); err != nil {
		return nil, err
	}
	p, err := pairArg("car", args[0])
	if err != nil {
		return nil, err
	}
	return p.Car, nil
}

func cdr(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("cdr", args, 1); err != nil {
		return nil, err
	}
	p, err := pairArg("cdr", args[0])
	if err != nil {
		return nil, err
	}
	return p.Cdr, nil
}

func setCar(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("set-car!", args, 2); err != nil {
		return nil, err
	}
	p, err := pairArg("set-car!", args[0])
	if err != nil {
		return nil, err
	}
	p.Car = args[1]
	return ast.Void, nil
}

func setCdr(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("set-cdr!", args, 2); err != nil {
		return nil, err
	}
	p, err := pairArg("set-cdr!", args[0])
	if err != nil {
		return nil, err
	}
	p.Cdr = args[1]
	return ast.Void, nil
}

func list(args []ast.Expr) (ast.Expr, error) {
	return ast.ListToExpr(args), nil
}

func isPair(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("pair?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*ast.Pair)
	return ast.Bool(ok), nil
}

func isNull(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("null?", args, 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(*ast.EmptyListExpr)
	return ast.Bool(ok), nil
}

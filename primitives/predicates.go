package primitives

import "github.com/akashmaji946/go-scm/ast"

// predicateBuiltins implements the type predicates, eq?/eqv?/equal?, and
// not, grounded in original_source/src/primitives/compare.rs. This
// language has no exact/inexact number distinction, so eq? and eqv? are
// implemented identically; equal? additionally recurses into pairs.
func predicateBuiltins() []*Builtin {
	return []*Builtin{
		{Name: "symbol?", Fn: isKind(ast.SymbolAtom)},
		{Name: "number?", Fn: isKind(ast.NumberAtom)},
		{Name: "string?", Fn: isKind(ast.StringAtom)},
		{Name: "boolean?", Fn: isKind(ast.BoolAtom)},
		{Name: "procedure?", Fn: isProcedure},
		{Name: "eq?", Fn: eqPredicate},
		{Name: "eqv?", Fn: eqPredicate},
		{Name: "equal?", Fn: equalPredicate},
		{Name: "not", Fn: not},
	}
}

func isKind(kind ast.AtomKind) Fn {
	return func(args []ast.Expr) (ast.Expr, error) {
		if err := requireArity("predicate", args, 1); err != nil {
			return nil, err
		}
		atom, ok := args[0].(*ast.Atom)
		return ast.Bool(ok && atom.Kind == kind), nil
	}
}

func isProcedure(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("procedure?", args, 1); err != nil {
		return nil, err
	}
	switch args[0].(type) {
	case *ast.Primitive, *ast.Compound:
		return ast.True, nil
	default:
		return ast.False, nil
	}
}

func not(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("not", args, 1); err != nil {
		return nil, err
	}
	return ast.Bool(!ast.IsTruthy(args[0])), nil
}

func eqPredicate(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("eq?", args, 2); err != nil {
		return nil, err
	}
	return ast.Bool(atomicEqual(args[0], args[1])), nil
}

func equalPredicate(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("equal?", args, 2); err != nil {
		return nil, err
	}
	return ast.Bool(deepEqual(args[0], args[1])), nil
}

// atomicEqual compares atoms by value and every other kind of Expr by
// pointer identity, the usual Scheme eq?/eqv? distinction between simple
// data and structured objects.
func atomicEqual(a, b ast.Expr) bool {
	aa, aok := a.(*ast.Atom)
	ba, bok := b.(*ast.Atom)
	if aok && bok {
		if aa.Kind != ba.Kind {
			return false
		}
		switch aa.Kind {
		case ast.NumberAtom:
			return aa.Number == ba.Number
		case ast.StringAtom:
			return aa.Str == ba.Str
		case ast.BoolAtom:
			return aa.Bool == ba.Bool
		case ast.SymbolAtom:
			return aa.Symbol == ba.Symbol
		}
	}
	if _, aEmpty := a.(*ast.EmptyListExpr); aEmpty {
		_, bEmpty := b.(*ast.EmptyListExpr)
		return bEmpty
	}
	return a == b
}

func deepEqual(a, b ast.Expr) bool {
	pa, aok := a.(*ast.Pair)
	pb, bok := b.(*ast.Pair)
	if aok && bok {
		return deepEqual(pa.Car, pb.Car) && deepEqual(pa.Cdr, pb.Cdr)
	}
	return atomicEqual(a, b)
}

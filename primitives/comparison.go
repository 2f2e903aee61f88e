package primitives

import "github.com/akashmaji946/go-scm/ast"

// comparisonBuiltins implements =, <, <=, >, >=. Per spec.md §4.6/§9, all
// five compare the first argument against the SUM of the remaining
// arguments rather than pairwise — the same cmp_first_to_rest quirk
// original_source/src/primitives/numeric.rs applies to the ordering
// operators, extended here to = as well.
func comparisonBuiltins() []*Builtin {
	return []*Builtin{
		{Name: "=", Fn: cmpFirstToRest(func(first, rest float64) bool { return first == rest })},
		{Name: "<", Fn: cmpFirstToRest(func(first, rest float64) bool { return first < rest })},
		{Name: "<=", Fn: cmpFirstToRest(func(first, rest float64) bool { return first <= rest })},
		{Name: ">", Fn: cmpFirstToRest(func(first, rest float64) bool { return first > rest })},
		{Name: ">=", Fn: cmpFirstToRest(func(first, rest float64) bool { return first >= rest })},
	}
}

func cmpFirstToRest(cmp func(first, rest float64) bool) Fn {
	return func(args []ast.Expr) (ast.Expr, error) {
		if err := requireMinArity("comparison", args, 2); err != nil {
			return nil, err
		}
		first, err := numberArg(args[0])
		if err != nil {
			return nil, err
		}
		sumRest := 0.0
		for _, a := range args[1:] {
			n, err := numberArg(a)
			if err != nil {
				return nil, err
			}
			sumRest += n
		}
		return ast.Bool(cmp(first, sumRest)), nil
	}
}

package primitives

import (
	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/schemeerr"
)

// arithmeticBuiltins implements +, -, *, / grounded in
// original_source/src/primitives/numeric.rs: + and * fold over all
// arguments from an identity element; - and / require at least one
// argument and treat a single argument as negation/reciprocal.
func arithmeticBuiltins() []*Builtin {
	return []*Builtin{
		{Name: "+", Fn: add},
		{Name: "-", Fn: subtract},
		{Name: "*", Fn: multiply},
		{Name: "/", Fn: divide},
		{Name: "remainder", Fn: remainder},
		{Name: "modulo", Fn: modulo},
	}
}

func add(args []ast.Expr) (ast.Expr, error) {
	sum := 0.0
	for _, a := range args {
		n, err := numberArg(a)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return ast.NewNumber(sum), nil
}

func multiply(args []ast.Expr) (ast.Expr, error) {
	product := 1.0
	for _, a := range args {
		n, err := numberArg(a)
		if err != nil {
			return nil, err
		}
		product *= n
	}
	return ast.NewNumber(product), nil
}

func subtract(args []ast.Expr) (ast.Expr, error) {
	if err := requireMinArity("-", args, 1); err != nil {
		return nil, err
	}
	first, err := numberArg(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return ast.NewNumber(-first), nil
	}
	for _, a := range args[1:] {
		n, err := numberArg(a)
		if err != nil {
			return nil, err
		}
		first -= n
	}
	return ast.NewNumber(first), nil
}

func divide(args []ast.Expr) (ast.Expr, error) {
	if err := requireMinArity("/", args, 1); err != nil {
		return nil, err
	}
	first, err := numberArg(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if first == 0 {
			return nil, &schemeerr.RuntimeException{Message: "division by zero"}
		}
		return ast.NewNumber(1 / first), nil
	}
	for _, a := range args[1:] {
		n, err := numberArg(a)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, &schemeerr.RuntimeException{Message: "division by zero"}
		}
		first /= n
	}
	return ast.NewNumber(first), nil
}

func remainder(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("remainder", args, 2); err != nil {
		return nil, err
	}
	a, err := numberArg(args[0])
	if err != nil {
		return nil, err
	}
	b, err := numberArg(args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, &schemeerr.RuntimeException{Message: "division by zero"}
	}
	return ast.NewNumber(goRemainder(a, b)), nil
}

func modulo(args []ast.Expr) (ast.Expr, error) {
	if err := requireArity("modulo", args, 2); err != nil {
		return nil, err
	}
	a, err := numberArg(args[0])
	if err != nil {
		return nil, err
	}
	b, err := numberArg(args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, &schemeerr.RuntimeException{Message: "division by zero"}
	}
	r := goRemainder(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return ast.NewNumber(r), nil
}

// goRemainder implements truncated-division remainder (the sign of a),
// matching remainder's Scheme semantics; modulo then adjusts the sign to
// match b.
func goRemainder(a, b float64) float64 {
	q := float64(int64(a / b))
	return a - q*b
}

package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/parser"
	"github.com/akashmaji946/go-scm/schemeerr"
)

// run parses src as a sequence of top-level forms and evaluates each in
// order against a fresh global environment, returning the last result.
func run(t *testing.T, src string) (ast.Expr, error) {
	t.Helper()
	exprs, err := parser.Parse(src)
	require.NoError(t, err, "parse: %s", src)

	env := NewGlobalEnv(&bytes.Buffer{})
	var result ast.Expr = ast.Void
	for _, e := range exprs {
		result, err = Eval(e, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func TestEval_ArithmeticNesting(t *testing.T) {
	got, err := run(t, `(+ 1 (* 2 3) (- 10 4))`)
	require.NoError(t, err)
	assert.Equal(t, float64(13), got.(*ast.Atom).Number)
}

func TestEval_FactorialRecursive(t *testing.T) {
	got, err := run(t, `
		(define (factorial n)
		  (if (= n 0) 1 (* n (factorial (- n 1)))))
		(factorial 6)
	`)
	require.NoError(t, err)
	assert.Equal(t, float64(720), got.(*ast.Atom).Number)
}

func TestEval_CoinChange(t *testing.T) {
	got, err := run(t, `
		(define (first-denomination coins) (car coins))
		(define (except-first-denomination coins) (cdr coins))
		(define (no-more? coins) (null? coins))

		(define (cc amount coin-values)
		  (cond ((= amount 0) 1)
		        ((or (< amount 0) (no-more? coin-values)) 0)
		        (else (+ (cc amount (except-first-denomination coin-values))
		                 (cc (- amount (first-denomination coin-values)) coin-values)))))

		(cc 45 (list 25 10 5 1))
	`)
	require.NoError(t, err)
	assert.Equal(t, float64(39), got.(*ast.Atom).Number)
}

func TestEval_CurriedClosure(t *testing.T) {
	got, err := run(t, `(((lambda (x) (lambda (y) (+ x y))) 3) 4)`)
	require.NoError(t, err)
	assert.Equal(t, float64(7), got.(*ast.Atom).Number)
}

func TestEval_CondElseListConstruction(t *testing.T) {
	got, err := run(t, `
		(define (classify n)
		  (cond ((< n 0) 'negative)
		        ((= n 0) 'zero)
		        (else 'positive)))
		(list (classify -1) (classify 0) (classify 5))
	`)
	require.NoError(t, err)
	items, ok := ast.ExprToList(got)
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, "negative", items[0].(*ast.Atom).Symbol)
	assert.Equal(t, "zero", items[1].(*ast.Atom).Symbol)
	assert.Equal(t, "positive", items[2].(*ast.Atom).Symbol)
}

func TestEval_MutablePairSharing(t *testing.T) {
	got, err := run(t, `
		(define a (cons 1 2))
		(define b a)
		(set-cdr! a 99)
		(cdr b)
	`)
	require.NoError(t, err)
	assert.Equal(t, float64(99), got.(*ast.Atom).Number)
}

func TestEval_CycleCreationDoesNotCrash(t *testing.T) {
	got, err := run(t, `
		(define a (cons 1 2))
		(set-cdr! a a)
		(pair? (cdr a))
	`)
	require.NoError(t, err)
	assert.True(t, ast.IsTruthy(got))
}

func TestEval_TypeErrorSurfaces(t *testing.T) {
	_, err := run(t, `(+ 1 "not a number")`)
	require.Error(t, err)
	var typeErr *schemeerr.TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestEval_UnboundVarSurfaces(t *testing.T) {
	_, err := run(t, `(+ 1 never-defined)`)
	require.Error(t, err)
	var unbound *schemeerr.UnboundVar
	assert.ErrorAs(t, err, &unbound)
}

func TestEval_ApplyPrimitive(t *testing.T) {
	got, err := run(t, `(apply + (list 1 2 3))`)
	require.NoError(t, err)
	assert.Equal(t, float64(6), got.(*ast.Atom).Number)

	got, err = run(t, `(apply + (list))`)
	require.NoError(t, err)
	assert.Equal(t, float64(0), got.(*ast.Atom).Number)
}

func TestEval_ApplyRejectsImproperList(t *testing.T) {
	_, err := run(t, `(apply + (cons 1 2))`)
	require.Error(t, err)
	var invalid *schemeerr.InvalidArgs
	assert.ErrorAs(t, err, &invalid)
}

func TestEval_AndOrShortCircuitWithGeneralTruthiness(t *testing.T) {
	// 0 and "" are truthy under spec.md's rule, so (and 0 "" 5) runs through
	// every operand and returns #t.
	got, err := run(t, `(and 0 "" 5)`)
	require.NoError(t, err)
	assert.Equal(t, ast.True, got)

	got, err = run(t, `(or #f #f 7)`)
	require.NoError(t, err)
	assert.Equal(t, ast.True, got)

	got, err = run(t, `(or #f #f)`)
	require.NoError(t, err)
	assert.Equal(t, ast.False, got)
}

func TestEval_DefineReturnsVoid(t *testing.T) {
	env := NewGlobalEnv(&bytes.Buffer{})
	exprs, err := parser.Parse(`(define x 5)`)
	require.NoError(t, err)
	got, err := Eval(exprs[0], env)
	require.NoError(t, err)
	assert.Equal(t, ast.Void, got)
}

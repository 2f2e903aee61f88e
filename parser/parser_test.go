package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/schemeerr"
)

func TestParse_AtomsAndCalls(t *testing.T) {
	exprs, err := Parse(`1 (+ 1 (+ 1 2))`)
	require.NoError(t, err)
	require.Len(t, exprs, 2)

	num, ok := exprs[0].(*ast.Atom)
	require.True(t, ok)
	assert.Equal(t, ast.NumberAtom, num.Kind)
	assert.Equal(t, float64(1), num.Number)

	call, ok := exprs[1].(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Items, 3)
	assert.Equal(t, "+", call.Items[0].(*ast.Atom).Symbol)

	inner, ok := call.Items[2].(*ast.Call)
	require.True(t, ok)
	assert.Len(t, inner.Items, 3)
}

func TestParse_QuotedList(t *testing.T) {
	exprs, err := Parse(`'(+ 1)`)
	require.NoError(t, err)
	require.Len(t, exprs, 1)

	quoted, ok := exprs[0].(*ast.Quoted)
	require.True(t, ok)

	pair, ok := quoted.Datum.(*ast.Pair)
	require.True(t, ok)
	assert.Equal(t, "+", pair.Car.(*ast.Atom).Symbol)

	rest, ok := pair.Cdr.(*ast.Pair)
	require.True(t, ok)
	assert.Equal(t, float64(1), rest.Car.(*ast.Atom).Number)
	assert.Equal(t, ast.EmptyList, rest.Cdr)
}

func TestParse_QuoteFormMatchesTickShorthand(t *testing.T) {
	tickExprs, err := Parse(`'(+ 1)`)
	require.NoError(t, err)
	formExprs, err := Parse(`(quote (+ 1))`)
	require.NoError(t, err)

	assert.Equal(t, tickExprs[0].String(), formExprs[0].String())
}

func TestParse_If(t *testing.T) {
	exprs, err := Parse(`(if (< 1 2) 1 2)`)
	require.NoError(t, err)
	require.Len(t, exprs, 1)

	ifExpr, ok := exprs[0].(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, ifExpr.Test)
	assert.NotNil(t, ifExpr.Conseq)
	assert.NotNil(t, ifExpr.Alt)
}

func TestParse_IfWithoutAlt(t *testing.T) {
	exprs, err := Parse(`(if #t 1)`)
	require.NoError(t, err)
	ifExpr := exprs[0].(*ast.If)
	assert.Nil(t, ifExpr.Alt)
}

func TestParse_LambdaAndFunctionDefine(t *testing.T) {
	exprs, err := Parse(`(define (add x y) (+ x y))`)
	require.NoError(t, err)

	def, ok := exprs[0].(*ast.Define)
	require.True(t, ok)
	assert.Equal(t, "add", def.Name)

	lambda, ok := def.Value.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, lambda.Params)
	assert.Len(t, lambda.Body, 1)
}

func TestParse_VariableDefine(t *testing.T) {
	exprs, err := Parse(`(define x 10)`)
	require.NoError(t, err)

	def := exprs[0].(*ast.Define)
	assert.Equal(t, "x", def.Name)
	assert.Equal(t, float64(10), def.Value.(*ast.Atom).Number)
}

func TestParse_CondDesugarsToNestedIf(t *testing.T) {
	exprs, err := Parse(`(cond ((< 1 2) 'less) ((> 1 2) 'greater) (else 'equal))`)
	require.NoError(t, err)

	outer, ok := exprs[0].(*ast.If)
	require.True(t, ok)

	middle, ok := outer.Alt.(*ast.If)
	require.True(t, ok)

	// the else clause becomes the innermost alternative directly, with no
	// further If wrapping it
	_, isBegin := middle.Alt.(*ast.Begin)
	assert.True(t, isBegin)
}

func TestParse_CondElseMustBeLast(t *testing.T) {
	_, err := Parse(`(cond (else 1) ((< 1 2) 2))`)
	require.Error(t, err)
}

func TestParse_LetDesugarsToImmediateApplication(t *testing.T) {
	exprs, err := Parse(`(let ((x 1) (y 2)) (+ x y))`)
	require.NoError(t, err)

	call, ok := exprs[0].(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Items, 3)

	lambda, ok := call.Items[0].(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, lambda.Params)

	assert.Equal(t, float64(1), call.Items[1].(*ast.Atom).Number)
	assert.Equal(t, float64(2), call.Items[2].(*ast.Atom).Number)
}

func TestParse_AndOr(t *testing.T) {
	exprs, err := Parse(`(and 1 2) (or #f 3)`)
	require.NoError(t, err)

	and, ok := exprs[0].(*ast.And)
	require.True(t, ok)
	assert.Len(t, and.Operands, 2)

	or, ok := exprs[1].(*ast.Or)
	require.True(t, ok)
	assert.Len(t, or.Operands, 2)
}

func TestParse_ExtraClosingParenIsError(t *testing.T) {
	_, err := Parse(`(+ 1 2) (1))`)
	require.Error(t, err)
	var unexpected *schemeerr.UnexpectedToken
	assert.ErrorAs(t, err, &unexpected)
}

func TestParse_OpeningRParenIsError(t *testing.T) {
	_, err := Parse(`)(yo)`)
	require.Error(t, err)
}

func TestParse_UnclosedListIsError(t *testing.T) {
	_, err := Parse(`(+ 1 (1)`)
	require.Error(t, err)
	var unexpectedEnd *schemeerr.UnexpectedEnd
	assert.ErrorAs(t, err, &unexpectedEnd)
}

func TestParse_BareElseIsError(t *testing.T) {
	_, err := Parse(`else`)
	require.Error(t, err)
}

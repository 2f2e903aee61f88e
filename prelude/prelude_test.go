package prelude

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/eval"
	"github.com/akashmaji946/go-scm/parser"
)

func runWithPrelude(t *testing.T, src string) ast.Expr {
	t.Helper()
	env, err := NewGlobalEnv(&bytes.Buffer{})
	require.NoError(t, err)

	exprs, err := parser.Parse(src)
	require.NoError(t, err, "parse: %s", src)

	var result ast.Expr = ast.Void
	for _, e := range exprs {
		result, err = eval.Eval(e, env)
		require.NoError(t, err, "eval: %s", src)
	}
	return result
}

func TestPrelude_LoadsWithoutError(t *testing.T) {
	_, err := NewGlobalEnv(&bytes.Buffer{})
	require.NoError(t, err)
}

func TestPrelude_MapFilterFold(t *testing.T) {
	got := runWithPrelude(t, `(map (lambda (x) (* x x)) (list 1 2 3 4))`)
	items, ok := ast.ExprToList(got)
	require.True(t, ok)
	want := []float64{1, 4, 9, 16}
	for i, item := range items {
		assert.Equal(t, want[i], item.(*ast.Atom).Number)
	}

	got = runWithPrelude(t, `(filter even? (list 1 2 3 4 5 6))`)
	items, ok = ast.ExprToList(got)
	require.True(t, ok)
	assert.Len(t, items, 3)

	got = runWithPrelude(t, `(fold + 0 (list 1 2 3 4 5))`)
	assert.Equal(t, float64(15), got.(*ast.Atom).Number)
}

func TestPrelude_ReverseLengthAppend(t *testing.T) {
	got := runWithPrelude(t, `(reverse (list 1 2 3))`)
	items, ok := ast.ExprToList(got)
	require.True(t, ok)
	assert.Equal(t, []float64{3, 2, 1}, []float64{items[0].(*ast.Atom).Number, items[1].(*ast.Atom).Number, items[2].(*ast.Atom).Number})

	got = runWithPrelude(t, `(length (list 1 2 3 4))`)
	assert.Equal(t, float64(4), got.(*ast.Atom).Number)

	got = runWithPrelude(t, `(append (list 1 2) (list 3 4))`)
	items, ok = ast.ExprToList(got)
	require.True(t, ok)
	assert.Len(t, items, 4)
}

func TestPrelude_NumberPredicatesAndGcdLcm(t *testing.T) {
	assert.Equal(t, ast.True, runWithPrelude(t, `(zero? 0)`))
	assert.Equal(t, ast.True, runWithPrelude(t, `(positive? 3)`))
	assert.Equal(t, ast.True, runWithPrelude(t, `(negative? -3)`))
	assert.Equal(t, ast.True, runWithPrelude(t, `(odd? 3)`))
	assert.Equal(t, ast.True, runWithPrelude(t, `(even? 4)`))
	assert.Equal(t, float64(4), runWithPrelude(t, `(gcd 12 8)`).(*ast.Atom).Number)
	assert.Equal(t, float64(24), runWithPrelude(t, `(lcm 12 8)`).(*ast.Atom).Number)
}

func TestPrelude_MemberAndAssoc(t *testing.T) {
	got := runWithPrelude(t, `(member 3 (list 1 2 3 4))`)
	items, ok := ast.ExprToList(got)
	require.True(t, ok)
	assert.Equal(t, []float64{3, 4}, []float64{items[0].(*ast.Atom).Number, items[1].(*ast.Atom).Number})

	got = runWithPrelude(t, `(member 9 (list 1 2 3))`)
	assert.Equal(t, ast.False, got)

	got = runWithPrelude(t, `(assoc 'b (list (list 'a 1) (list 'b 2)))`)
	items, ok = ast.ExprToList(got)
	require.True(t, ok)
	assert.Equal(t, "b", items[0].(*ast.Atom).Symbol)
	assert.Equal(t, float64(2), items[1].(*ast.Atom).Number)
}

func TestPrelude_CxrFamily(t *testing.T) {
	got := runWithPrelude(t, `(cadr (list 1 2 3))`)
	assert.Equal(t, float64(2), got.(*ast.Atom).Number)

	got = runWithPrelude(t, `(caddr (list 1 2 3))`)
	assert.Equal(t, float64(3), got.(*ast.Atom).Number)

	got = runWithPrelude(t, `(cddr (list 1 2 3 4))`)
	items, ok := ast.ExprToList(got)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestPrelude_CurryAndCompose(t *testing.T) {
	got := runWithPrelude(t, `((curry + 3) 4)`)
	assert.Equal(t, float64(7), got.(*ast.Atom).Number)

	got = runWithPrelude(t, `(define add1 (curry + 1)) ((compose add1 add1) 5)`)
	assert.Equal(t, float64(7), got.(*ast.Atom).Number)
}

func TestPrelude_ListHeadAndTail(t *testing.T) {
	got := runWithPrelude(t, `(list-tail (list 1 2 3 4) 2)`)
	items, ok := ast.ExprToList(got)
	require.True(t, ok)
	assert.Len(t, items, 2)

	got = runWithPrelude(t, `(list-head (list 1 2 3 4) 2)`)
	items, ok = ast.ExprToList(got)
	require.True(t, ok)
	assert.Equal(t, float64(1), items[0].(*ast.Atom).Number)
	assert.Equal(t, float64(2), items[1].(*ast.Atom).Number)
}

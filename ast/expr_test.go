package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want bool
	}{
		{"false-atom", False, false},
		{"true-atom", True, true},
		{"zero-number", NewNumber(0), true},
		{"empty-string", NewString(""), true},
		{"empty-list", EmptyList, true},
		{"symbol", NewSymbol("x"), true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsTruthy(tc.expr), tc.name)
	}
}

func TestListConversion(t *testing.T) {
	items := []Expr{NewNumber(1), NewNumber(2), NewNumber(3)}
	list := ListToExpr(items)

	got, ok := ExprToList(list)
	assert.True(t, ok)
	assert.Equal(t, items, got)
}

func TestExprToList_DottedPairIsNotAList(t *testing.T) {
	dotted := &Pair{Car: NewNumber(1), Cdr: NewNumber(2)}
	_, ok := ExprToList(dotted)
	assert.False(t, ok)
}

func TestPairString_ProperList(t *testing.T) {
	list := ListToExpr([]Expr{NewNumber(1), NewNumber(2)})
	assert.Equal(t, "(1 2)", list.String())
}

func TestPairString_DottedPair(t *testing.T) {
	dotted := &Pair{Car: NewNumber(1), Cdr: NewNumber(2)}
	assert.Equal(t, "(1 . 2)", dotted.String())
}

func TestPairString_Cycle(t *testing.T) {
	p := &Pair{Car: NewNumber(1), Cdr: EmptyList}
	p.Cdr = p // a pair pointing back to itself

	assert.NotPanics(t, func() {
		_ = p.String()
	})
}

func TestBoolSingletons(t *testing.T) {
	assert.Same(t, True, Bool(true))
	assert.Same(t, False, Bool(false))
}

// Package ast defines the runtime value and syntax-tree representation
// shared by the parser and evaluator: a single closed tagged union, Expr,
// that doubles as both "parsed program" and "runtime value" the way a
// tree-walking Lisp evaluator's data model naturally does.
//
// Procedures are folded into this package rather than split into a
// separate one, because in this language a procedure is itself an Expr
// value that can be passed, returned, and stored in pairs like any other.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ExprType identifies which concrete shape an Expr holds.
type ExprType string

const (
	AtomType        ExprType = "atom"
	CallType        ExprType = "call"
	PairType        ExprType = "pair"
	EmptyListType   ExprType = "empty-list"
	ProcType        ExprType = "proc"
	SpecialFormType ExprType = "special-form"
	QuotedType      ExprType = "quoted"
	VoidType        ExprType = "void"
)

// Expr is the single value/AST type the lexer-fed parser produces and the
// evaluator consumes. Every concrete node below implements it.
type Expr interface {
	Type() ExprType
	String() string
}

// AtomKind distinguishes the four leaf literal/identifier shapes an Atom
// can hold.
type AtomKind string

const (
	NumberAtom  AtomKind = "number"
	StringAtom  AtomKind = "string"
	BoolAtom    AtomKind = "bool"
	SymbolAtom  AtomKind = "symbol"
)

// Atom is a single self-evaluating literal or an identifier reference.
// Symbols evaluate by environment lookup; the other three kinds evaluate
// to themselves (spec.md §4.4).
type Atom struct {
	Kind   AtomKind
	Number float64
	Str    string
	Bool   bool
	Symbol string
}

func (a *Atom) Type() ExprType { return AtomType }

func (a *Atom) String() string {
	switch a.Kind {
	case NumberAtom:
		return strconv.FormatFloat(a.Number, 'g', -1, 64)
	case StringAtom:
		return fmt.Sprintf("%q", a.Str)
	case BoolAtom:
		if a.Bool {
			return "#t"
		}
		return "#f"
	case SymbolAtom:
		return a.Symbol
	default:
		return "#<malformed-atom>"
	}
}

// NewNumber, NewString, NewBool, and NewSymbol are the constructors the
// parser and primitives use to build leaf Atoms.
func NewNumber(v float64) *Atom  { return &Atom{Kind: NumberAtom, Number: v} }
func NewString(v string) *Atom   { return &Atom{Kind: StringAtom, Str: v} }
func NewBool(v bool) *Atom       { return &Atom{Kind: BoolAtom, Bool: v} }
func NewSymbol(v string) *Atom   { return &Atom{Kind: SymbolAtom, Symbol: v} }

// True and False are the two canonical boolean Atom singletons most
// primitives and special forms return, so callers don't need to allocate a
// fresh Atom for every comparison result.
var (
	True  = &Atom{Kind: BoolAtom, Bool: true}
	False = &Atom{Kind: BoolAtom, Bool: false}
)

// Bool returns the Atom for b, reusing the True/False singletons.
func Bool(b bool) *Atom {
	if b {
		return True
	}
	return False
}

// IsTruthy implements spec.md §4.5's truthiness rule: every value except
// the boolean #f counts as true, including 0, "", and the empty list.
func IsTruthy(e Expr) bool {
	if a, ok := e.(*Atom); ok && a.Kind == BoolAtom {
		return a.Bool
	}
	return true
}

// Call is an unevaluated procedure application: a parenthesized form whose
// head was not a recognized keyword, so the parser leaves it as a plain
// slice of operand expressions rather than building cons cells for it
// (spec.md §3 — kept distinct from Pair, which represents actual runtime
// list/pair data built by quote or cons). Evaluating a Call means
// evaluating Items[0] to a procedure and applying it to the evaluated
// rest.
type Call struct {
	Items []Expr
}

func (c *Call) Type() ExprType { return CallType }

func (c *Call) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, it := range c.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.String())
	}
	b.WriteByte(')')
	return b.String()
}

// EmptyListExpr is the singleton representing '(). It is its own sentinel
// type, distinct from Pair, since the empty list is not itself a cons cell.
type EmptyListExpr struct{}

func (e *EmptyListExpr) Type() ExprType { return EmptyListType }
func (e *EmptyListExpr) String() string { return "()" }

// EmptyList is the single shared instance of EmptyListExpr. Comparisons
// with null? use this identity, and Go's GC takes care of the rest.
var EmptyList = &EmptyListExpr{}

// VoidExpr represents "no useful value" — the result of define, set!, and
// other forms executed purely for effect.
type VoidExpr struct{}

func (e *VoidExpr) Type() ExprType { return VoidType }
func (e *VoidExpr) String() string { return "" }

// Void is the single shared instance of VoidExpr.
var Void = &VoidExpr{}

// Pair is a mutable cons cell: two Expr slots allocated on the heap and
// referenced by pointer, so two Pairs can share a cdr, and set-car!/set-cdr!
// are visible through every alias — including a Pair that points back to
// itself, which plain Go pointers tolerate without extra bookkeeping
// (spec.md §3, "mutable pairs with cycles").
type Pair struct {
	Car Expr
	Cdr Expr
}

func (p *Pair) Type() ExprType { return PairType }

// String renders a Pair as a parenthesized list when the cdr chain ends in
// EmptyList, or in dotted-pair notation otherwise. It defends against
// cycles with a simple visited-pointer guard so a self-referential list
// prints rather than looping forever.
func (p *Pair) String() string {
	var b strings.Builder
	b.WriteByte('(')
	seen := map[*Pair]bool{}
	cur := Expr(p)
	first := true
	for {
		pair, ok := cur.(*Pair)
		if !ok {
			break
		}
		if seen[pair] {
			b.WriteString(" ...")
			cur = Expr(EmptyList)
			break
		}
		seen[pair] = true
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(pair.Car.String())
		cur = pair.Cdr
	}
	switch c := cur.(type) {
	case *EmptyListExpr:
		// proper list, nothing more to print
	default:
		b.WriteString(" . ")
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Quoted wraps a datum produced by a quote form or a 'shorthand so the
// evaluator returns it unevaluated (spec.md §4.5).
type Quoted struct {
	Datum Expr
}

func (q *Quoted) Type() ExprType { return QuotedType }
func (q *Quoted) String() string { return q.Datum.String() }

// ListToExpr builds a proper list Expr out of a Go slice, right-to-left,
// terminating in EmptyList — the usual way parser and primitive code turn
// a materialized []Expr back into Scheme list structure.
func ListToExpr(items []Expr) Expr {
	var result Expr = EmptyList
	for i := len(items) - 1; i >= 0; i-- {
		result = &Pair{Car: items[i], Cdr: result}
	}
	return result
}

// ExprToList flattens a proper list Expr into a Go slice. A parsed Call
// form yields its items, which is how the parser reads the contents of a
// keyword-headed form. ok is false if e is not a proper, finite list (e.g.
// a dotted pair or a cycle).
func ExprToList(e Expr) (items []Expr, ok bool) {
	seen := map[*Pair]bool{}
	for {
		switch v := e.(type) {
		case *EmptyListExpr:
			return items, true
		case *Call:
			if len(seen) == 0 {
				return v.Items, true
			}
			return nil, false
		case *Pair:
			if seen[v] {
				return nil, false
			}
			seen[v] = true
			items = append(items, v.Car)
			e = v.Cdr
		default:
			return nil, false
		}
	}
}

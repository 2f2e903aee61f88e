package ast

import "strings"

// The special-form node types below are produced directly by the parser
// for every keyword-headed form except cond and let, which the parser
// desugars into If/Lambda application before a tree ever reaches eval
// (spec.md §4.2, §4.5). Cond and Let are still declared here — as data
// types a parser *could* produce — to keep the tagged union's shape
// complete and documented, even though eval never receives one.

// If holds a conditional's three parts. Alt is nil for a two-armed
// (if test conseq) with no else branch, in which case evaluating a false
// test yields Void.
type If struct {
	Test   Expr
	Conseq Expr
	Alt    Expr
}

func (f *If) Type() ExprType { return SpecialFormType }
func (f *If) String() string { return "(if ...)" }

// Lambda is an unevaluated function literal: parameter names plus a body
// sequence, captured into a Compound procedure at eval time together with
// the environment active then.
type Lambda struct {
	Params []string
	Body   []Expr
}

func (l *Lambda) Type() ExprType { return SpecialFormType }
func (l *Lambda) String() string {
	return "(lambda (" + strings.Join(l.Params, " ") + ") ...)"
}

// Define binds Name to the evaluated Value in the current frame. The
// parser desugars the function-definition shorthand
// (define (f x) body...) into Define{Name: "f", Value: &Lambda{...}}
// before this node is built, so eval only ever handles the one shape.
type Define struct {
	Name  string
	Value Expr
}

func (d *Define) Type() ExprType { return SpecialFormType }
func (d *Define) String() string { return "(define " + d.Name + " ...)" }

// Assignment is set!: like Define, but requires the name already be bound
// somewhere in the environment chain (spec.md §4.5).
type Assignment struct {
	Name  string
	Value Expr
}

func (a *Assignment) Type() ExprType { return SpecialFormType }
func (a *Assignment) String() string { return "(set! " + a.Name + " ...)" }

// And evaluates its operands left to right, short-circuiting to #f on the
// first falsy result, else yielding #t (spec.md §4.5, §9 — booleans, not
// the last value, matching the original this spec was distilled from).
type And struct {
	Operands []Expr
}

func (a *And) Type() ExprType { return SpecialFormType }
func (a *And) String() string { return "(and ...)" }

// Or evaluates its operands left to right, short-circuiting to #t on the
// first truthy result, else yielding #f.
type Or struct {
	Operands []Expr
}

func (o *Or) Type() ExprType { return SpecialFormType }
func (o *Or) String() string { return "(or ...)" }

// Begin sequences a list of expressions, evaluating each for effect and
// returning the last one's value.
type Begin struct {
	Exprs []Expr
}

func (b *Begin) Type() ExprType { return SpecialFormType }
func (b *Begin) String() string { return "(begin ...)" }

// CondClause is one (test expr...) or (else expr...) clause of a cond
// form.
type CondClause struct {
	Test  Expr // nil for an else clause
	Exprs []Expr
}

// Cond is declared for data-model completeness: the parser always rewrites
// a cond form into nested Ifs (with a trailing Begin per clause) during
// parsing, so this type is never handed to eval directly.
type Cond struct {
	Clauses []CondClause
}

func (c *Cond) Type() ExprType { return SpecialFormType }
func (c *Cond) String() string { return "(cond ...)" }

// LetBinding is one (name expr) pair inside a let form.
type LetBinding struct {
	Name  string
	Value Expr
}

// Let is declared for data-model completeness: the parser always rewrites
// a let form into an immediately-applied Lambda during parsing, so this
// type is never handed to eval directly.
type Let struct {
	Bindings []LetBinding
	Body     []Expr
}

func (l *Let) Type() ExprType { return SpecialFormType }
func (l *Let) String() string { return "(let ...)" }

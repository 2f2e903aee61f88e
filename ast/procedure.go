package ast

import "fmt"

// Primitive is a native (Go-implemented) procedure. Its Fn is called with
// already-evaluated arguments, matching the "Builtin{Name, Callback}"
// registration idiom primitives/ uses to populate the global environment.
type Primitive struct {
	Name string
	Fn   func(args []Expr) (Expr, error)
}

func (p *Primitive) Type() ExprType { return ProcType }
func (p *Primitive) String() string { return fmt.Sprintf("#<primitive:%s>", p.Name) }

// Compound is a user-defined closure: a lambda's parameter list, body, and
// the environment it was created in. Env is an opaque interface{} here
// (not *environment.Env) purely to avoid an import cycle between ast and
// environment — eval type-asserts it back on use.
type Compound struct {
	Name   string
	Params []string
	Body   []Expr
	Env    interface{}
}

func (c *Compound) Type() ExprType { return ProcType }

func (c *Compound) String() string {
	name := c.Name
	if name == "" {
		name = "lambda"
	}
	return fmt.Sprintf("#<closure:%s>", name)
}

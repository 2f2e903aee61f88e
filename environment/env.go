// Package environment implements the lexically-scoped variable frames
// spec.md §4.3 describes: a chain of frames, each a name-to-value map plus
// a pointer to its enclosing frame, with lookup and set! walking outward
// until a binding or the chain's end is found.
package environment

import (
	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/schemeerr"
)

// Env is one lexical frame. There are no global variables in the core
// (spec.md §3): every evaluation carries its Env explicitly, and the
// "global" environment is simply the one frame with a nil Parent.
type Env struct {
	Bindings map[string]ast.Expr
	Parent   *Env
}

// NewEnv allocates an empty frame chained to parent. parent is nil only
// for the single root/global frame.
func NewEnv(parent *Env) *Env {
	return &Env{
		Bindings: make(map[string]ast.Expr),
		Parent:   parent,
	}
}

// LookUp resolves name by walking outward from this frame to the root,
// returning the first binding found. A miss at every frame is UnboundVar.
func (e *Env) LookUp(name string) (ast.Expr, error) {
	for frame := e; frame != nil; frame = frame.Parent {
		if v, ok := frame.Bindings[name]; ok {
			return v, nil
		}
	}
	return nil, &schemeerr.UnboundVar{Name: name}
}

// DefineLocal creates or overwrites a binding in this frame only, the
// effect of a top-level or body-level define (spec.md §4.5). It never
// touches an enclosing frame, even if name is already bound there —
// redefinition in an inner scope shadows, it does not mutate the outer
// binding.
func (e *Env) DefineLocal(name string, val ast.Expr) {
	e.Bindings[name] = val
}

// Assign implements set!: it walks outward to find the frame that already
// binds name and mutates it in place. An unbound name anywhere in the
// chain is UnboundVar — set! never creates a new binding (spec.md §4.5).
func (e *Env) Assign(name string, val ast.Expr) error {
	for frame := e; frame != nil; frame = frame.Parent {
		if _, ok := frame.Bindings[name]; ok {
			frame.Bindings[name] = val
			return nil
		}
	}
	return &schemeerr.UnboundVar{Name: name}
}

// Extend allocates a new frame, child of e, binding params to args
// positionally. It is how a procedure application opens the frame a
// Compound body runs in (spec.md §4.4). Arity mismatch is the caller's
// responsibility to have already checked; Extend itself trusts
// len(params) == len(args).
func Extend(parent *Env, params []string, args []ast.Expr) *Env {
	frame := NewEnv(parent)
	for i, p := range params {
		frame.Bindings[p] = args[i]
	}
	return frame
}

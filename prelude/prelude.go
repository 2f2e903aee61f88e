// Package prelude bootstraps the global environment with the library
// procedures spec.md §4.7 says are written in the language itself rather
// than implemented as Go primitives, grounded in
// original_source/src/primitives/prelude.rs (itself credited there to
// Write Yourself a Scheme in 48 Hours' standard library). list-ref is
// defined here as the car of list-tail, and memq/memv/member return the
// tail of the list starting at the first match.
package prelude

import (
	"fmt"
	"io"

	"github.com/akashmaji946/go-scm/environment"
	"github.com/akashmaji946/go-scm/eval"
	"github.com/akashmaji946/go-scm/parser"
)

// source is the prelude's own program text, evaluated once into the global
// frame before a user's program or REPL session sees it.
const source = `
(define (id x) x)
(define (flip func) (lambda (a b) (func b a)))
(define (curry func arg1) (lambda (arg) (apply func (list arg1 arg))))
(define (compose f g) (lambda (arg) (f (apply g (list arg)))))

(define (foldr func end lst)
  (if (null? lst)
      end
      (func (car lst) (foldr func end (cdr lst)))))

(define (foldl func accum lst)
  (if (null? lst)
      accum
      (foldl func (func accum (car lst)) (cdr lst))))

(define (unfold func init pred)
  (if (pred init)
      (cons init '())
      (cons init (unfold func (func init) pred))))

(define fold foldl)
(define reduce foldr)

(define (zero? num) (= num 0))
(define (positive? num) (> num 0))
(define (negative? num) (< num 0))
(define (odd? num)  (= (remainder num 2) 1))
(define (even? num) (= (remainder num 2) 0))
(define (abs num) (if (negative? num) (- num) num))
(define (gcd a b) (if (= b 0) (abs a) (gcd b (modulo a b))))
(define (lcm a b) (/ (abs (* a b)) (gcd a b)))

(define (map func lst) (foldr (lambda (x y) (cons (func x) y)) '() lst))
(define (filter pred lst) (foldr (lambda (x y) (if (pred x) (cons x y) y)) '() lst))
(define (for-each func lst) (map func lst) 'ok)
(define (reverse lst) (fold (flip cons) '() lst))
(define (length lst) (fold (lambda (x y) (+ x 1)) 0 lst))
(define (append a b) (foldr cons b a))
(define (list-tail lst n) (if (<= n 0) lst (list-tail (cdr lst) (- n 1))))
(define (list-head lst n) (if (<= n 0) '() (cons (car lst) (list-head (cdr lst) (- n 1)))))
(define (list-ref lst n) (car (list-tail lst n)))

(define (mem-helper pred op) (lambda (acc next) (if (and (not acc) (pred (op next))) next acc)))
(define (mem-tail pred lst)  (if (null? lst) #f (if (pred (car lst)) lst (mem-tail pred (cdr lst)))))
(define (memq obj lst)       (mem-tail (curry eq? obj) lst))
(define (memv obj lst)       (mem-tail (curry eqv? obj) lst))
(define (member obj lst)     (mem-tail (curry equal? obj) lst))
(define (assq obj alist)     (fold (mem-helper (curry eq? obj) car) #f alist))
(define (assv obj alist)     (fold (mem-helper (curry eqv? obj) car) #f alist))
(define (assoc obj alist)    (fold (mem-helper (curry equal? obj) car) #f alist))

(define (caar x) (car (car x)))
(define (cadr x) (car (cdr x)))
(define (cdar x) (cdr (car x)))
(define (cddr x) (cdr (cdr x)))
(define (caaar x) (car (car (car x))))
(define (caadr x) (car (car (cdr x))))
(define (cadar x) (car (cdr (car x))))
(define (caddr x) (car (cdr (cdr x))))
(define (cdaar x) (cdr (car (car x))))
(define (cdadr x) (cdr (car (cdr x))))
(define (cddar x) (cdr (cdr (car x))))
(define (cdddr x) (cdr (cdr (cdr x))))
(define (caaaar x) (car (car (car (car x)))))
(define (caaadr x) (car (car (car (cdr x)))))
(define (caadar x) (car (car (cdr (car x)))))
(define (caaddr x) (car (car (cdr (cdr x)))))
(define (cadaar x) (car (cdr (car (car x)))))
(define (cadadr x) (car (cdr (car (cdr x)))))
(define (caddar x) (car (cdr (cdr (car x)))))
(define (cadddr x) (car (cdr (cdr (cdr x)))))
(define (cdaaar x) (cdr (car (car (car x)))))
(define (cdaadr x) (cdr (car (car (cdr x)))))
(define (cdadar x) (cdr (car (cdr (car x)))))
(define (cdaddr x) (cdr (car (cdr (cdr x)))))
(define (cddaar x) (cdr (cdr (car (car x)))))
(define (cddadr x) (cdr (cdr (car (cdr x)))))
(define (cdddar x) (cdr (cdr (cdr (car x)))))
(define (cddddr x) (cdr (cdr (cdr (cdr x)))))
`

// Load evaluates the prelude into env. Per spec.md §4.7, a prelude error is
// reported to the error channel but does not abort startup: Load keeps
// evaluating every remaining top-level definition and reports the first
// failure it hit, rather than stopping env in a half-built state.
func Load(env *environment.Env) error {
	exprs, err := parser.Parse(source)
	if err != nil {
		return fmt.Errorf("prelude failed to parse: %w", err)
	}
	var firstErr error
	for _, e := range exprs {
		if _, err := eval.Eval(e, env); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("prelude failed to evaluate: %w", err)
		}
	}
	return firstErr
}

// NewGlobalEnv builds a fully bootstrapped global frame: every primitive
// plus every prelude-defined procedure, ready for a REPL or file to run
// user code in. Per spec.md §6, new_global_environment always returns a
// usable env, with any prelude error surfaced via the error channel rather
// than failing construction.
func NewGlobalEnv(w io.Writer) (*environment.Env, error) {
	env := eval.NewGlobalEnv(w)
	err := Load(env)
	return env, err
}

// Package parser implements the recursive-descent reader spec.md §4.2
// describes: it turns a flat Token stream into ast.Expr trees, and does the
// bulk of the grammar's "desugaring" work inline — a function-definition
// define becomes a define-of-a-lambda, a cond becomes nested ifs, and a let
// becomes an immediately-applied lambda — so eval never has to know those
// surface forms existed.
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-scm/ast"
	"github.com/akashmaji946/go-scm/lexer"
	"github.com/akashmaji946/go-scm/schemeerr"
)

// Parser walks a token slice with one-token lookahead, in the teacher's
// CurrToken/advance idiom, simplified to a single peekable cursor since
// this grammar never needs to look two tokens ahead.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New wraps a token slice for parsing.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes-then-reads src's entire source in one call, the common
// case for both the REPL and file execution.
func Parse(src string) ([]ast.Expr, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseAll()
}

// ParseAll reads every top-level form from the token stream. It stops at
// the first parse error, unlike the lexer's error accumulation, because a
// malformed form usually desynchronizes everything that follows it.
func (p *Parser) ParseAll() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for p.pos < len(p.tokens) {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if atom, ok := expr.(*ast.Atom); ok && atom.Kind == ast.SymbolAtom && atom.Symbol == "else" {
			return nil, &schemeerr.UnexpectedToken{Printable: "else"}
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// parseExpr reads one complete form starting at the cursor.
func (p *Parser) parseExpr() (ast.Expr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &schemeerr.UnexpectedEnd{}
	}

	switch tok.Type {
	case lexer.LParen:
		return p.parseAfterLParen()
	case lexer.QuoteTick:
		return p.parseQuote()
	case lexer.Number:
		return parseNumberAtom(tok.Literal)
	case lexer.String:
		return ast.NewString(tok.Literal), nil
	case lexer.Bool:
		return ast.NewBool(tok.Literal == "#t"), nil
	case lexer.Symbol, lexer.Else, lexer.SetCarKey, lexer.SetCdrKey:
		return ast.NewSymbol(tok.Literal), nil
	default:
		return nil, &schemeerr.UnexpectedToken{Printable: tok.String()}
	}
}

// parseAfterLParen dispatches on the token right after `(`: a keyword
// routes to its dedicated parse function and desugars as it goes; anything
// else is read as a plain application/list via parseInnerList.
func (p *Parser) parseAfterLParen() (ast.Expr, error) {
	head, ok := p.peek()
	if !ok {
		return nil, &schemeerr.UnexpectedEnd{}
	}

	switch head.Type {
	case lexer.If:
		p.pos++
		return p.parseIf()
	case lexer.Lambda:
		p.pos++
		return p.parseLambda()
	case lexer.Define:
		p.pos++
		return p.parseDefine()
	case lexer.Assign:
		p.pos++
		return p.parseAssignment()
	case lexer.And:
		p.pos++
		return p.parseAnd()
	case lexer.Or:
		p.pos++
		return p.parseOr()
	case lexer.Cond:
		p.pos++
		return p.parseCond()
	case lexer.Let:
		p.pos++
		return p.parseLet()
	case lexer.Begin:
		p.pos++
		return p.parseBegin()
	case lexer.Quote:
		p.pos++
		inner, err := p.parseQuoteBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectRParen(); err != nil {
			return nil, err
		}
		return &ast.Quoted{Datum: inner}, nil
	default:
		return p.parseInnerList()
	}
}

// parseInnerList reads items until a matching `)`, producing an
// ast.EmptyList for `()` or an *ast.Call for a non-empty application.
func (p *Parser) parseInnerList() (ast.Expr, error) {
	var items []ast.Expr
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, &schemeerr.UnexpectedEnd{}
		}
		if tok.Type == lexer.RParen {
			p.pos++
			if len(items) == 0 {
				return ast.EmptyList, nil
			}
			return &ast.Call{Items: items}, nil
		}
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *Parser) expectRParen() (lexer.Token, error) {
	tok, ok := p.next()
	if !ok {
		return tok, &schemeerr.UnexpectedEnd{}
	}
	if tok.Type != lexer.RParen {
		return tok, &schemeerr.UnexpectedToken{Printable: tok.String()}
	}
	return tok, nil
}

// parseIf expects (if test conseq [alt]).
func (p *Parser) parseIf() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	parts, ok := ast.ExprToList(inner)
	if !ok || len(parts) < 2 || len(parts) > 3 {
		return nil, &schemeerr.InvalidArgs{Message: "'if' expects a test, a consequence, and an optional alternative"}
	}
	node := &ast.If{Test: parts[0], Conseq: parts[1]}
	if len(parts) == 3 {
		node.Alt = parts[2]
	}
	return node, nil
}

// parseLambda expects (lambda (params...) body...).
func (p *Parser) parseLambda() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	parts, ok := ast.ExprToList(inner)
	if !ok || len(parts) < 1 {
		return nil, &schemeerr.InvalidArgs{Message: "'lambda' expects a parameter list and a body"}
	}
	params, err := paramNames(parts[0])
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Params: params, Body: parts[1:]}, nil
}

// paramNames extracts the symbol names out of a parsed parameter-list
// form, which arrives as either ast.EmptyList or an *ast.Call of symbols
// (it was parsed as a plain application-shaped list, since `(x y)` looks
// identical to a call until you know it's a parameter list).
func paramNames(e ast.Expr) ([]string, error) {
	switch v := e.(type) {
	case *ast.EmptyListExpr:
		return nil, nil
	case *ast.Call:
		names := make([]string, len(v.Items))
		for i, item := range v.Items {
			atom, ok := item.(*ast.Atom)
			if !ok || atom.Kind != ast.SymbolAtom {
				return nil, &schemeerr.InvalidArgs{Message: "parameter names must be symbols"}
			}
			names[i] = atom.Symbol
		}
		return names, nil
	default:
		return nil, &schemeerr.TypeError{Expected: "list", Got: e.String()}
	}
}

// parseDefine expects either (define name value) or the function-shorthand
// (define (name params...) body...), which is desugared here into
// Define{Name, Value: &Lambda{...}} so eval only ever sees one shape.
func (p *Parser) parseDefine() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	parts, ok := ast.ExprToList(inner)
	if !ok || len(parts) < 1 {
		return nil, &schemeerr.InvalidArgs{Message: "'define' expects an identifier and a value"}
	}

	switch head := parts[0].(type) {
	case *ast.Atom:
		if head.Kind != ast.SymbolAtom {
			return nil, &schemeerr.TypeError{Expected: "symbol or list", Got: head.String()}
		}
		if len(parts) != 2 {
			return nil, &schemeerr.InvalidArgs{Message: "'define' expects exactly one value"}
		}
		return &ast.Define{Name: head.Symbol, Value: parts[1]}, nil
	case *ast.Call:
		nameAtom, ok := head.Items[0].(*ast.Atom)
		if !ok || nameAtom.Kind != ast.SymbolAtom {
			return nil, &schemeerr.InvalidArgs{Message: "expected identifier for procedure"}
		}
		params := make([]string, len(head.Items)-1)
		for i, item := range head.Items[1:] {
			atom, ok := item.(*ast.Atom)
			if !ok || atom.Kind != ast.SymbolAtom {
				return nil, &schemeerr.InvalidArgs{Message: "parameter names must be symbols"}
			}
			params[i] = atom.Symbol
		}
		return &ast.Define{
			Name:  nameAtom.Symbol,
			Value: &ast.Lambda{Params: params, Body: parts[1:]},
		}, nil
	default:
		return nil, &schemeerr.TypeError{Expected: "symbol or list", Got: head.String()}
	}
}

// parseAssignment expects (set! name value).
func (p *Parser) parseAssignment() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	parts, ok := ast.ExprToList(inner)
	if !ok || len(parts) != 2 {
		return nil, &schemeerr.InvalidArgs{Message: "'set!' expects an identifier and a value"}
	}
	atom, ok := parts[0].(*ast.Atom)
	if !ok || atom.Kind != ast.SymbolAtom {
		return nil, &schemeerr.TypeError{Expected: "symbol", Got: parts[0].String()}
	}
	return &ast.Assignment{Name: atom.Symbol, Value: parts[1]}, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	parts, _ := ast.ExprToList(inner)
	return &ast.And{Operands: parts}, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	parts, _ := ast.ExprToList(inner)
	return &ast.Or{Operands: parts}, nil
}

func (p *Parser) parseBegin() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	parts, _ := ast.ExprToList(inner)
	return &ast.Begin{Exprs: parts}, nil
}

// parseCond reads (cond (test expr...) ... [(else expr...)]) and desugars
// it directly into nested ast.If/ast.Begin nodes — cond is never itself
// handed to eval (spec.md §4.2).
func (p *Parser) parseCond() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	clauses, ok := ast.ExprToList(inner)
	if !ok || len(clauses) == 0 {
		return nil, &schemeerr.InvalidArgs{Message: "'cond' expects clauses"}
	}
	return condToIf(clauses)
}

func condToIf(clauses []ast.Expr) (ast.Expr, error) {
	if len(clauses) == 0 {
		return ast.EmptyList, nil
	}
	clause, ok := ast.ExprToList(clauses[0])
	if !ok || len(clause) < 1 {
		return nil, &schemeerr.InvalidArgs{Message: "'cond' clauses must be lists of a test and a body"}
	}
	test, body := clause[0], clause[1:]
	consequence := ast.Expr(&ast.Begin{Exprs: body})

	isElse := false
	if atom, ok := test.(*ast.Atom); ok && atom.Kind == ast.SymbolAtom && atom.Symbol == "else" {
		isElse = true
	}

	rest := clauses[1:]
	if isElse {
		if len(rest) != 0 {
			return nil, &schemeerr.UnexpectedToken{Printable: "else"}
		}
		return consequence, nil
	}

	alt, err := condToIf(rest)
	if err != nil {
		return nil, err
	}
	return &ast.If{Test: test, Conseq: consequence, Alt: alt}, nil
}

// parseLet reads (let ((name val)...) body...) and desugars it into an
// immediately-applied lambda: ((lambda (names...) body...) vals...)
// (spec.md §4.2) — let, like cond, is never itself handed to eval.
func (p *Parser) parseLet() (ast.Expr, error) {
	inner, err := p.parseInnerList()
	if err != nil {
		return nil, err
	}
	parts, ok := ast.ExprToList(inner)
	if !ok || len(parts) < 1 {
		return nil, &schemeerr.InvalidArgs{Message: "'let' expects bindings and a body"}
	}

	bindings, ok := ast.ExprToList(parts[0])
	if !ok {
		return nil, &schemeerr.TypeError{Expected: "list", Got: parts[0].String()}
	}

	names := make([]string, len(bindings))
	values := make([]ast.Expr, len(bindings))
	for i, b := range bindings {
		pair, ok := ast.ExprToList(b)
		if !ok || len(pair) != 2 {
			return nil, &schemeerr.InvalidArgs{Message: "'let' bindings must be (name value) pairs"}
		}
		atom, ok := pair[0].(*ast.Atom)
		if !ok || atom.Kind != ast.SymbolAtom {
			return nil, &schemeerr.TypeError{Expected: "symbol", Got: pair[0].String()}
		}
		names[i] = atom.Symbol
		values[i] = pair[1]
	}

	lambda := &ast.Lambda{Params: names, Body: parts[1:]}
	callItems := append([]ast.Expr{lambda}, values...)
	return &ast.Call{Items: callItems}, nil
}

// parseQuote handles the `'expr` shorthand: it reads exactly one following
// form and wraps it.
func (p *Parser) parseQuote() (ast.Expr, error) {
	datum, err := p.parseQuoteBody()
	if err != nil {
		return nil, err
	}
	return &ast.Quoted{Datum: datum}, nil
}

// parseQuoteBody reads the datum under a quote: unlike ordinary parsing,
// a parenthesized quoted form builds actual ast.Pair cons cells (so it can
// be walked and mutated at runtime) instead of an ast.Call.
func (p *Parser) parseQuoteBody() (ast.Expr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &schemeerr.UnexpectedEnd{}
	}
	switch tok.Type {
	case lexer.LParen:
		return p.parseQuotedList()
	case lexer.QuoteTick:
		inner, err := p.parseQuoteBody()
		if err != nil {
			return nil, err
		}
		return &ast.Quoted{Datum: inner}, nil
	case lexer.Number:
		return parseNumberAtom(tok.Literal)
	case lexer.String:
		return ast.NewString(tok.Literal), nil
	case lexer.Bool:
		return ast.NewBool(tok.Literal == "#t"), nil
	case lexer.RParen:
		return nil, &schemeerr.UnexpectedToken{Printable: tok.String()}
	default:
		// keywords quoted as data are just their symbol spelling
		return ast.NewSymbol(tok.Literal), nil
	}
}

func (p *Parser) parseQuotedList() (ast.Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &schemeerr.UnexpectedEnd{}
	}
	if tok.Type == lexer.RParen {
		p.pos++
		return ast.EmptyList, nil
	}
	car, err := p.parseQuoteBody()
	if err != nil {
		return nil, err
	}
	cdr, err := p.parseQuotedList()
	if err != nil {
		return nil, err
	}
	return &ast.Pair{Car: car, Cdr: cdr}, nil
}

func parseNumberAtom(lit string) (*ast.Atom, error) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, &schemeerr.MalformedToken{Reason: "'" + lit + "' is not a valid number"}
	}
	return ast.NewNumber(v), nil
}

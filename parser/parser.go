package parser

import "crimson/lexer"

type (
	unaryParser  func() Expr
	binaryParser func(Expr) Expr
)

type Parser struct {
	filename      string
	tokens        []lexer.Token
	Errors        []*ParserError
	curr          int // how many we have consumed.
	unaryParsers  map[lexer.TokenType]unaryParser
	binaryParsers map[lexer.TokenType]binaryParser
	precedences   map[lexer.TokenType]int
}

const (
	PREC_LOWEST  = iota
	PREC_EQ      // ==, !=
	PREC_CMP     // <, >
	PREC_SUM     // +, -
	PREC_PRODUCT // *, /
	PREC_PREFIX  // !, -
	PREC_CALL    // f()
	PREC_INDEX   // a[]
)

// ====
// init
// ====

// New creates a parser over tokens, which must end with an EOF token.
func New(fn string, tokens []lexer.Token) *Parser {
	p := &Parser{
		filename: fn,
		tokens:   tokens,
		Errors:   []*ParserError{},
		curr:     0,
	}
	p.unaryParsers = map[lexer.TokenType]unaryParser{
		lexer.LEFT_PAREN:   p.grouping,
		lexer.LEFT_BRACKET: p.array,
		lexer.LEFT_BRACE:   p.hash,
		lexer.IDENTIFIER:   p.identifier,
		lexer.INTEGER:      p.integer,
		lexer.STRING:       p.string,
		lexer.TRUE:         p.boolean,
		lexer.FALSE:        p.boolean,
		lexer.BANG:         p.prefix,
		lexer.MINUS:        p.prefix,
		lexer.IF:           p.ifExpr,
		lexer.FN:           p.function,
	}
	// note: need to make sure that every entry in binaryParsers
	// has a corresponding entry in precedences.
	p.binaryParsers = map[lexer.TokenType]binaryParser{
		lexer.EQUAL_EQUAL:  p.infix,
		lexer.BANG_EQUAL:   p.infix,
		lexer.GREATER:      p.infix,
		lexer.LESS:         p.infix,
		lexer.PLUS:         p.infix,
		lexer.MINUS:        p.infix,
		lexer.STAR:         p.infix,
		lexer.SLASH:        p.infix,
		lexer.LEFT_PAREN:   p.call,
		lexer.LEFT_BRACKET: p.index,
	}
	p.precedences = map[lexer.TokenType]int{
		lexer.EQUAL_EQUAL:  PREC_EQ,
		lexer.BANG_EQUAL:   PREC_EQ,
		lexer.GREATER:      PREC_CMP,
		lexer.LESS:         PREC_CMP,
		lexer.PLUS:         PREC_SUM,
		lexer.MINUS:        PREC_SUM,
		lexer.STAR:         PREC_PRODUCT,
		lexer.SLASH:        PREC_PRODUCT,
		lexer.LEFT_PAREN:   PREC_CALL,
		lexer.LEFT_BRACKET: PREC_INDEX,
	}
	return p
}

// =====
// utils
// =====

// consume consumes one token
func (p *Parser) consume() lexer.Token {
	if !p.isAtEnd() {
		p.curr++
	}
	return p.previous()
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token { return p.tokens[p.curr-1] }

// peek returns the token to be consumed
func (p *Parser) peek() lexer.Token { return p.tokens[p.curr] }

// isAtEnd returns true if the current token is an EOF token
func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

// check returns if the peek token matches the given type
func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

// match consumes the token if it matches any of the given types
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.consume()
			return true
		}
	}
	return false
}

// ===========
// entry point
// ===========

// program → statement*
//
// Parse parses the whole token sequence. The first error aborts the
// parse: Parse then returns nil and the error is in p.Errors.

func (p *Parser) Parse() (program *Program) {
	defer func() {
		if rv := recover(); rv != nil {
			if err, ok := rv.(*ParserError); ok {
				p.Errors = append(p.Errors, err)
				program = nil
				return
			}
			panic(rv)
		}
	}()
	program = &Program{Filename: p.filename, Stmts: []Stmt{}}
	for !p.isAtEnd() {
		program.Stmts = append(program.Stmts, p.statement())
	}
	return program
}

// =================
// statement parsing
// =================
//
//   statement → let | return | exprStmt
//   let       → "let" IDENT "=" expression ";"
//   return    → "return" expression? ";"
//   exprStmt  → expression ";"
//   block     → "{" statement* "}"
//
// the ";" may be left out before a "}" or the end of the input.

func (p *Parser) statement() Stmt {
	switch {
	case p.check(lexer.LET):
		return p.letStmt()
	case p.check(lexer.RETURN):
		return p.returnStmt()
	}
	return p.exprStmt()
}

func (p *Parser) letStmt() Stmt {
	token := p.consume()
	ident := p.expect(lexer.IDENTIFIER, "expected an identifier after let")
	p.expect(lexer.EQUAL, "expected = after let %s", ident.Lexeme)
	expr := p.expression()
	p.terminator("expected ; after let statement")
	return &Let{Keyword: token, Name: &Identifier{ident}, Value: expr}
}

func (p *Parser) returnStmt() Stmt {
	token := p.consume()
	var expr Expr
	if !p.atStmtEnd() {
		expr = p.expression()
	}
	p.terminator("expected ; after return statement")
	return &Return{Keyword: token, Value: expr}
}

func (p *Parser) exprStmt() Stmt {
	expr := p.expression()
	p.terminator("expected ; after expression")
	return &ExprStmt{Expr: expr}
}

func (p *Parser) block() *Block {
	token := p.expect(lexer.LEFT_BRACE, "expected {")
	stmts := []Stmt{}
	for !p.isAtEnd() && !p.check(lexer.RIGHT_BRACE) {
		stmts = append(stmts, p.statement())
	}
	p.expect(lexer.RIGHT_BRACE, "unmatched {")
	return &Block{LBrace: token, Stmts: stmts}
}

func (p *Parser) atStmtEnd() bool {
	return p.isAtEnd() || p.check(lexer.SEMICOLON) || p.check(lexer.RIGHT_BRACE)
}

// terminator consumes the ";" ending a statement.
func (p *Parser) terminator(msg string) {
	if p.match(lexer.SEMICOLON) || p.isAtEnd() || p.check(lexer.RIGHT_BRACE) {
		return
	}
	p.error(p.peek(), msg)
}

// ==================
// expression parsing
// ==================

// expression matches a single expression.
func (p *Parser) expression() Expr { return p.precedence(PREC_LOWEST) }

func (p *Parser) precedence(prec int) Expr {
	unary, ok := p.unaryParsers[p.peek().Type]
	if !ok {
		p.error(p.peek(), "expected an expression")
	}
	expr := unary()
	for prec < p.peekPrecedence() {
		expr = p.binaryParsers[p.peek().Type](expr)
	}
	return expr
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := p.precedences[p.peek().Type]; ok {
		return prec
	}
	return PREC_LOWEST
}

func (p *Parser) prefix() Expr {
	tok := p.consume()
	return &Prefix{Op: tok, Right: p.precedence(PREC_PREFIX)}
}

func (p *Parser) grouping() Expr {
	p.consume()
	expr := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unmatched (")
	return expr
}

func (p *Parser) infix(left Expr) Expr {
	tok := p.consume()
	return &Infix{Op: tok, Left: left, Right: p.precedence(p.precedences[tok.Type])}
}

func (p *Parser) call(callee Expr) Expr {
	tok := p.consume()
	args := p.list(lexer.RIGHT_PAREN, "unmatched ( in call", p.expression)
	return &Call{LParen: tok, Callee: callee, Args: args}
}

func (p *Parser) index(left Expr) Expr {
	tok := p.consume()
	idx := p.expression()
	p.expect(lexer.RIGHT_BRACKET, "unmatched [ in index expression")
	return &Index{LBracket: tok, Left: left, Index: idx}
}

// ifExpr → "if" "(" expression ")" block ( "else" block )?
func (p *Parser) ifExpr() Expr {
	tok := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after if")
	cond := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unclosed (")
	then := p.block()
	var elseBlock *Block
	if p.match(lexer.ELSE) {
		elseBlock = p.block()
	}
	return &If{Keyword: tok, Cond: cond, Then: then, Else: elseBlock}
}

// function → "fn" "(" ( IDENT ","? )* ")" block
func (p *Parser) function() Expr {
	tok := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after fn")
	params := []*Identifier{}
	for !p.check(lexer.RIGHT_PAREN) {
		if p.isAtEnd() {
			p.error(p.peek(), "unmatched ( in parameter list")
		}
		ident := p.expect(lexer.IDENTIFIER, "expected a parameter name")
		params = append(params, &Identifier{ident})
		p.match(lexer.COMMA)
	}
	p.consume()
	body := p.block()
	return &Function{Keyword: tok, Params: params, Body: body}
}

func (p *Parser) array() Expr {
	tok := p.consume()
	exprs := p.list(lexer.RIGHT_BRACKET, "unmatched [", p.expression)
	return &Array{LBracket: tok, Exprs: exprs}
}

// hash → "{" ( expression ":" expression ","? )* "}"
func (p *Parser) hash() Expr {
	tok := p.consume()
	pairs := []HashPair{}
	for !p.check(lexer.RIGHT_BRACE) {
		if p.isAtEnd() {
			p.error(p.peek(), "unmatched { in hash literal")
		}
		key := p.expression()
		p.expect(lexer.COLON, "expected : after hash key")
		value := p.expression()
		pairs = append(pairs, HashPair{Key: key, Value: value})
		p.match(lexer.COMMA)
	}
	p.consume()
	return &Hash{LBrace: tok, Pairs: pairs}
}

// list parses elements up to and including the closing token; commas
// between elements are optional and a trailing comma is allowed.
func (p *Parser) list(closing lexer.TokenType, unclosed string, element func() Expr) []Expr {
	exprs := []Expr{}
	for !p.check(closing) {
		if p.isAtEnd() {
			p.error(p.peek(), unclosed)
		}
		exprs = append(exprs, element())
		p.match(lexer.COMMA)
	}
	p.consume()
	return exprs
}

func (p *Parser) identifier() Expr {
	tok := p.consume()
	return &Identifier{tok}
}

func (p *Parser) integer() Expr {
	tok := p.consume()
	return &IntegerLiteral{Lit: tok, Value: tok.Literal.(int64)}
}

func (p *Parser) string() Expr {
	tok := p.consume()
	return &StringLiteral{Lit: tok, Value: tok.Literal.(string)}
}

func (p *Parser) boolean() Expr {
	tok := p.consume()
	return &BooleanLiteral{Lit: tok, Value: tok.Type == lexer.TRUE}
}

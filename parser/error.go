package parser

import (
	"crimson/lexer"
	"fmt"
)

// Represents a parsing error. We use this internally to signal
// that we cannot continue parsing the input; the panic is recovered
// in Parse and the error is recorded in .Errors.
type ParserError struct {
	Filename string
	Token    lexer.Token
	Message  string
}

func (e *ParserError) Error() string { return e.String() }
func (e *ParserError) String() string {
	return fmt.Sprintf("%s:%d:%d: %s, found %s",
		e.Filename, e.Token.Line, e.Token.Column, e.Message, e.Token)
}

// error aborts parsing at the given token.
func (p *Parser) error(tok lexer.Token, s string, args ...interface{}) {
	panic(&ParserError{
		Filename: p.filename,
		Token:    tok,
		Message:  fmt.Sprintf(s, args...),
	})
}

// expect consumes the next token if it has the given type, and aborts
// parsing at that token otherwise.
func (p *Parser) expect(typ lexer.TokenType, s string, args ...interface{}) lexer.Token {
	if !p.check(typ) {
		p.error(p.peek(), s, args...)
	}
	return p.consume()
}

package eval

import (
	"bytes"
	"crimson/lexer"
	"crimson/parser"
	"fmt"

	"github.com/pkg/errors"
)

//go:generate go tool stringer -type=ErrorKind

// ErrorKind classifies every error a Session can report.
type ErrorKind uint8

const (
	_ = ErrorKind(iota)
	LexError
	ParseError
	UndefinedIdentifier
	TypeMismatch
	ArityMismatch
	UnhashableKey
	IndexOutOfBounds
	ResourceExhausted
	DivisionByZero
	IntegerOverflow
)

type frame struct {
	fn  string // filename
	ln  int    // line no
	col int    // col
	ctx string // e.g. [Module] or [Function ...]
}

// Error is a propagating runtime error. It travels through the
// evaluator as a Value and leaves the Session as an error.
type Error struct {
	Kind    ErrorKind
	Message string
	stack   []frame
}

func newError(kind ErrorKind, s string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(s, args...),
		stack:   []frame{},
	}
}

func (e *Error) Type() ValueType { return VT_ERROR }
func (e *Error) Error() string   { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

// traceEdge is how many frames String keeps at each end of a long trace.
const traceEdge = 10

// String renders the error together with its trace, innermost first.
// Traces longer than 2*traceEdge frames elide the middle.
func (e *Error) String() string {
	var buf bytes.Buffer
	buf.WriteString(e.Error())
	n := len(e.stack)
	for i, ctx := range e.stack {
		if n > 2*traceEdge && i >= traceEdge && i < n-traceEdge {
			if i == traceEdge {
				buf.WriteString(fmt.Sprintf("\n  ... %d more frames", n-2*traceEdge))
			}
			continue
		}
		buf.WriteString("\n")
		buf.WriteString(fmt.Sprintf("  at %s:%d:%d: %s", ctx.fn, ctx.ln, ctx.col, ctx.ctx))
	}
	return buf.String()
}

// KindOf reports the kind of an error returned by a Session.
// Errors from outside the interpreter have kind 0.
func KindOf(err error) ErrorKind {
	var rtErr *Error
	var lexErr *lexer.Error
	var parseErr *parser.ParserError
	switch {
	case errors.As(err, &rtErr):
		return rtErr.Kind
	case errors.As(err, &lexErr):
		return LexError
	case errors.As(err, &parseErr):
		return ParseError
	}
	return 0
}

func (ctx *Context) addErrorStack(err *Error, token lexer.Token) *Error {
	cse := ctx.currFunc()
	err.stack = append(err.stack, frame{
		fn:  cse.Filename(),
		ln:  token.Line,
		col: token.Column,
		ctx: cse.Context(),
	})
	return err
}

func isError(v Value) bool { return v.Type() == VT_ERROR }

package eval

import (
	"crimson/lexer"
	"math"

	"github.com/JohnCGriffin/overflow"
)

// This file implements the meta-functions: operators, calling a
// function and subscripting.

// =========
// Operators
// =========

func (ctx *Context) unary(op lexer.Token, right Value) Value {
	switch op.Type {
	case lexer.MINUS:
		if n, ok := right.(Integer); ok {
			rv, ok := overflow.Mul64(int64(n), -1)
			if !ok {
				return newError(IntegerOverflow, "-%d overflows", n)
			}
			return Integer(rv)
		}
	case lexer.BANG:
		if b, ok := right.(Boolean); ok {
			return !b
		}
	}
	return newError(TypeMismatch, "unsupported operand type for %s: %s", op.Lexeme, right.Type())
}

func (ctx *Context) binary(op lexer.Token, left, right Value) Value {
	switch l := left.(type) {
	case Integer:
		if r, ok := right.(Integer); ok {
			return integerBinary(op, l, r)
		}
	case Boolean:
		if r, ok := right.(Boolean); ok {
			switch op.Type {
			case lexer.EQUAL_EQUAL:
				return Boolean(l == r)
			case lexer.BANG_EQUAL:
				return Boolean(l != r)
			}
		}
	case String:
		if r, ok := right.(String); ok && op.Type == lexer.PLUS {
			return l + r
		}
	}
	return newError(TypeMismatch, "unsupported operand types for %s: %s and %s",
		op.Lexeme, left.Type(), right.Type())
}

func integerBinary(op lexer.Token, l, r Integer) Value {
	a, b := int64(l), int64(r)
	var rv int64
	ok := true
	switch op.Type {
	case lexer.PLUS:
		rv, ok = overflow.Add64(a, b)
	case lexer.MINUS:
		rv, ok = overflow.Sub64(a, b)
	case lexer.STAR:
		rv, ok = overflow.Mul64(a, b)
	case lexer.SLASH:
		if b == 0 {
			return newError(DivisionByZero, "%d / 0", a)
		}
		if a == math.MinInt64 && b == -1 {
			ok = false
		} else {
			rv = a / b
		}
	case lexer.LESS:
		return Boolean(a < b)
	case lexer.GREATER:
		return Boolean(a > b)
	case lexer.EQUAL_EQUAL:
		return Boolean(a == b)
	case lexer.BANG_EQUAL:
		return Boolean(a != b)
	default:
		return newError(TypeMismatch, "unsupported operand types for %s: INTEGER and INTEGER", op.Lexeme)
	}
	if !ok {
		return newError(IntegerOverflow, "%d %s %d overflows", a, op.Lexeme, b)
	}
	return Integer(rv)
}

// =========
// Functions
// =========

func isCallable(v Value) bool {
	switch v.(type) {
	case *Function, *Builtin:
		return true
	}
	return false
}

func (ctx *Context) call(callee Value, args []Value) Value {
	switch fn := callee.(type) {
	case *Function:
		return ctx.callFunction(fn, args)
	case *Builtin:
		ctx.pushFunc(builtinCse{fn})
		rv := fn.call(ctx, args)
		ctx.popFunc()
		return rv
	}
	return newError(TypeMismatch, "%s is not callable", callee.Type())
}

// callFunction binds the arguments in a fresh child of the closure's
// environment, never the caller's.
func (ctx *Context) callFunction(fn *Function, args []Value) Value {
	if len(args) != fn.Arity() {
		return newError(ArityMismatch, "%s expects %d argument(s), got=%d",
			fn.paramList(), fn.Arity(), len(args))
	}
	if ctx.callDepth() > ctx.maxDepth {
		return newError(ResourceExhausted, "maximum call depth %d exceeded", ctx.maxDepth)
	}
	env := newEnv(fn.closure)
	for i, param := range fn.node.Params {
		env.set(param.Name(), args[i])
	}
	oldEnv := ctx.env
	ctx.env = env
	ctx.pushFunc(functionCse{fn})
	rv := ctx.evalBlock(fn.node.Body)
	ctx.popFunc()
	ctx.env = oldEnv
	return rv
}

// ============
// Subscripting
// ============

func (ctx *Context) index(container, idx Value) Value {
	switch c := container.(type) {
	case *Array:
		i, ok := idx.(Integer)
		if !ok {
			return newError(TypeMismatch, "array index must be INTEGER, got=%s", idx.Type())
		}
		if i < 0 || int64(i) >= int64(c.Len()) {
			return newError(IndexOutOfBounds, "index %d out of range for array of length %d", i, c.Len())
		}
		rv, _ := c.At(int(i))
		return rv
	case *Hash:
		key, err := asHashable(idx)
		if err != nil {
			return err
		}
		if rv, found := c.Get(key); found {
			return rv
		}
		return NULL
	}
	return newError(TypeMismatch, "%s is not subscriptable", container.Type())
}

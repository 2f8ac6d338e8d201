package eval

import (
	"crimson/parser"
	"fmt"
	"io"
	"os"

	"github.com/edwingeng/deque"
)

// DefaultMaxDepth bounds nested calls; deeper recursion is reported as
// ResourceExhausted instead of overflowing the Go stack.
const DefaultMaxDepth = 2048

// MaxDepthLimit is the largest MaxDepth a Session accepts; larger
// values are clamped so recursion always fails before the Go stack does.
const MaxDepthLimit = 1 << 15

type Context struct {
	// stack contains the current call stack. we consult the call-stack to tell
	// us which function we're in, and augment that using an expression's token.
	stack deque.Deque
	// the current environment we're executing.
	env *environment
	// for hash tables
	ht_seed uint64
	// calls deeper than this fail with ResourceExhausted.
	maxDepth int
	// where print writes to.
	out io.Writer
}

// NewContext returns a context with an empty root environment.
func NewContext() *Context {
	return &Context{
		stack:    deque.NewDeque(),
		env:      newEnv(nil),
		ht_seed:  getNewHashTableSeed(),
		maxDepth: DefaultMaxDepth,
		out:      os.Stdout,
	}
}

// EvalProgram evaluates the statements of program in the root
// environment. Bindings made before an error stay bound.
func (ctx *Context) EvalProgram(program *parser.Program) Value {
	ctx.pushFunc(moduleCse{program.Filename})
	rv := ctx.evalStmts(program.Stmts)
	ctx.popFunc()
	return rv
}

func (ctx *Context) EvalStmt(node parser.Stmt) Value {
	switch node := node.(type) {
	case *parser.Let:
		return ctx.evalLet(node)
	case *parser.Return:
		return ctx.evalReturn(node)
	case *parser.ExprStmt:
		return ctx.EvalExpr(node.Expr)
	}
	panic(fmt.Sprintf("unhandled node %#+v", node))
}

func (ctx *Context) EvalExpr(node parser.Expr) Value {
	switch node := node.(type) {
	case *parser.Identifier:
		return ctx.evalIdentifier(node)
	case *parser.IntegerLiteral:
		return Integer(node.Value)
	case *parser.StringLiteral:
		return String(node.Value)
	case *parser.BooleanLiteral:
		return Boolean(node.Value)
	case *parser.Prefix:
		return ctx.evalPrefix(node)
	case *parser.Infix:
		return ctx.evalInfix(node)
	case *parser.If:
		return ctx.evalIf(node)
	case *parser.Function:
		return ctx.evalFunction(node)
	case *parser.Call:
		return ctx.evalCall(node)
	case *parser.Array:
		return ctx.evalArray(node)
	case *parser.Index:
		return ctx.evalIndex(node)
	case *parser.Hash:
		return ctx.evalHash(node)
	}
	panic(fmt.Sprintf("unhandled node %#+v", node))
}

// ==========
// Statements
// ==========

// evalStmts runs a block or program. A return statement ends it early;
// otherwise its value is that of the last statement.
func (ctx *Context) evalStmts(stmts []parser.Stmt) Value {
	var rv = Value(NULL)
	for _, stmt := range stmts {
		rv = ctx.EvalStmt(stmt)
		if isError(rv) {
			return rv
		}
		if _, ok := stmt.(*parser.Return); ok {
			return rv
		}
	}
	return rv
}

// Blocks share the enclosing scope; only calls create environments.
func (ctx *Context) evalBlock(node *parser.Block) Value {
	return ctx.evalStmts(node.Stmts)
}

func (ctx *Context) evalLet(node *parser.Let) Value {
	value := ctx.EvalExpr(node.Value)
	if isError(value) {
		return value
	}
	ctx.env.set(node.Name.Name(), value)
	return NULL
}

func (ctx *Context) evalReturn(node *parser.Return) Value {
	if node.Value == nil {
		return NULL
	}
	return ctx.EvalExpr(node.Value)
}

// ===========
// Expressions
// ===========

func (ctx *Context) evalIdentifier(node *parser.Identifier) Value {
	name := node.Name()
	if value, ok := ctx.env.get(name); ok {
		return value
	}
	if builtin, ok := lookupBuiltin(name); ok {
		return builtin
	}
	e := newError(UndefinedIdentifier, "%q is not defined", name)
	return ctx.addErrorStack(e, node.Id)
}

func (ctx *Context) evalPrefix(node *parser.Prefix) Value {
	right := ctx.EvalExpr(node.Right)
	if isError(right) {
		return right
	}
	rv := ctx.unary(node.Op, right)
	if isError(rv) {
		return ctx.addErrorStack(rv.(*Error), node.Op)
	}
	return rv
}

func (ctx *Context) evalInfix(node *parser.Infix) Value {
	left := ctx.EvalExpr(node.Left)
	if isError(left) {
		return left
	}
	right := ctx.EvalExpr(node.Right)
	if isError(right) {
		return right
	}
	rv := ctx.binary(node.Op, left, right)
	if isError(rv) {
		return ctx.addErrorStack(rv.(*Error), node.Op)
	}
	return rv
}

func (ctx *Context) evalIf(node *parser.If) Value {
	cond := ctx.EvalExpr(node.Cond)
	if isError(cond) {
		return cond
	}
	b, ok := cond.(Boolean)
	if !ok {
		e := newError(TypeMismatch, "if condition must be BOOLEAN, got=%s", cond.Type())
		return ctx.addErrorStack(e, node.Keyword)
	}
	if b {
		return ctx.evalBlock(node.Then)
	}
	if node.Else != nil {
		return ctx.evalBlock(node.Else)
	}
	return NULL
}

func (ctx *Context) evalFunction(node *parser.Function) Value {
	return newFunction(ctx.currFunc().Filename(), node, ctx.env)
}

func (ctx *Context) evalCall(node *parser.Call) Value {
	callee := ctx.EvalExpr(node.Callee)
	if isError(callee) {
		return callee
	}
	if !isCallable(callee) {
		e := newError(TypeMismatch, "%s is not callable", callee.Type())
		return ctx.addErrorStack(e, node.LParen)
	}
	args := make([]Value, len(node.Args))
	for i, exprNode := range node.Args {
		expr := ctx.EvalExpr(exprNode)
		if isError(expr) {
			return expr
		}
		args[i] = expr
	}
	rv := ctx.call(callee, args)
	if isError(rv) {
		return ctx.addErrorStack(rv.(*Error), node.LParen)
	}
	return rv
}

func (ctx *Context) evalArray(node *parser.Array) Value {
	values := make([]Value, len(node.Exprs))
	for i, expr := range node.Exprs {
		val := ctx.EvalExpr(expr)
		if isError(val) {
			return val
		}
		values[i] = val
	}
	return newArray(values)
}

func (ctx *Context) evalIndex(node *parser.Index) Value {
	left := ctx.EvalExpr(node.Left)
	if isError(left) {
		return left
	}
	idx := ctx.EvalExpr(node.Index)
	if isError(idx) {
		return idx
	}
	rv := ctx.index(left, idx)
	if isError(rv) {
		return ctx.addErrorStack(rv.(*Error), node.LBracket)
	}
	return rv
}

func (ctx *Context) evalHash(node *parser.Hash) Value {
	hash := newHash(ctx)
	for _, pair := range node.Pairs {
		k := ctx.EvalExpr(pair.Key)
		if isError(k) {
			return k
		}
		key, err := asHashable(k)
		if err != nil {
			return ctx.addErrorStack(err, pair.Key.Tok())
		}
		v := ctx.EvalExpr(pair.Value)
		if isError(v) {
			return v
		}
		hash.table.insert(key, v)
	}
	return hash
}

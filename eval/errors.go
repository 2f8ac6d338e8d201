package eval

// callStackEntry contains partial information about the function call;
// only including the filename and the string.
type callStackEntry interface {
	Filename() string
	Context() string
}

type moduleCse struct{ filename string }

func (m moduleCse) Filename() string { return m.filename }
func (m moduleCse) Context() string  { return "[Module]" }

type functionCse struct {
	function *Function
}

func (f functionCse) Filename() string { return f.function.filename }
func (f functionCse) Context() string  { return "[Function " + f.function.paramList() + "]" }

type builtinCse struct {
	builtin *Builtin
}

func (b builtinCse) Filename() string { return "[builtin]" }
func (b builtinCse) Context() string  { return b.builtin.String() }

// The call stack is a deque of callStackEntry; the innermost call is
// at the back.

func (ctx *Context) pushFunc(e callStackEntry) { ctx.stack.PushBack(e) }
func (ctx *Context) popFunc()                  { ctx.stack.PopBack() }
func (ctx *Context) currFunc() callStackEntry  { return ctx.stack.Back().(callStackEntry) }
func (ctx *Context) callDepth() int            { return ctx.stack.Len() }

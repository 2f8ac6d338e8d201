package eval

import "fmt"

// =================
// Builtin functions
// =================

var builtins map[string]*Builtin

func init() {
	builtins = map[string]*Builtin{
		"len":   newBuiltin("len", bi_len),
		"print": newBuiltin("print", bi_print),
	}
}

// lookupBuiltin is consulted after the scope chain, so user bindings
// shadow builtins.
func lookupBuiltin(name string) (*Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

// ---
// len
// ---
func bi_len(ctx *Context, args []Value) Value {
	if err := expectNArgs("len", args, 1); err != nil {
		return err
	}
	switch arg := args[0].(type) {
	case String:
		// byte length of the UTF-8 encoding
		return Integer(len(arg))
	case *Array:
		return Integer(arg.Len())
	}
	return newError(TypeMismatch, "len: expected STRING or ARRAY, got=%s", args[0].Type())
}

// -----
// print
// -----
func bi_print(ctx *Context, args []Value) Value {
	if err := expectNArgs("print", args, 1); err != nil {
		return err
	}
	fmt.Fprintln(ctx.out, args[0].String())
	return args[0]
}

func expectNArgs(name string, args []Value, n int) *Error {
	if len(args) == n {
		return nil
	}
	return newError(ArityMismatch, "%s: expected %d argument(s), got=%d", name, n, len(args))
}

package eval

import (
	"crimson/parser"

	"src.elv.sh/pkg/persistent/vector"
)

//go:generate go tool stringer -type=ValueType -trimprefix=VT_

type ValueType uint8

const (
	_ = ValueType(iota)
	// Real values
	VT_NULL
	VT_INTEGER
	VT_BOOLEAN
	VT_STRING
	VT_ARRAY
	VT_HASH
	VT_FUNCTION
	VT_BUILTIN
	// Runtime Control
	VT_ERROR
)

// Value is implemented by every runtime value. String renders the
// value the way the REPL prints it.
type Value interface {
	Type() ValueType
	String() string
}

type Null struct{}
type Integer int64
type Boolean bool
type String string

// Array is immutable; it shares structure through a persistent vector.
type Array struct {
	values vector.Vector
}

func newArray(values []Value) *Array {
	vec := vector.Empty
	for _, v := range values {
		vec = vec.Conj(v)
	}
	return &Array{vec}
}

func (v *Array) Len() int { return v.values.Len() }

// At returns the i-th element, or false if i is out of range.
func (v *Array) At(i int) (Value, bool) {
	if i < 0 || i >= v.values.Len() {
		return nil, false
	}
	elem, ok := v.values.Index(i)
	if !ok {
		return nil, false
	}
	return elem.(Value), true
}

// Values copies the elements out in order.
func (v *Array) Values() []Value {
	rv := make([]Value, 0, v.values.Len())
	for it := v.values.Iterator(); it.HasElem(); it.Next() {
		rv = append(rv, it.Elem().(Value))
	}
	return rv
}

type Hash struct {
	table *hashTable
}

func newHash(ctx *Context) *Hash {
	return &Hash{table: newHashTable(ctx.ht_seed)}
}

func (v *Hash) Len() int { return v.table.size() }

// Get looks up key; absent keys report false.
func (v *Hash) Get(key Hashable) (Value, bool) { return v.table.get(key) }

// Function is a closure: the literal plus the environment it was
// evaluated in.
type Function struct {
	node     *parser.Function
	closure  *environment
	filename string
}

func newFunction(filename string, node *parser.Function, env *environment) *Function {
	return &Function{
		filename: filename,
		node:     node,
		closure:  env,
	}
}

func (v *Function) Arity() int { return len(v.node.Params) }

type builtinFunc func(ctx *Context, args []Value) Value

// Builtin represents a built-in function
type Builtin struct {
	name string
	call builtinFunc
}

func newBuiltin(name string, call builtinFunc) *Builtin {
	return &Builtin{
		name: name,
		call: call,
	}
}

func (v Null) Type() ValueType      { return VT_NULL }
func (v Integer) Type() ValueType   { return VT_INTEGER }
func (v Boolean) Type() ValueType   { return VT_BOOLEAN }
func (v String) Type() ValueType    { return VT_STRING }
func (v *Array) Type() ValueType    { return VT_ARRAY }
func (v *Hash) Type() ValueType     { return VT_HASH }
func (v *Function) Type() ValueType { return VT_FUNCTION }
func (v *Builtin) Type() ValueType  { return VT_BUILTIN }

// ==========
// Singletons
// ==========

var (
	NULL  = Null{}
	TRUE  = Boolean(true)
	FALSE = Boolean(false)
)

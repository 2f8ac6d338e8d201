package eval

import (
	"bytes"
	"strconv"
	"strings"
)

// =========
// Stringify
// =========
//
// String on a value is its REPL rendering. Strings are quoted wherever
// they appear, including inside containers.

func (v Null) String() string { return "NULL" }
func (v Boolean) String() string {
	if v {
		return "true"
	}
	return "false"
}
func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }
func (v String) String() string  { return `"` + string(v) + `"` }

func (v *Array) String() string {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, x := range v.Values() {
		if i != 0 {
			buf.WriteString(",")
		}
		buf.WriteString(x.String())
	}
	buf.WriteString("]")
	return buf.String()
}

// String on a Hash lists entries in table order, which depends on the
// session's hash seed.
func (v *Hash) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	first := true
	v.table.each(func(k Hashable, x Value) {
		if !first {
			buf.WriteString(",")
		}
		first = false
		buf.WriteString(k.String())
		buf.WriteString(":")
		buf.WriteString(x.String())
	})
	buf.WriteString("}")
	return buf.String()
}

// String on a Function is fn(params){body}, where body is the block's
// statements; the result parses back to an equivalent literal.
func (v *Function) String() string {
	var buf bytes.Buffer
	buf.WriteString("fn(")
	for i, param := range v.node.Params {
		if i != 0 {
			buf.WriteString(",")
		}
		buf.WriteString(param.Name())
	}
	buf.WriteString("){")
	for i, stmt := range v.node.Body.Stmts {
		if i != 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(stmt.String())
	}
	buf.WriteString("}")
	return buf.String()
}

func (v *Function) paramList() string {
	params := make([]string, len(v.node.Params))
	for i, param := range v.node.Params {
		params[i] = param.Name()
	}
	return "fn(" + strings.Join(params, ", ") + ")"
}

func (v *Builtin) String() string { return "builtin " + v.name }

package parser

import (
	"bytes"
	"strings"
)

// Every node renders to source text that parses back to an equal
// tree: binary and prefix expressions are fully parenthesised.

func (node *Program) String() string {
	stmts := []string{}
	for _, stmt := range node.Stmts {
		stmts = append(stmts, stmt.String())
	}
	return strings.Join(stmts, "\n")
}

func (node *Block) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, stmt := range node.Stmts {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(stmt.String())
	}
	buf.WriteString("}")
	return buf.String()
}

// Statements

func (node *Let) String() string {
	var buf bytes.Buffer
	buf.WriteString("let ")
	buf.WriteString(node.Name.String())
	buf.WriteString(" = ")
	buf.WriteString(node.Value.String())
	buf.WriteString(";")
	return buf.String()
}

func (node *Return) String() string {
	if node.Value == nil {
		return "return;"
	}
	return "return " + node.Value.String() + ";"
}

func (node *ExprStmt) String() string { return node.Expr.String() + ";" }

// Expressions

func (node *Infix) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Left.String())
	buf.WriteString(" ")
	buf.WriteString(node.Op.Lexeme)
	buf.WriteString(" ")
	buf.WriteString(node.Right.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Prefix) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Op.Lexeme)
	buf.WriteString(node.Right.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *If) String() string {
	var buf bytes.Buffer
	buf.WriteString("if (")
	buf.WriteString(node.Cond.String())
	buf.WriteString(") ")
	buf.WriteString(node.Then.String())
	if node.Else != nil {
		buf.WriteString(" else ")
		buf.WriteString(node.Else.String())
	}
	return buf.String()
}

func (node *Function) String() string {
	params := []string{}
	for _, param := range node.Params {
		params = append(params, param.String())
	}
	return "fn(" + strings.Join(params, ", ") + ") " + node.Body.String()
}

func (node *Call) String() string {
	return node.Callee.String() + "(" + joinExprs(node.Args) + ")"
}

func (node *Array) String() string { return "[" + joinExprs(node.Exprs) + "]" }

func (node *Index) String() string {
	return "(" + node.Left.String() + "[" + node.Index.String() + "])"
}

func (node *Hash) String() string {
	pairs := []string{}
	for _, pair := range node.Pairs {
		pairs = append(pairs, pair.Key.String()+": "+pair.Value.String())
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func (node *Identifier) String() string     { return node.Id.Lexeme }
func (node *IntegerLiteral) String() string { return node.Lit.Lexeme }
func (node *StringLiteral) String() string  { return `"` + node.Value + `"` }
func (node *BooleanLiteral) String() string { return node.Lit.Lexeme }

func joinExprs(exprs []Expr) string {
	strs := make([]string, len(exprs))
	for i, expr := range exprs {
		strs[i] = expr.String()
	}
	return strings.Join(strs, ", ")
}

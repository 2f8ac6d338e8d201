package parser

import "crimson/lexer"

// Nodes are never mutated once the parser returns them, so a Program
// can be cached and evaluated any number of times.

type Node interface {
	String() string
	Tok() lexer.Token
	node()
}

type Expr interface {
	Node
	expr()
}

type Stmt interface {
	Node
	stmt()
}

// Program is the root of a parsed input unit.
type Program struct {
	Filename string
	Stmts    []Stmt
}

// Block is the body of an if branch or a function.
type Block struct {
	LBrace lexer.Token
	Stmts  []Stmt
}

// Statements

type Let struct {
	Keyword lexer.Token
	Name    *Identifier
	Value   Expr
}

type Return struct {
	Keyword lexer.Token
	Value   Expr // nil for a bare return
}

type ExprStmt struct {
	Expr Expr
}

// Expressions

type Identifier struct {
	Id lexer.Token
}

type IntegerLiteral struct {
	Lit   lexer.Token
	Value int64
}

type StringLiteral struct {
	Lit   lexer.Token
	Value string
}

type BooleanLiteral struct {
	Lit   lexer.Token
	Value bool
}

type Prefix struct {
	Op    lexer.Token
	Right Expr
}

type Infix struct {
	Op    lexer.Token
	Left  Expr
	Right Expr
}

type If struct {
	Keyword lexer.Token
	Cond    Expr
	Then    *Block
	Else    *Block // nil when there is no else branch
}

type Function struct {
	Keyword lexer.Token
	Params  []*Identifier
	Body    *Block
}

type Call struct {
	LParen lexer.Token
	Callee Expr
	Args   []Expr
}

type Array struct {
	LBracket lexer.Token
	Exprs    []Expr
}

type Index struct {
	LBracket lexer.Token
	Left     Expr
	Index    Expr
}

type HashPair struct {
	Key   Expr
	Value Expr
}

type Hash struct {
	LBrace lexer.Token
	Pairs  []HashPair
}

func (node *Identifier) Name() string { return node.Id.Lexeme }

// Tok returns the token an error about the node should point at.

func (node *Program) Tok() lexer.Token {
	if len(node.Stmts) == 0 {
		return lexer.Token{Type: lexer.EOF, Line: 1, Column: 1}
	}
	return node.Stmts[0].Tok()
}
func (node *Block) Tok() lexer.Token          { return node.LBrace }
func (node *Let) Tok() lexer.Token            { return node.Keyword }
func (node *Return) Tok() lexer.Token         { return node.Keyword }
func (node *ExprStmt) Tok() lexer.Token       { return node.Expr.Tok() }
func (node *Identifier) Tok() lexer.Token     { return node.Id }
func (node *IntegerLiteral) Tok() lexer.Token { return node.Lit }
func (node *StringLiteral) Tok() lexer.Token  { return node.Lit }
func (node *BooleanLiteral) Tok() lexer.Token { return node.Lit }
func (node *Prefix) Tok() lexer.Token         { return node.Op }
func (node *Infix) Tok() lexer.Token          { return node.Op }
func (node *If) Tok() lexer.Token             { return node.Keyword }
func (node *Function) Tok() lexer.Token       { return node.Keyword }
func (node *Call) Tok() lexer.Token           { return node.LParen }
func (node *Array) Tok() lexer.Token          { return node.LBracket }
func (node *Index) Tok() lexer.Token          { return node.LBracket }
func (node *Hash) Tok() lexer.Token           { return node.LBrace }

func (node *Program) node()        {}
func (node *Block) node()          {}
func (node *Let) node()            {}
func (node *Return) node()         {}
func (node *ExprStmt) node()       {}
func (node *Identifier) node()     {}
func (node *IntegerLiteral) node() {}
func (node *StringLiteral) node()  {}
func (node *BooleanLiteral) node() {}
func (node *Prefix) node()         {}
func (node *Infix) node()          {}
func (node *If) node()             {}
func (node *Function) node()       {}
func (node *Call) node()           {}
func (node *Array) node()          {}
func (node *Index) node()          {}
func (node *Hash) node()           {}

func (node *Let) stmt()      {}
func (node *Return) stmt()   {}
func (node *ExprStmt) stmt() {}

func (node *Identifier) expr()     {}
func (node *IntegerLiteral) expr() {}
func (node *StringLiteral) expr()  {}
func (node *BooleanLiteral) expr() {}
func (node *Prefix) expr()         {}
func (node *Infix) expr()          {}
func (node *If) expr()             {}
func (node *Function) expr()       {}
func (node *Call) expr()           {}
func (node *Array) expr()          {}
func (node *Index) expr()          {}
func (node *Hash) expr()           {}

package parser_test

import (
	"crimson/lexer"
	"crimson/parser"
	"testing"
)

func TestParserValid(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a + b + c;", "((a + b) + c);"},
		{"a + b * c;", "(a + (b * c));"},
		{"a - b - c", "((a - b) - c);"},
		{"a / b / c", "((a / b) / c);"},
		{"2 + 3 * 4", "(2 + (3 * 4));"},
		{"(2 + 3) * 4", "((2 + 3) * 4);"},
		{"1 < 2 == true", "((1 < 2) == true);"},
		{"a + b > c == d != e", "((((a + b) > c) == d) != e);"},
		{"a + -b * c / d;", "(a + (((-b) * c) / d));"},
		{"!-a", "(!(-a));"},
		{"!true == false", "((!true) == false);"},
		{"-a[0]", "(-(a[0]));"},
		{"-f(x)", "(-f(x));"},
		{"a / (c - f) / d + e;", "(((a / (c - f)) / d) + e);"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d);"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)));"},
		{"adder(2)(3)", "adder(2)(3);"},
		{"f(x)[1](y)", "(f(x)[1])(y);"},
		{"let x = 5;", "let x = 5;"},
		{"let x = 5; let y = x", "let x = 5;\nlet y = x;"},
		{"return;", "return;"},
		{"return", "return;"},
		{"return 1 + 2;", "return (1 + 2);"},
		{`"hello" + "world"`, `("hello" + "world");`},
		{"if (x < y) { x }", "if ((x < y)) {x;};"},
		{"if (x) { x } else { y; return z; }", "if (x) {x;} else {y; return z;};"},
		{"if (x) {} else {}", "if (x) {} else {};"},
		{"fn() {}", "fn() {};"},
		{"fn(x, y) { x + y; }", "fn(x, y) {(x + y);};"},
		{"fn(x y,) { x }", "fn(x, y) {x;};"},
		{"fn(x){ fn(y){ x + y } }", "fn(x) {fn(y) {(x + y);};};"},
		{"[]", "[];"},
		{"[1, 2,]", "[1, 2];"},
		{"[1 2]", "[1, 2];"},
		{"{}", "{};"},
		{`{"one": 1, "two": 2,}`, `{"one": 1, "two": 2};`},
		{`{1: 2 + 3, true: x}`, `{1: (2 + 3), true: x};`},
		{"x; y; z", "x;\ny;\nz;"},
	}
	for i, test := range tests {
		var tokens []lexer.Token
		if !checkLexerErrors(t, test.input, &tokens) {
			t.Errorf("tests[%d] (%q) failed", i, test.input)
			continue
		}
		p := parser.New("", tokens)
		program := p.Parse()
		if len(p.Errors) != 0 {
			t.Errorf("tests[%d] (%q)", i, test.input)
			t.Error("parser errors:")
			for _, err := range p.Errors {
				t.Error(err.String())
			}
			continue
		}
		if program.String() != test.expected {
			t.Errorf("tests[%d] (%q)", i, test.input)
			t.Errorf("expected=%q, got=%q", test.expected, program.String())
			continue
		}
	}
}

func TestParserRoundTrip(t *testing.T) {
	inputs := []string{
		"let adder = fn(x) { fn(y) { x + y } }; adder(2)(3)",
		"if (1 < 2 == true) { [1, 2, 3][2] } else { {1: 2}[9] }",
		`let h = {"a": [1, -2], "b": fn() { return; }}; h["a"][1]`,
		"!(a == b) != !c",
		"fn(a, b) { let c = a * (b - 1) / 2; return c; }(1, 2)",
		"len(\"\") + len([])",
	}
	for i, input := range inputs {
		first := mustParse(t, input)
		if first == nil {
			t.Errorf("tests[%d] (%q) failed", i, input)
			continue
		}
		second := mustParse(t, first.String())
		if second == nil {
			t.Errorf("tests[%d] (%q): rendering %q does not parse", i, input, first.String())
			continue
		}
		if first.String() != second.String() {
			t.Errorf("tests[%d] (%q)", i, input)
			t.Errorf("first=%q, second=%q", first.String(), second.String())
		}
	}
}

func TestParserNodes(t *testing.T) {
	program := mustParse(t, "let f = fn(x, y) { x[y] }; f(1, 2)")
	if program == nil {
		return
	}
	let := program.Stmts[0].(*parser.Let)
	if let.Name.Name() != "f" {
		t.Errorf("expected let name=f, got=%s", let.Name.Name())
	}
	fn := let.Value.(*parser.Function)
	if len(fn.Params) != 2 || fn.Params[0].Name() != "x" || fn.Params[1].Name() != "y" {
		t.Errorf("unexpected params %v", fn.Params)
	}
	idx := fn.Body.Stmts[0].(*parser.ExprStmt).Expr.(*parser.Index)
	if idx.Left.(*parser.Identifier).Name() != "x" {
		t.Errorf("expected index container x, got=%s", idx.Left)
	}
	call := program.Stmts[1].(*parser.ExprStmt).Expr.(*parser.Call)
	if len(call.Args) != 2 || call.Args[1].(*parser.IntegerLiteral).Value != 2 {
		t.Errorf("unexpected call args %v", call.Args)
	}
}

func TestParserInvalid(t *testing.T) {
	tests := []struct {
		input  string
		line   int
		column int
	}{
		{"let = 5;", 1, 5},
		{"let x 5;", 1, 7},
		{"let x = ;", 1, 9},
		{"(1 + 2", 1, 7},
		{"[1, 2", 1, 6},
		{"{1: 2", 1, 6},
		{"{1 2}", 1, 4},
		{"fn(x { x }", 1, 6},
		{"fn(1) { x }", 1, 4},
		{"fn(x) { x", 1, 10},
		{"if x { 1 }", 1, 4},
		{"if (x) { 1 } else 2", 1, 19},
		{"a[1", 1, 4},
		{"1 2", 1, 3},
		{"let x = 1 let y = 2", 1, 11},
		{"*5", 1, 1},
		{")", 1, 1},
	}
	for i, test := range tests {
		var tokens []lexer.Token
		if !checkLexerErrors(t, test.input, &tokens) {
			t.Errorf("tests[%d] (%q) failed", i, test.input)
			continue
		}
		p := parser.New("", tokens)
		program := p.Parse()
		if program != nil {
			t.Errorf("tests[%d] (%q): expected nil program, got=%q", i, test.input, program.String())
		}
		if len(p.Errors) != 1 {
			t.Errorf("tests[%d] (%q)", i, test.input)
			t.Errorf("expected=1 error, got=%d", len(p.Errors))
			continue
		}
		err := p.Errors[0]
		if err.Token.Line != test.line || err.Token.Column != test.column {
			t.Errorf("tests[%d] (%q): expected error at %d:%d, got %s",
				i, test.input, test.line, test.column, err)
		}
	}
}

// utils

func mustParse(t *testing.T, input string) *parser.Program {
	var tokens []lexer.Token
	if !checkLexerErrors(t, input, &tokens) {
		return nil
	}
	p := parser.New("", tokens)
	program := p.Parse()
	for _, err := range p.Errors {
		t.Error(err.String())
	}
	return program
}

func checkLexerErrors(t *testing.T, input string, out *[]lexer.Token) bool {
	l := lexer.New("", input)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		t.Error("lexer errors:")
		for _, err := range l.Errors {
			t.Error(err.String())
		}
		return false
	}
	*out = l.Tokens
	return true
}

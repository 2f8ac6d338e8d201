package lexer_test

import (
	"crimson/lexer"
	"testing"
)

func TestLexer(t *testing.T) {
	lex := lexer.New("", `
let name = "阿福";
let add = fn(x, y) { x + y; };
!-/*5;
5 < 10 > 5;
if (5 < 10) { return true; } else { return false; }
10 == 10; 10 != 9;
let arr = [1, 2, 3]; arr[0];
let h = {"z": "hello", 1: 2};`)
	lex.ScanTokens()
	if len(lex.Errors) != 0 {
		t.Errorf("failed: expected no errors, got:")
		for _, x := range lex.Errors {
			t.Log(x.String())
		}
	}
	last := lex.Tokens[len(lex.Tokens)-1]
	if last.Type != lexer.EOF {
		t.Errorf("expected last token to be EOF, got=%s", last.Type)
	}
}

func TestLexerTypes(t *testing.T) {
	tests := []struct {
		input    string
		expected []lexer.TokenType
	}{
		{"let x = 5;", []lexer.TokenType{lexer.LET, lexer.IDENTIFIER, lexer.EQUAL, lexer.INTEGER, lexer.SEMICOLON}},
		{"a == b != c", []lexer.TokenType{lexer.IDENTIFIER, lexer.EQUAL_EQUAL, lexer.IDENTIFIER, lexer.BANG_EQUAL, lexer.IDENTIFIER}},
		{"!=!", []lexer.TokenType{lexer.BANG_EQUAL, lexer.BANG}},
		{"===", []lexer.TokenType{lexer.EQUAL_EQUAL, lexer.EQUAL}},
		{"fn(){}[]:,", []lexer.TokenType{
			lexer.FN, lexer.LEFT_PAREN, lexer.RIGHT_PAREN, lexer.LEFT_BRACE, lexer.RIGHT_BRACE,
			lexer.LEFT_BRACKET, lexer.RIGHT_BRACKET, lexer.COLON, lexer.COMMA,
		}},
		{"if else return true false", []lexer.TokenType{lexer.IF, lexer.ELSE, lexer.RETURN, lexer.TRUE, lexer.FALSE}},
		{"letter fns x_1", []lexer.TokenType{lexer.IDENTIFIER, lexer.IDENTIFIER, lexer.IDENTIFIER}},
		{"12abc", []lexer.TokenType{lexer.INTEGER, lexer.IDENTIFIER}},
		{"  \t\n ", []lexer.TokenType{}},
	}
	for i, test := range tests {
		lex := lexer.New("", test.input)
		lex.ScanTokens()
		if len(lex.Errors) != 0 {
			t.Errorf("tests[%d] (%q) failed: unexpected errors %v", i, test.input, lex.Errors)
			continue
		}
		got := lex.Tokens[:len(lex.Tokens)-1]
		if len(got) != len(test.expected) {
			t.Errorf("tests[%d] (%q) failed", i, test.input)
			t.Errorf("expected %d tokens, got=%d (%v)", len(test.expected), len(got), got)
			continue
		}
		for j, tok := range got {
			if tok.Type != test.expected[j] {
				t.Errorf("tests[%d] (%q): token %d expected=%s, got=%s", i, test.input, j, test.expected[j], tok.Type)
			}
		}
	}
}

func TestLexerLiterals(t *testing.T) {
	lex := lexer.New("", `foo_bar 1234 "hello world" "" "open`)
	lex.ScanTokens()
	if len(lex.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", lex.Errors)
	}
	expected := []interface{}{"foo_bar", int64(1234), "hello world", "", "open"}
	for i, lit := range expected {
		if lex.Tokens[i].Literal != lit {
			t.Errorf("tokens[%d]: expected literal=%#v, got=%#v", i, lit, lex.Tokens[i].Literal)
		}
	}
	if lex.Tokens[4].Type != lexer.STRING {
		t.Errorf("expected unterminated string to be a STRING, got=%s", lex.Tokens[4].Type)
	}
}

func TestLexerPositions(t *testing.T) {
	lex := lexer.New("", "let x\n  = 10;")
	lex.ScanTokens()
	expected := []struct{ line, col int }{{1, 1}, {1, 5}, {2, 3}, {2, 5}, {2, 7}}
	for i, pos := range expected {
		tok := lex.Tokens[i]
		if tok.Line != pos.line || tok.Column != pos.col {
			t.Errorf("tokens[%d] %s: expected %d:%d, got=%d:%d", i, tok, pos.line, pos.col, tok.Line, tok.Column)
		}
	}
}

func TestLexerBad(t *testing.T) {
	badInputs := []string{
		"def | ghi",
		"abc & def",
		"let x = 5 % 2;",
		"\xc3\x28",
		"abc def \xf0\x28\x8c\xbc uu",
		"99999999999999999999",
		"_abc",
		"x.y",
	}
	for i, input := range badInputs {
		lex := lexer.New("<test>", input)
		lex.ScanTokens()
		if len(lex.Errors) == 0 {
			t.Errorf("tests[%d] (%q) failed", i, input)
			t.Errorf("expected errors, got none")
		}
		for _, x := range lex.Errors {
			t.Logf("%s\n", x.String())
		}
	}
}

func TestLexerIllegalPosition(t *testing.T) {
	lex := lexer.New("<test>", "1 +\n  $")
	lex.ScanTokens()
	if len(lex.Errors) != 1 {
		t.Fatalf("expected 1 error, got=%d", len(lex.Errors))
	}
	if got := lex.Errors[0].Error(); got != `<test>:2:3: illegal character U+0024 '$'` {
		t.Errorf("unexpected error message %q", got)
	}
}

package lexer_test

import (
	"testing"

	"github.com/loxwalk/loxwalk/internal/lexer"
	"github.com/loxwalk/loxwalk/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `var x = 1 + 2.5;
print "hi there";
if (x >= 1) { x = x - 1; } else { x = x; }
// a comment
class Foo < Bar {}
`

	want := []token.Kind{
		token.Var, token.Identifier, token.Equal, token.Number, token.Plus, token.Number, token.Semicolon,
		token.Print, token.String, token.Semicolon,
		token.If, token.LeftParen, token.Identifier, token.GreaterEqual, token.Number, token.RightParen,
		token.LeftBrace, token.Identifier, token.Equal, token.Identifier, token.Minus, token.Number, token.Semicolon, token.RightBrace,
		token.Else, token.LeftBrace, token.Identifier, token.Equal, token.Identifier, token.Semicolon, token.RightBrace,
		token.Class, token.Identifier, token.Less, token.Identifier, token.LeftBrace, token.RightBrace,
		token.EOF,
	}

	toks := lexer.ScanAll(input)
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got %s, want %s (%v)", i, toks[i].Kind, k, toks[i])
		}
	}
}

func TestStringLiteralKeepsQuotesInLexeme(t *testing.T) {
	toks := lexer.ScanAll(`"hello"`)
	if toks[0].Lexeme != `"hello"` {
		t.Fatalf("got lexeme %q, want %q", toks[0].Lexeme, `"hello"`)
	}
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	toks := lexer.ScanAll(`"oops`)
	if toks[0].Kind != token.ILLEGAL {
		t.Fatalf("got kind %s, want ILLEGAL", toks[0].Kind)
	}
}

func TestLineTracking(t *testing.T) {
	toks := lexer.ScanAll("var a = 1;\nvar b = 2;\n")
	var line2 []token.Token
	for _, tk := range toks {
		if tk.Line == 2 {
			line2 = append(line2, tk)
		}
	}
	if len(line2) == 0 {
		t.Fatalf("expected tokens on line 2")
	}
}

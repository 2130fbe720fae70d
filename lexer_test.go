// lexer_test.go
package atom

import (
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	end := len(tokens)
	if end > 0 && tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Punctuation(t *testing.T) {
	wantTypes(t, "( ) ' ` , ,@ . #(", []TokenType{
		LIST_START, LIST_END, QUOTE, BACKTICK, COMMA, COMMA_AT, DOT, VECTOR_START,
	})
}

func Test_Lexer_SimpleExpression(t *testing.T) {
	got := wantTypes(t, "(+ 1 22)", []TokenType{
		LIST_START, IDENTIFIER, NUMBER, NUMBER, LIST_END,
	})
	if got[1].Text != "+" {
		t.Fatalf("peculiar identifier: got %q", got[1].Text)
	}
	if got[2].Number != 1 || got[3].Number != 22 {
		t.Fatalf("number literals: got %v %v", got[2].Number, got[3].Number)
	}
}

func Test_Lexer_Booleans(t *testing.T) {
	got := wantTypes(t, "#t #f", []TokenType{BOOLEAN, BOOLEAN})
	if !got[0].Boolean || got[1].Boolean {
		t.Fatalf("boolean payloads: %v %v", got[0].Boolean, got[1].Boolean)
	}
}

func Test_Lexer_Characters(t *testing.T) {
	got := wantTypes(t, `#\a #\space #\newline #\s`, []TokenType{
		CHARACTER, CHARACTER, CHARACTER, CHARACTER,
	})
	want := []byte{'a', ' ', '\n', 's'}
	for i, c := range want {
		if got[i].Char != c {
			t.Fatalf("character %d: want %q got %q", i, c, got[i].Char)
		}
	}
}

func Test_Lexer_Strings(t *testing.T) {
	got := wantTypes(t, `"hello" "a\"b" "a\\b"`, []TokenType{STRING, STRING, STRING})
	want := []string{"hello", `a"b`, `a\b`}
	for i, s := range want {
		if got[i].Text != s {
			t.Fatalf("string %d: want %q got %q", i, s, got[i].Text)
		}
	}
}

func Test_Lexer_Identifiers(t *testing.T) {
	got := wantTypes(t, "list->vector set-car! a.b ok? <= + -", []TokenType{
		IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER, IDENTIFIER,
	})
	want := []string{"list->vector", "set-car!", "a.b", "ok?", "<=", "+", "-"}
	for i, name := range want {
		if got[i].Text != name {
			t.Fatalf("identifier %d: want %q got %q", i, name, got[i].Text)
		}
	}
}

func Test_Lexer_CommentsAndWhitespace(t *testing.T) {
	src := "1 ; the rest is ignored (even this\n\t 2"
	got := wantTypes(t, src, []TokenType{NUMBER, NUMBER})
	if got[1].Line != 2 {
		t.Fatalf("token after comment should be on line 2, got %d", got[1].Line)
	}
}

func Test_Lexer_Positions(t *testing.T) {
	got := toks(t, "(a\n  b)")
	// b starts at line 2, column 2 (0-based)
	b := got[2]
	if b.Line != 2 || b.Col != 2 {
		t.Fatalf("position of b: line %d col %d", b.Line, b.Col)
	}
}

func Test_Lexer_Errors(t *testing.T) {
	cases := []struct {
		src  string
		line int
	}{
		{`"unterminated`, 1},
		{`"bad \n escape"`, 1},
		{"#q", 1},
		{`#\spade`, 1},
		{"\n@oops", 2},
	}
	for _, tc := range cases {
		_, err := NewLexer(tc.src).Scan()
		if err == nil {
			t.Fatalf("%q: expected error", tc.src)
		}
		syntax, ok := err.(*SyntaxError)
		if !ok {
			t.Fatalf("%q: expected *SyntaxError, got %T", tc.src, err)
		}
		if syntax.Line != tc.line {
			t.Fatalf("%q: want line %d, got %d", tc.src, tc.line, syntax.Line)
		}
	}
}

// builtin_string_test.go
package atom

import "testing"

func Test_Builtin_Strings(t *testing.T) {
	cases := []struct{ src, want string }{
		{`(string? "abc")`, "#t"},
		{"(string? 'abc)", "#f"},
		{"(make-string 3)", `"` + "\x00\x00\x00" + `"`},
		{`(make-string 3 #\z)`, `"zzz"`},
		{"(make-string 0)", `""`},
		{`(string-length "hello")`, "5"},
		{`(string-length "")`, "0"},
		{`(string-ref "abc" 0)`, `#\a`},
		{`(string-ref "abc" 2)`, `#\c`},
	}
	for _, tc := range cases {
		wantResult(t, tc.src, tc.want)
	}
}

func Test_Builtin_StringMutation(t *testing.T) {
	in := newTest()
	run(t, in, `(define s (make-string 3 #\a))`)
	run(t, in, `(string-set! s 1 #\b)`)
	if got := run(t, in, "s"); got != `"aba"` {
		t.Fatalf("string-set!: %s", got)
	}
}

// symbol->string returns a fresh buffer; mutating it must not corrupt the
// symbol.
func Test_Builtin_SymbolStringConversions(t *testing.T) {
	in := newTest()
	if got := run(t, in, "(symbol->string 'abc)"); got != `"abc"` {
		t.Fatalf("symbol->string: %s", got)
	}
	if got := run(t, in, `(string->symbol "hi")`); got != "hi" {
		t.Fatalf("string->symbol: %s", got)
	}
	run(t, in, "(define s (symbol->string 'abc))")
	run(t, in, `(string-set! s 0 #\z)`)
	if got := run(t, in, "'abc"); got != "abc" {
		t.Fatalf("symbol corrupted by string mutation: %s", got)
	}
}

func Test_Builtin_StringBounds(t *testing.T) {
	wantErrorKind(t, `(string-ref "abc" 3)`, ErrDomain)
	wantErrorKind(t, `(string-ref "abc" (- 1))`, ErrDomain)
	wantErrorKind(t, `(string-set! "abc" 5 #\x)`, ErrDomain)
	wantErrorKind(t, "(make-string (- 2))", ErrDomain)
	wantErrorKind(t, `(string-ref "abc" (/ 1 2))`, ErrDomain)
}

func Test_Builtin_Characters(t *testing.T) {
	cases := []struct{ src, want string }{
		{`(char? #\a)`, "#t"},
		{`(char? "a")`, "#f"},
		{`(char->integer #\a)`, "97"},
		{"(integer->char 97)", `#\a`},
		{"(integer->char 32)", `#\space`},
		{`(char->integer #\newline)`, "10"},
	}
	for _, tc := range cases {
		wantResult(t, tc.src, tc.want)
	}
	wantErrorKind(t, "(integer->char 300)", ErrDomain)
}

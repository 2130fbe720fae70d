// builtin_equal_test.go
package atom

import "testing"

func Test_Builtin_Equality(t *testing.T) {
	cases := []struct{ src, want string }{
		// eq? — identity plus scalar value comparison
		{"(eq? 'a 'a)", "#t"},
		{"(eq? 'a 'b)", "#f"},
		{"(eq? 1 1)", "#t"},
		{"(eq? '() '())", "#t"},
		{"(eq? '(1) '(1))", "#f"},
		{`(eq? "a" "a")`, "#f"},

		// eqv? — additionally compares string contents
		{`(eqv? "ab" "ab")`, "#t"},
		{"(eqv? '(1) '(1))", "#f"},
		{`(eqv? #\a #\a)`, "#t"},

		// equal? — structural
		{"(equal? '(1 2 (3)) '(1 2 (3)))", "#t"},
		{"(equal? '(1 2) '(1 2 3))", "#f"},
		{"(equal? #(1 2) #(1 2))", "#t"},
		{"(equal? #(1 2) #(2 1))", "#f"},
		{"(equal? '(1 . 2) '(1 . 2))", "#t"},
		{`(equal? "x" 'x)`, "#f"},
	}
	for _, tc := range cases {
		wantResult(t, tc.src, tc.want)
	}
}

func Test_Builtin_EqualitySameObject(t *testing.T) {
	in := newTest()
	run(t, in, "(define xs '(1 2))")
	if got := run(t, in, "(eq? xs xs)"); got != "#t" {
		t.Fatalf("identity on same pair: %s", got)
	}
	run(t, in, "(define f (lambda (x) x))")
	if got := run(t, in, "(eq? f f)"); got != "#t" {
		t.Fatalf("identity on same procedure: %s", got)
	}
	if got := run(t, in, "(equal? f (lambda (x) x))"); got != "#f" {
		t.Fatalf("distinct procedures compare equal")
	}
}

func Test_Builtin_Not(t *testing.T) {
	cases := []struct{ src, want string }{
		{"(not #f)", "#t"},
		{"(not #t)", "#f"},
		{"(not 0)", "#f"},
		{"(not '())", "#f"},
		{"(boolean? #f)", "#t"},
		{"(boolean? 0)", "#f"},
	}
	for _, tc := range cases {
		wantResult(t, tc.src, tc.want)
	}
}

// builtin_list_test.go
package atom

import (
	"fmt"
	"testing"
)

func Test_Builtin_PairsAndLists(t *testing.T) {
	cases := []struct{ src, want string }{
		{"(cons 1 2)", "(1 . 2)"},
		{"(car '(1 2))", "1"},
		{"(cdr '(1 2))", "(2)"},
		{"(pair? '(1))", "#t"},
		{"(pair? '())", "#f"},
		{"(null? '())", "#t"},
		{"(null? '(1))", "#f"},
		{"(list? '())", "#t"},
		{"(list? '(1 2 3))", "#t"},
		{"(list? '(1 . 2))", "#f"},
		{"(list? 5)", "#f"},
		{"(list)", "()"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(length '())", "0"},
		{"(length '(a b c))", "3"},
		{"(append)", "()"},
		{"(append '(1 2) '(3))", "(1 2 3)"},
		{"(append '() '(1) '() '(2 3))", "(1 2 3)"},
	}
	for _, tc := range cases {
		wantResult(t, tc.src, tc.want)
	}
}

func Test_Builtin_Mutators(t *testing.T) {
	in := newTest()
	run(t, in, "(define p (cons 1 2))")
	run(t, in, "(set-car! p 9)")
	if got := run(t, in, "p"); got != "(9 . 2)" {
		t.Fatalf("set-car!: %s", got)
	}
	run(t, in, "(set-cdr! p (list 3 4))")
	if got := run(t, in, "p"); got != "(9 3 4)" {
		t.Fatalf("set-cdr!: %s", got)
	}
}

// append must copy its arguments rather than splice them in place.
func Test_Builtin_AppendCopies(t *testing.T) {
	in := newTest()
	run(t, in, "(define xs (list 1 2))")
	run(t, in, "(define ys (append xs (list 3)))")
	run(t, in, "(set-car! xs 99)")
	if got := run(t, in, "ys"); got != "(1 2 3)" {
		t.Fatalf("append shared structure with its argument: %s", got)
	}
}

func Test_Builtin_AppendLengthProperty(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7} {
		for _, m := range []int{0, 2, 5} {
			src := fmt.Sprintf(
				"(length (append (make-list %d) (make-list %d)))", n, m)
			in := newTest()
			run(t, in, `(define (make-list n)
  (if (= n 0) '() (cons n (make-list (- n 1)))))`)
			if got := run(t, in, src); got != fmt.Sprintf("%d", n+m) {
				t.Fatalf("append length %d+%d: got %s", n, m, got)
			}
		}
	}
}

func Test_Builtin_ListErrors(t *testing.T) {
	wantErrorKind(t, "(car '())", ErrType)
	wantErrorKind(t, "(cdr 5)", ErrType)
	wantErrorKind(t, "(length '(1 . 2))", ErrType)
	wantErrorKind(t, "(cons 1)", ErrArity)
}

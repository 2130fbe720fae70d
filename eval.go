// eval.go — the tree-walking evaluator.
//
// Dispatch: scalars self-evaluate, symbols look up through the environment
// chain, and a pair is an application. A symbol head naming a special form
// is recognized before any lookup and the form receives its operands as raw
// syntax; any other head (a symbol or an expression such as a lambda) is
// evaluated and must yield a procedure, which receives its arguments
// evaluated left-to-right in the caller's environment.
//
// Tail calls: the last expression of a closure body replaces the current
// call by rewriting (env, expr) and looping, giving O(1) stack for
// tail-recursive closures. Tail positions inside if/cond are not rewritten.
//
// Errors unwind via a typed panic (*Error) to the single recovery point in
// the top-level driver (interp.go); the message has already been printed to
// the interpreter's stderr when the panic starts.
package atom

import "fmt"

// ErrorKind classifies an evaluation failure.
type ErrorKind int

const (
	ErrSyntax ErrorKind = iota
	ErrUnbound
	ErrType
	ErrArity
	ErrDomain
	ErrUser
)

// Error is the evaluator's non-local escape payload. It is raised with
// panic and recovered only by the top-level driver.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// raise prints the formatted message to the interpreter's stderr and
// unwinds to the current escape point, discarding every stack frame in
// between.
func (in *Interp) raise(kind ErrorKind, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(in.Stderr, "Error: %s\n", msg)
	panic(&Error{Kind: kind, Msg: msg})
}

func (in *Interp) typeCheck(expected CellType, cell *Cell) {
	if cell.Type != expected {
		in.raise(ErrType, "%s expected, got %s", expected, cell.Type)
	}
}

// lookup resolves a symbol or signals an unbound-variable error.
func (in *Interp) lookup(env *Env, name string) *Cell {
	value, ok := env.get(name)
	if !ok {
		in.raise(ErrUnbound, "reference to undefined identifier: %s", name)
	}
	return value
}

// eval evaluates expr in env. The loop at the top is the tail-call
// trampoline: a closure body's final expression re-enters here with the
// child frame installed.
func (in *Interp) eval(env *Env, expr *Cell) *Cell {
	for {
		switch expr.Type {
		case TypeNil, TypeBoolean, TypeNumber, TypeString, TypeCharacter, TypeVector:
			return expr

		case TypeSymbol:
			return in.lookup(env, expr.Symbol)

		case TypePair:
			head := expr.Car
			if head == cellNil {
				in.raise(ErrSyntax, "missing procedure in expression")
			}

			var proc *Cell
			if head.Type == TypeSymbol {
				if form, ok := specialForms[head.Symbol]; ok {
					return form(in, env, expr.Cdr)
				}
				proc = in.lookup(env, head.Symbol)
			} else {
				proc = in.eval(env, head)
			}
			if proc.Type != TypeProcedure {
				in.raise(ErrType, "%s is not a procedure", WriteString(head))
			}

			args := in.evalArgs(env, expr.Cdr)

			if proc.Proc.Native != nil {
				return proc.Proc.Native(in, env, args)
			}

			// Closure: bind formals in a child of the captured frame,
			// then loop on the final body expression.
			child := in.bindFormals(&proc.Proc, args)
			body := proc.Proc.Body
			for cdr(body) != cellNil {
				in.eval(child, car(body))
				body = cdr(body)
			}
			env = child
			expr = car(body)

		default:
			in.raise(ErrType, "cannot evaluate a %s", expr.Type)
			return nil
		}
	}
}

// evalArgs evaluates an argument list left-to-right in the caller's
// environment.
func (in *Interp) evalArgs(env *Env, list *Cell) []*Cell {
	var args []*Cell
	for ; list.Type == TypePair; list = list.Cdr {
		args = append(args, in.eval(env, list.Car))
	}
	if list != cellNil {
		in.raise(ErrSyntax, "argument list is not a proper list")
	}
	return args
}

// bindFormals creates the call frame for a closure application. Too few
// arguments is an arity error; extra arguments are ignored.
func (in *Interp) bindFormals(proc *Procedure, args []*Cell) *Env {
	child := newEnv(proc.Env)
	i := 0
	formals := proc.Formals
	for ; formals.Type == TypePair; formals = formals.Cdr {
		in.typeCheck(TypeSymbol, formals.Car)
		if i >= len(args) {
			in.raise(ErrArity, "too few arguments (%d expected)", listLength(proc.Formals))
		}
		child.define(formals.Car.Symbol, args[i])
		i++
	}
	if formals != cellNil {
		in.raise(ErrSyntax, "formals must be a proper list of symbols")
	}
	return child
}

// apply invokes an already-evaluated procedure on already-evaluated
// arguments. Used by the apply built-in; the closure body is evaluated
// without the tail rewrite.
func (in *Interp) apply(env *Env, proc *Cell, args []*Cell) *Cell {
	in.typeCheck(TypeProcedure, proc)
	if proc.Proc.Native != nil {
		return proc.Proc.Native(in, env, args)
	}
	child := in.bindFormals(&proc.Proc, args)
	last := cellFalse
	for body := proc.Proc.Body; body != cellNil; body = cdr(body) {
		last = in.eval(child, car(body))
	}
	return last
}

// ---- built-in argument helpers ----------------------------------------
//
// Built-ins request positional arguments by 1-based index; a missing
// required argument is an arity error and a wrong variant a type error.

func (in *Interp) arg(args []*Cell, n int) *Cell {
	if n > len(args) {
		in.raise(ErrArity, "too few arguments (%d expected)", n)
	}
	return args[n-1]
}

func (in *Interp) argType(args []*Cell, n int, t CellType) *Cell {
	cell := in.arg(args, n)
	in.typeCheck(t, cell)
	return cell
}

func (in *Interp) optArg(args []*Cell, n int) *Cell {
	if n > len(args) {
		return nil
	}
	return args[n-1]
}

func (in *Interp) optArgType(args []*Cell, n int, t CellType) *Cell {
	cell := in.optArg(args, n)
	if cell != nil {
		in.typeCheck(t, cell)
	}
	return cell
}

func (in *Interp) argInt(args []*Cell, n int) int {
	cell := in.argType(args, n, TypeNumber)
	if !isInteger(cell.Number) {
		in.raise(ErrDomain, "integer expected, got %s", WriteString(cell))
	}
	return int(cell.Number)
}

// ---- special forms -----------------------------------------------------

type specialForm func(in *Interp, env *Env, args *Cell) *Cell

var specialForms map[string]specialForm

func init() {
	specialForms = map[string]specialForm{
		"quote":      formQuote,
		"if":         formIf,
		"set!":       formSet,
		"define":     formDefine,
		"lambda":     formLambda,
		"begin":      formBegin,
		"let":        formLet,
		"let*":       formLetStar,
		"cond":       formCond,
		"case":       formCase,
		"and":        formAnd,
		"or":         formOr,
		"quasiquote": formQuasiquote,
	}
}

// formArg returns the nth (1-based) element of a form's operand list,
// unevaluated.
func (in *Interp) formArg(args *Cell, n int) *Cell {
	for i := 1; i < n; i++ {
		if args.Type != TypePair {
			in.raise(ErrArity, "too few arguments (%d expected)", n)
		}
		args = args.Cdr
	}
	if args.Type != TypePair {
		in.raise(ErrArity, "too few arguments (%d expected)", n)
	}
	return args.Car
}

func formQuote(in *Interp, env *Env, args *Cell) *Cell {
	return in.formArg(args, 1)
}

func formIf(in *Interp, env *Env, args *Cell) *Cell {
	test := in.eval(env, in.formArg(args, 1))
	if !isFalse(test) {
		return in.eval(env, in.formArg(args, 2))
	}
	// with no alternate the false test value is the result
	if rest := args.Cdr; rest.Type == TypePair && rest.Cdr.Type == TypePair {
		return in.eval(env, rest.Cdr.Car)
	}
	return test
}

func formSet(in *Interp, env *Env, args *Cell) *Cell {
	variable := in.formArg(args, 1)
	in.typeCheck(TypeSymbol, variable)
	value := in.eval(env, in.formArg(args, 2))
	if !env.set(variable.Symbol, value) {
		in.raise(ErrUnbound, "no binding for %s in any scope", variable.Symbol)
	}
	return value
}

func formDefine(in *Interp, env *Env, args *Cell) *Cell {
	first := in.formArg(args, 1)

	var variable, value *Cell
	switch first.Type {
	case TypeSymbol:
		variable = first
		value = in.eval(env, in.formArg(args, 2))

	case TypePair:
		// (define (name . formals) body...) is sugar for a lambda.
		variable = car(first)
		in.typeCheck(TypeSymbol, variable)
		value = in.newClosure(cdr(first), cdr(args), env)

	default:
		in.raise(ErrType, "symbol or pair expected as parameter 1 to define")
	}

	env.define(variable.Symbol, value)
	return cellFalse
}

func formLambda(in *Interp, env *Env, args *Cell) *Cell {
	return in.newClosure(in.formArg(args, 1), cdr(args), env)
}

func formBegin(in *Interp, env *Env, args *Cell) *Cell {
	last := cellFalse
	for ; args.Type == TypePair; args = args.Cdr {
		last = in.eval(env, args.Car)
	}
	return last
}

// letHelper implements let and let*; the only difference is the
// environment each init expression is evaluated in.
func letHelper(in *Interp, env *Env, args *Cell, star bool) *Cell {
	bindings := in.formArg(args, 1)
	body := cdr(args)
	if body == cellNil {
		in.raise(ErrSyntax, "no expression in body")
	}

	if bindings != cellNil {
		in.typeCheck(TypePair, bindings)
	}

	child := newEnv(env)
	target := env
	if star {
		target = child
	}

	for b := bindings; b.Type == TypePair; b = b.Cdr {
		pair := b.Car
		in.typeCheck(TypePair, pair)
		symbol := pair.Car
		in.typeCheck(TypeSymbol, symbol)
		child.define(symbol.Symbol, in.eval(target, in.formArg(pair, 2)))
	}

	last := cellFalse
	for ; body.Type == TypePair; body = body.Cdr {
		last = in.eval(child, body.Car)
	}
	return last
}

func formLet(in *Interp, env *Env, args *Cell) *Cell {
	return letHelper(in, env, args, false)
}

func formLetStar(in *Interp, env *Env, args *Cell) *Cell {
	return letHelper(in, env, args, true)
}

func isElse(cell *Cell) bool {
	return cell.Type == TypeSymbol && cell.Symbol == "else"
}

func formCond(in *Interp, env *Env, args *Cell) *Cell {
	for clause := args; clause.Type == TypePair; clause = clause.Cdr {
		in.typeCheck(TypePair, clause.Car)
		test := clause.Car.Car

		var value *Cell
		if isElse(test) {
			value = cellTrue
		} else {
			value = in.eval(env, test)
			if isFalse(value) {
				continue
			}
		}

		// A clause with only a test returns the test value.
		for expr := clause.Car.Cdr; expr.Type == TypePair; expr = expr.Cdr {
			value = in.eval(env, expr.Car)
		}
		return value
	}
	return cellFalse
}

func formCase(in *Interp, env *Env, args *Cell) *Cell {
	key := in.eval(env, in.formArg(args, 1))

	for clause := cdr(args); clause.Type == TypePair; clause = clause.Cdr {
		in.typeCheck(TypePair, clause.Car)
		datums := clause.Car.Car

		matched := false
		if isElse(datums) {
			matched = true
		} else {
			for d := datums; d.Type == TypePair; d = d.Cdr {
				if eqCells(key, d.Car, true, false) {
					matched = true
					break
				}
			}
		}
		if !matched {
			continue
		}

		last := cellFalse
		for expr := clause.Car.Cdr; expr.Type == TypePair; expr = expr.Cdr {
			last = in.eval(env, expr.Car)
		}
		return last
	}
	return cellFalse
}

func formAnd(in *Interp, env *Env, args *Cell) *Cell {
	last := cellTrue
	for ; args.Type == TypePair; args = args.Cdr {
		last = in.eval(env, args.Car)
		if isFalse(last) {
			return last
		}
	}
	return last
}

func formOr(in *Interp, env *Env, args *Cell) *Cell {
	last := cellFalse
	for ; args.Type == TypePair; args = args.Cdr {
		last = in.eval(env, args.Car)
		if !isFalse(last) {
			return last
		}
	}
	return last
}

func formQuasiquote(in *Interp, env *Env, args *Cell) *Cell {
	return in.quasiquote(env, in.formArg(args, 1))
}

func isUnquoteForm(cell *Cell, name string) bool {
	return cell.Type == TypePair && cell.Car.Type == TypeSymbol && cell.Car.Symbol == name
}

// quasiquote walks a template. (unquote x) is replaced by the value of x;
// (unquote-splicing x) must evaluate to a list, whose elements are spliced
// into the surrounding list. Vector templates are not expanded.
func (in *Interp) quasiquote(env *Env, template *Cell) *Cell {
	if template.Type != TypePair {
		return template
	}
	if isUnquoteForm(template, "unquote") {
		return in.eval(env, in.formArg(cdr(template), 1))
	}

	head := car(template)
	rest := cdr(template)

	if isUnquoteForm(head, "unquote-splicing") {
		spliced := in.eval(env, in.formArg(cdr(head), 1))
		if spliced != cellNil && spliced.Type != TypePair {
			in.raise(ErrType, "unquote-splicing expects a list, got %s", spliced.Type)
		}
		return in.appendLists(spliced, in.quasiquoteTail(env, rest))
	}

	return in.cons(in.quasiquote(env, head), in.quasiquoteTail(env, rest))
}

// quasiquoteTail continues template expansion along a list spine, allowing
// dotted tails through unchanged.
func (in *Interp) quasiquoteTail(env *Env, rest *Cell) *Cell {
	if rest.Type == TypePair || rest == cellNil {
		return in.quasiquote(env, rest)
	}
	return rest
}

// appendLists returns a fresh copy of list a with tail b attached.
func (in *Interp) appendLists(a, b *Cell) *Cell {
	if a == cellNil {
		return b
	}
	head := in.cons(car(a), cellNil)
	last := head
	for rest := cdr(a); rest != cellNil; rest = cdr(rest) {
		in.typeCheck(TypePair, rest)
		next := in.cons(car(rest), cellNil)
		setCdr(last, next)
		last = next
	}
	setCdr(last, b)
	return head
}

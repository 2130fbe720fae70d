// builtin_number.go — arithmetic, comparisons and numeric predicates.
//
// Numbers are a single inexact float64 type; exact? is therefore always
// false and inexact? always true, and complex?/rational? are stubs that
// answer #f while real? aliases number?.
package atom

import "math"

func registerNumberBuiltins(in *Interp) {
	in.registerBuiltin("+", builtinAdd)
	in.registerBuiltin("*", builtinMul)
	in.registerBuiltin("-", builtinSub)
	in.registerBuiltin("/", builtinDiv)
	in.registerBuiltin("modulo", builtinModulo)

	in.registerBuiltin("=", compareBuiltin(func(a, b float64) bool { return a == b }))
	in.registerBuiltin("<", compareBuiltin(func(a, b float64) bool { return a < b }))
	in.registerBuiltin(">", compareBuiltin(func(a, b float64) bool { return a > b }))
	in.registerBuiltin("<=", compareBuiltin(func(a, b float64) bool { return a <= b }))
	in.registerBuiltin(">=", compareBuiltin(func(a, b float64) bool { return a >= b }))

	in.registerBuiltin("zero?", builtinZero)
	in.registerBuiltin("positive?", builtinPositive)
	in.registerBuiltin("negative?", builtinNegative)
	in.registerBuiltin("odd?", builtinOdd)
	in.registerBuiltin("even?", builtinEven)

	in.registerBuiltin("min", builtinMin)
	in.registerBuiltin("max", builtinMax)

	in.registerBuiltin("number?", typePredicate(TypeNumber))
	in.registerBuiltin("real?", typePredicate(TypeNumber))
	in.registerBuiltin("integer?", builtinIntegerQ)
	in.registerBuiltin("complex?", alwaysFalse)
	in.registerBuiltin("rational?", alwaysFalse)
	in.registerBuiltin("exact?", builtinExact)
	in.registerBuiltin("inexact?", builtinInexact)
}

// typePredicate builds a one-argument predicate answering whether the
// argument has the given variant.
func typePredicate(t CellType) NativeFn {
	return func(in *Interp, env *Env, args []*Cell) *Cell {
		return boolean(in.arg(args, 1).Type == t)
	}
}

// alwaysFalse backs predicates like complex? that can never hold.
func alwaysFalse(in *Interp, env *Env, args []*Cell) *Cell {
	return cellFalse
}

func builtinAdd(in *Interp, env *Env, args []*Cell) *Cell {
	result := 0.0
	for i := range args {
		result += in.argType(args, i+1, TypeNumber).Number
	}
	return in.newNumber(result)
}

func builtinMul(in *Interp, env *Env, args []*Cell) *Cell {
	result := 1.0
	for i := range args {
		result *= in.argType(args, i+1, TypeNumber).Number
	}
	return in.newNumber(result)
}

// builtinSub negates a single argument, otherwise folds subtraction
// left-to-right. builtinDiv is symmetric with reciprocal/division.
func builtinSub(in *Interp, env *Env, args []*Cell) *Cell {
	initial := in.argType(args, 1, TypeNumber).Number
	if len(args) == 1 {
		return in.newNumber(-initial)
	}
	for i := 2; i <= len(args); i++ {
		initial -= in.argType(args, i, TypeNumber).Number
	}
	return in.newNumber(initial)
}

func builtinDiv(in *Interp, env *Env, args []*Cell) *Cell {
	initial := in.argType(args, 1, TypeNumber).Number
	if len(args) == 1 {
		return in.newNumber(1 / initial)
	}
	for i := 2; i <= len(args); i++ {
		initial /= in.argType(args, i, TypeNumber).Number
	}
	return in.newNumber(initial)
}

func builtinModulo(in *Interp, env *Env, args []*Cell) *Cell {
	a := in.argType(args, 1, TypeNumber).Number
	b := in.argType(args, 2, TypeNumber).Number
	return in.newNumber(math.Mod(a, b))
}

// compareBuiltin chains a pairwise comparison across two or more
// arguments: (< a b c) holds when a<b and b<c.
func compareBuiltin(compare func(a, b float64) bool) NativeFn {
	return func(in *Interp, env *Env, args []*Cell) *Cell {
		a := in.argType(args, 1, TypeNumber).Number
		if len(args) < 2 {
			in.raise(ErrArity, "too few arguments (2 expected)")
		}
		for i := 2; i <= len(args); i++ {
			b := in.argType(args, i, TypeNumber).Number
			if !compare(a, b) {
				return cellFalse
			}
			a = b
		}
		return cellTrue
	}
}

func builtinZero(in *Interp, env *Env, args []*Cell) *Cell {
	return boolean(in.argType(args, 1, TypeNumber).Number == 0)
}

func builtinPositive(in *Interp, env *Env, args []*Cell) *Cell {
	return boolean(in.argType(args, 1, TypeNumber).Number > 0)
}

func builtinNegative(in *Interp, env *Env, args []*Cell) *Cell {
	return boolean(in.argType(args, 1, TypeNumber).Number < 0)
}

func builtinOdd(in *Interp, env *Env, args []*Cell) *Cell {
	return boolean(in.argInt(args, 1)&1 == 1)
}

func builtinEven(in *Interp, env *Env, args []*Cell) *Cell {
	return boolean(in.argInt(args, 1)&1 == 0)
}

func builtinMin(in *Interp, env *Env, args []*Cell) *Cell {
	result := in.argType(args, 1, TypeNumber).Number
	for i := 2; i <= len(args); i++ {
		result = math.Min(result, in.argType(args, i, TypeNumber).Number)
	}
	return in.newNumber(result)
}

func builtinMax(in *Interp, env *Env, args []*Cell) *Cell {
	result := in.argType(args, 1, TypeNumber).Number
	for i := 2; i <= len(args); i++ {
		result = math.Max(result, in.argType(args, i, TypeNumber).Number)
	}
	return in.newNumber(result)
}

func builtinIntegerQ(in *Interp, env *Env, args []*Cell) *Cell {
	obj := in.arg(args, 1)
	return boolean(obj.Type == TypeNumber && isInteger(obj.Number))
}

func builtinExact(in *Interp, env *Env, args []*Cell) *Cell {
	in.argType(args, 1, TypeNumber)
	return cellFalse
}

func builtinInexact(in *Interp, env *Env, args []*Cell) *Cell {
	in.argType(args, 1, TypeNumber)
	return cellTrue
}

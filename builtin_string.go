// builtin_string.go — strings.
//
// Strings are mutable byte buffers; string-ref and string-set! index with
// 0 <= k < length.
package atom

func registerStringBuiltins(in *Interp) {
	in.registerBuiltin("string?", typePredicate(TypeString))
	in.registerBuiltin("make-string", builtinMakeString)
	in.registerBuiltin("string-length", builtinStringLength)
	in.registerBuiltin("string-ref", builtinStringRef)
	in.registerBuiltin("string-set!", builtinStringSet)
}

func builtinMakeString(in *Interp, env *Env, args []*Cell) *Cell {
	k := in.argInt(args, 1)
	if k < 0 {
		in.raise(ErrDomain, "positive integer length required")
	}

	fill := byte(0)
	if second := in.optArgType(args, 2, TypeCharacter); second != nil {
		fill = second.Character
	}

	data := make([]byte, k)
	for i := range data {
		data[i] = fill
	}
	return in.newString(data)
}

func builtinStringLength(in *Interp, env *Env, args []*Cell) *Cell {
	str := in.argType(args, 1, TypeString)
	return in.newNumber(float64(len(str.String)))
}

func builtinStringRef(in *Interp, env *Env, args []*Cell) *Cell {
	str := in.argType(args, 1, TypeString)
	k := in.argInt(args, 2)
	if k < 0 || k >= len(str.String) {
		in.raise(ErrDomain, "k is not a valid index of the given string")
	}
	return in.newCharacter(str.String[k])
}

func builtinStringSet(in *Interp, env *Env, args []*Cell) *Cell {
	str := in.argType(args, 1, TypeString)
	k := in.argInt(args, 2)
	c := in.argType(args, 3, TypeCharacter)
	if k < 0 || k >= len(str.String) {
		in.raise(ErrDomain, "k is not a valid index of the given string")
	}
	str.String[k] = c.Character
	return str
}

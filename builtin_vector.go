// builtin_vector.go — vectors.
package atom

func registerVectorBuiltins(in *Interp) {
	in.registerBuiltin("vector?", typePredicate(TypeVector))
	in.registerBuiltin("make-vector", builtinMakeVector)
	in.registerBuiltin("vector", builtinVector)
	in.registerBuiltin("vector-length", builtinVectorLength)
	in.registerBuiltin("vector-ref", builtinVectorRef)
	in.registerBuiltin("vector-set!", builtinVectorSet)
	in.registerBuiltin("vector->list", builtinVectorToList)
	in.registerBuiltin("list->vector", builtinListToVector)
	in.registerBuiltin("vector-fill!", builtinVectorFill)
}

// Unspecified initial contents are the empty list.
func builtinMakeVector(in *Interp, env *Env, args []*Cell) *Cell {
	k := in.argInt(args, 1)
	if k < 0 {
		in.raise(ErrDomain, "positive integer length required")
	}
	fill := in.optArg(args, 2)
	if fill == nil {
		fill = cellNil
	}
	return in.newVector(k, fill)
}

func builtinVector(in *Interp, env *Env, args []*Cell) *Cell {
	vector := in.newVector(len(args), nil)
	copy(vector.Vector, args)
	return vector
}

func builtinVectorLength(in *Interp, env *Env, args []*Cell) *Cell {
	v := in.argType(args, 1, TypeVector)
	return in.newNumber(float64(len(v.Vector)))
}

func (in *Interp) vectorIndex(v *Cell, k int) {
	if k < 0 || k >= len(v.Vector) {
		in.raise(ErrDomain, "invalid vector index %d", k)
	}
}

func builtinVectorRef(in *Interp, env *Env, args []*Cell) *Cell {
	v := in.argType(args, 1, TypeVector)
	k := in.argInt(args, 2)
	in.vectorIndex(v, k)
	return v.Vector[k]
}

func builtinVectorSet(in *Interp, env *Env, args []*Cell) *Cell {
	v := in.argType(args, 1, TypeVector)
	k := in.argInt(args, 2)
	obj := in.arg(args, 3)
	in.vectorIndex(v, k)
	v.Vector[k] = obj
	return obj
}

// builtinVectorToList builds the list back to front so each cons is
// allocated exactly once.
func builtinVectorToList(in *Interp, env *Env, args []*Cell) *Cell {
	v := in.argType(args, 1, TypeVector)
	list := cellNil
	for i := len(v.Vector) - 1; i >= 0; i-- {
		list = in.cons(v.Vector[i], list)
	}
	return list
}

func builtinListToVector(in *Interp, env *Env, args []*Cell) *Cell {
	list := in.arg(args, 1)
	if list != cellNil {
		in.typeCheck(TypePair, list)
	}
	length := listLength(list)
	if length < 0 {
		in.raise(ErrType, "list->vector expects a proper list")
	}

	vector := in.newVector(length, nil)
	i := 0
	for ; list != cellNil; list = cdr(list) {
		vector.Vector[i] = car(list)
		i++
	}
	return vector
}

func builtinVectorFill(in *Interp, env *Env, args []*Cell) *Cell {
	v := in.argType(args, 1, TypeVector)
	fill := in.arg(args, 2)
	for i := range v.Vector {
		v.Vector[i] = fill
	}
	return fill
}

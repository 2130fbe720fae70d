// builtin_list.go — pairs and lists.
package atom

func registerListBuiltins(in *Interp) {
	in.registerBuiltin("pair?", typePredicate(TypePair))
	in.registerBuiltin("cons", builtinCons)
	in.registerBuiltin("car", builtinCar)
	in.registerBuiltin("cdr", builtinCdr)
	in.registerBuiltin("set-car!", builtinSetCar)
	in.registerBuiltin("set-cdr!", builtinSetCdr)
	in.registerBuiltin("null?", builtinNullQ)
	in.registerBuiltin("list?", builtinListQ)
	in.registerBuiltin("list", builtinList)
	in.registerBuiltin("length", builtinLength)
	in.registerBuiltin("append", builtinAppend)
}

func builtinCons(in *Interp, env *Env, args []*Cell) *Cell {
	return in.cons(in.arg(args, 1), in.arg(args, 2))
}

func builtinCar(in *Interp, env *Env, args []*Cell) *Cell {
	return in.argType(args, 1, TypePair).Car
}

func builtinCdr(in *Interp, env *Env, args []*Cell) *Cell {
	return in.argType(args, 1, TypePair).Cdr
}

func builtinSetCar(in *Interp, env *Env, args []*Cell) *Cell {
	pair := in.argType(args, 1, TypePair)
	setCar(pair, in.arg(args, 2))
	return pair
}

func builtinSetCdr(in *Interp, env *Env, args []*Cell) *Cell {
	pair := in.argType(args, 1, TypePair)
	setCdr(pair, in.arg(args, 2))
	return pair
}

func builtinNullQ(in *Interp, env *Env, args []*Cell) *Cell {
	return boolean(in.arg(args, 1) == cellNil)
}

// builtinListQ walks the whole chain: a list is a pair spine terminated by
// the empty list, and the empty list itself is a list. Does not terminate
// on a cyclic spine.
func builtinListQ(in *Interp, env *Env, args []*Cell) *Cell {
	obj := in.arg(args, 1)
	if obj == cellNil {
		return cellTrue
	}
	if obj.Type != TypePair {
		return cellFalse
	}
	return boolean(listLength(obj) >= 0)
}

func builtinList(in *Interp, env *Env, args []*Cell) *Cell {
	result := cellNil
	for i := len(args) - 1; i >= 0; i-- {
		result = in.cons(args[i], result)
	}
	return result
}

func builtinLength(in *Interp, env *Env, args []*Cell) *Cell {
	list := in.arg(args, 1)
	if list != cellNil && list.Type != TypePair {
		in.typeCheck(TypePair, list)
	}
	n := listLength(list)
	if n < 0 {
		in.raise(ErrType, "length expects a proper list")
	}
	return in.newNumber(float64(n))
}

// builtinAppend concatenates fresh copies of its arguments. Each argument
// must be a list; with no arguments the result is the empty list.
func builtinAppend(in *Interp, env *Env, args []*Cell) *Cell {
	result := cellNil
	for i := len(args) - 1; i >= 0; i-- {
		list := args[i]
		if list != cellNil {
			in.typeCheck(TypePair, list)
		}
		result = in.appendLists(list, result)
	}
	return result
}

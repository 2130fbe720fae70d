// builtin_equal.go — eq?, eqv? and equal?.
//
// All three share one recursive comparator parameterized by whether to
// compare string contents and whether to descend into pairs and vectors:
//
//	eq?    — identity only (symbols and scalars still compare by value)
//	eqv?   — eq? plus string contents
//	equal? — eqv? plus structural recursion
//
// equal? does not terminate on cyclic structure.
package atom

import "bytes"

func registerEqualBuiltins(in *Interp) {
	in.registerBuiltin("eq?", equalityBuiltin(false, false))
	in.registerBuiltin("eqv?", equalityBuiltin(true, false))
	in.registerBuiltin("equal?", equalityBuiltin(true, true))
}

func equalityBuiltin(recurseStrings, recurseCompound bool) NativeFn {
	return func(in *Interp, env *Env, args []*Cell) *Cell {
		a := in.arg(args, 1)
		b := in.arg(args, 2)
		return boolean(eqCells(a, b, recurseStrings, recurseCompound))
	}
}

func eqCells(a, b *Cell, recurseStrings, recurseCompound bool) bool {
	if a == b {
		return true
	}
	if a.Type != b.Type {
		return false
	}

	switch a.Type {
	case TypeNil:
		return true

	case TypeBoolean:
		return a.Boolean == b.Boolean

	case TypeCharacter:
		return a.Character == b.Character

	case TypeNumber:
		return a.Number == b.Number

	case TypeSymbol:
		return a.Symbol == b.Symbol

	case TypeString:
		return recurseStrings && bytes.Equal(a.String, b.String)

	case TypePair:
		return recurseCompound && pairsEqual(a, b)

	case TypeVector:
		return recurseCompound && vectorsEqual(a, b)

	default:
		// procedures and ports compare by identity only
		return false
	}
}

func pairsEqual(a, b *Cell) bool {
	for {
		if !eqCells(a.Car, b.Car, true, true) {
			return false
		}
		a, b = a.Cdr, b.Cdr
		if a.Type != TypePair || b.Type != TypePair {
			return eqCells(a, b, true, true)
		}
	}
}

func vectorsEqual(a, b *Cell) bool {
	if len(a.Vector) != len(b.Vector) {
		return false
	}
	for i := range a.Vector {
		if !eqCells(a.Vector[i], b.Vector[i], true, true) {
			return false
		}
	}
	return true
}

// builtin_symbol.go — symbols and the boolean procedures.
package atom

func registerSymbolBuiltins(in *Interp) {
	in.registerBuiltin("symbol?", typePredicate(TypeSymbol))
	in.registerBuiltin("symbol->string", builtinSymbolToString)
	in.registerBuiltin("string->symbol", builtinStringToSymbol)

	in.registerBuiltin("boolean?", typePredicate(TypeBoolean))
	in.registerBuiltin("not", builtinNot)
}

// The string returned by symbol->string is a fresh buffer; mutating it
// never touches the symbol's name.
func builtinSymbolToString(in *Interp, env *Env, args []*Cell) *Cell {
	symbol := in.argType(args, 1, TypeSymbol)
	return in.newString([]byte(symbol.Symbol))
}

func builtinStringToSymbol(in *Interp, env *Env, args []*Cell) *Cell {
	str := in.argType(args, 1, TypeString)
	return in.newSymbol(string(str.String))
}

func builtinNot(in *Interp, env *Env, args []*Cell) *Cell {
	return boolean(isFalse(in.arg(args, 1)))
}

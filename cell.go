// cell.go — the runtime value model.
//
// Every value the interpreter manipulates is a *Cell: a tagged struct owned
// by the interpreter's heap (heap.go). Cells never move; identity is pointer
// identity. The two booleans and the empty list are process-wide singletons
// that live outside the allocation list and are never swept.
package atom

import "io"

// CellType enumerates all runtime kinds a Cell may hold.
type CellType int

const (
	TypeNil CellType = iota // the empty list
	TypeBoolean
	TypeCharacter
	TypeNumber
	TypeString
	TypeSymbol
	TypePair
	TypeVector
	TypeProcedure
	TypeInputPort
	TypeOutputPort
)

var typeNames = [...]string{
	"empty list",
	"boolean",
	"character",
	"number",
	"string",
	"symbol",
	"pair",
	"vector",
	"procedure",
	"input port",
	"output port",
}

func (t CellType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// NativeFn is the implementation signature for built-in procedures. The
// evaluator hands natives their arguments already evaluated, left-to-right;
// env is the caller's environment (needed by apply).
type NativeFn func(in *Interp, env *Env, args []*Cell) *Cell

// Procedure is either a native built-in (Native non-nil) or a closure:
// a formals list, a body (proper list of expressions) and the lexical
// environment captured at construction time.
type Procedure struct {
	Native  NativeFn
	Name    string // native name, for printing and errors
	Formals *Cell
	Body    *Cell
	Env     *Env
}

// Cell is the universal heap value. Type selects which payload fields are
// meaningful. String exclusively owns its byte buffer and Vector its element
// slice; both are released by the collector. Port cells own their stream
// unless it is the process standard input/output.
type Cell struct {
	Type CellType

	Boolean   bool
	Character byte
	Number    float64
	String    []byte
	Symbol    string
	Car, Cdr  *Cell
	Vector    []*Cell
	Proc      Procedure
	In        io.Reader
	Out       io.Writer
	ownsPort  bool

	next *Cell // heap allocation list
	mark bool
}

// Singletons. Not on any allocation list; the collector never frees them.
var (
	cellTrue  = &Cell{Type: TypeBoolean, Boolean: true}
	cellFalse = &Cell{Type: TypeBoolean, Boolean: false}
	cellNil   = &Cell{Type: TypeNil}
)

func boolean(v bool) *Cell {
	if v {
		return cellTrue
	}
	return cellFalse
}

// isFalse reports whether cell is the false boolean. Everything else,
// including 0 and the empty list, counts as true.
func isFalse(cell *Cell) bool { return cell == cellFalse }

func car(cell *Cell) *Cell { return cell.Car }
func cdr(cell *Cell) *Cell { return cell.Cdr }

func setCar(pair, value *Cell) { pair.Car = value }
func setCdr(pair, value *Cell) { pair.Cdr = value }

func isInteger(d float64) bool { return d == float64(int(d)) }

// listLength returns the number of pairs in a proper list, or -1 when the
// chain is improper. Does not terminate on cyclic structures.
func listLength(list *Cell) int {
	n := 0
	for ; list.Type == TypePair; list = list.Cdr {
		n++
	}
	if list != cellNil {
		return -1
	}
	return n
}

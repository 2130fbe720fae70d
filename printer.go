// printer.go — external representations.
//
// Write emits values in read-back-able form; Display differs only in that
// strings emit raw and characters emit their literal byte. Pairs use dotted
// notation when a cdr is neither a pair nor the empty list. Printing does
// not terminate on cyclic pair structure.
package atom

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write emits the written (machine) representation of cell.
func Write(w io.Writer, cell *Cell) {
	printCell(w, cell, false)
}

// Display emits the human representation of cell.
func Display(w io.Writer, cell *Cell) {
	printCell(w, cell, true)
}

// WriteString returns the written representation as a string.
func WriteString(cell *Cell) string {
	var b strings.Builder
	printCell(&b, cell, false)
	return b.String()
}

func printCell(w io.Writer, cell *Cell, human bool) {
	switch cell.Type {
	case TypeNil:
		io.WriteString(w, "()")

	case TypeBoolean:
		if cell.Boolean {
			io.WriteString(w, "#t")
		} else {
			io.WriteString(w, "#f")
		}

	case TypeNumber:
		io.WriteString(w, strconv.FormatFloat(cell.Number, 'g', -1, 64))

	case TypeCharacter:
		printCharacter(w, cell.Character, human)

	case TypeString:
		if human {
			w.Write(cell.String)
		} else {
			printQuoted(w, cell.String)
		}

	case TypeSymbol:
		io.WriteString(w, cell.Symbol)

	case TypePair:
		io.WriteString(w, "(")
		for {
			printCell(w, cell.Car, human)
			rest := cell.Cdr
			if rest == cellNil {
				break
			}
			if rest.Type != TypePair {
				io.WriteString(w, " . ")
				printCell(w, rest, human)
				break
			}
			io.WriteString(w, " ")
			cell = rest
		}
		io.WriteString(w, ")")

	case TypeVector:
		io.WriteString(w, "#(")
		for i, elem := range cell.Vector {
			if i > 0 {
				io.WriteString(w, " ")
			}
			printCell(w, elem, human)
		}
		io.WriteString(w, ")")

	case TypeProcedure:
		if cell.Proc.Native != nil {
			fmt.Fprintf(w, "#<procedure %s>", cell.Proc.Name)
		} else {
			io.WriteString(w, "#<procedure>")
		}

	case TypeInputPort:
		fmt.Fprintf(w, "#<input port %p>", cell)

	case TypeOutputPort:
		fmt.Fprintf(w, "#<output port %p>", cell)
	}
}

func printCharacter(w io.Writer, c byte, human bool) {
	if human {
		w.Write([]byte{c})
		return
	}
	switch c {
	case ' ':
		io.WriteString(w, "#\\space")
	case '\n':
		io.WriteString(w, "#\\newline")
	default:
		fmt.Fprintf(w, "#\\%c", c)
	}
}

func printQuoted(w io.Writer, s []byte) {
	io.WriteString(w, "\"")
	for _, c := range s {
		if c == '"' || c == '\\' {
			w.Write([]byte{'\\'})
		}
		w.Write([]byte{c})
	}
	io.WriteString(w, "\"")
}

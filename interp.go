// interp.go — the interpreter handle and its public surface.
//
// OVERVIEW
// ========
// An *Interp owns everything one interpreter instance needs: the heap
// (allocation list and live counter), the root environment, and the current
// standard streams. Nothing is process-global; embedding hosts may create
// several independent interpreters, but a single instance must only be
// driven from one goroutine at a time (external mutual exclusion at the
// granularity of one Load call).
//
// Entry points:
//   - Load(src)        — the top-level driver: tokenize the whole text,
//     then parse and evaluate datum by datum, writing each result to
//     Stdout. Establishes the error recovery point; in all paths the token
//     buffer is dropped and, when this is the outermost load, the
//     collector runs.
//   - LoadFile(path)   — read a file and Load it.
//   - EvalString(src)  — embedding/test entry: like Load but collects no
//     garbage, prints nothing, and returns the last value.
//   - Collect()        — run a collection explicitly (heap.go).
//
// Errors raised during evaluation have already been reported to Stderr
// when the driver recovers them; reader errors are reported here with a
// caret snippet (errors.go).
package atom

import (
	"fmt"
	"io"
	"os"
)

// Interp is a single interpreter instance.
type Interp struct {
	root *Env

	// heap
	cells     *Cell
	allocated int

	// current standard streams; the CLI wires the os files, tests wire
	// buffers. Stdin/Stdout back the current-input-port and
	// current-output-port built-ins and are externally owned.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Trace receives one line per collection (cells before/after).
	Trace io.Writer

	loadDepth int
}

// New creates an interpreter with all built-ins installed, talking to the
// process standard streams.
func New() *Interp {
	in := &Interp{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Trace:  io.Discard,
	}
	in.root = newEnv(nil)

	registerNumberBuiltins(in)
	registerEqualBuiltins(in)
	registerListBuiltins(in)
	registerSymbolBuiltins(in)
	registerCharBuiltins(in)
	registerStringBuiltins(in)
	registerVectorBuiltins(in)
	registerControlBuiltins(in)
	registerPortBuiltins(in)
	return in
}

// registerBuiltin installs a native procedure in the root environment.
func (in *Interp) registerBuiltin(name string, fn NativeFn) {
	cell := in.alloc(TypeProcedure)
	cell.Proc = Procedure{Native: fn, Name: name}
	in.root.define(name, cell)
}

// Load runs the top-level read-eval-print cycle over src. Each top-level
// value is written to Stdout followed by a newline. The first error stops
// the remainder of src; it has already been reported, and Load returns it
// so callers can distinguish a clean run. Collection happens on the way
// out of the outermost load, error or not.
func (in *Interp) Load(src string) (err error) {
	in.loadDepth++
	defer func() {
		in.loadDepth--
		if in.loadDepth == 0 {
			in.Collect()
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			raised, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = raised
		}
	}()

	tokens, lexErr := NewLexer(src).Scan()
	if lexErr != nil {
		in.reportSyntaxError(src, lexErr)
		return lexErr
	}

	parser := newParser(in, tokens)
	for parser.More() {
		datum, parseErr := parser.Datum()
		if parseErr != nil {
			in.reportSyntaxError(src, parseErr)
			return parseErr
		}
		result := in.eval(in.root, datum)
		Write(in.Stdout, result)
		io.WriteString(in.Stdout, "\n")
	}
	return nil
}

// LoadFile reads path into memory and loads it.
func (in *Interp) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error opening file %s", path)
	}
	return in.Load(string(data))
}

// EvalString parses and evaluates src, returning the value of the last
// expression. Unlike Load it neither prints results nor collects garbage,
// so the returned cell is safe to inspect; run Collect when done.
func (in *Interp) EvalString(src string) (result *Cell, err error) {
	in.loadDepth++ // a nested (load ...) must not collect mid-expression
	defer func() { in.loadDepth-- }()
	defer func() {
		if r := recover(); r != nil {
			raised, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			result, err = nil, raised
		}
	}()

	tokens, lexErr := NewLexer(src).Scan()
	if lexErr != nil {
		return nil, lexErr
	}

	parser := newParser(in, tokens)
	result = cellFalse
	for parser.More() {
		datum, parseErr := parser.Datum()
		if parseErr != nil {
			return nil, parseErr
		}
		result = in.eval(in.root, datum)
	}
	return result, nil
}

// Root exposes the top-level environment for embedding hosts.
func (in *Interp) Root() *Env { return in.root }

// Define installs a binding in the top-level environment.
func (in *Interp) Define(name string, value *Cell) { in.root.define(name, value) }

func (in *Interp) reportSyntaxError(src string, err error) {
	if syntax, ok := err.(*SyntaxError); ok {
		fmt.Fprintf(in.Stderr, "Error: %s\n%s", syntax.Error(), snippet(src, syntax.Line, syntax.Col+1))
		return
	}
	fmt.Fprintf(in.Stderr, "Error: %s\n", err)
}

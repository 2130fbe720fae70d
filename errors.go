// errors.go — caret-snippet rendering for reader diagnostics.
//
// Turns a source position into a short, plain-text excerpt with a caret
// under the offending column:
//
//	   2 | (define x (vector 1 2
//	   3 |   #\q)
//	     |      ^
//
// Up to one line of context is shown before and after the error line.
// Coordinates are 1-based and clamped to the source, so a position past
// the end never breaks rendering. No ANSI colors.
package atom

import (
	"fmt"
	"strings"
)

func snippet(src string, line, col int) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

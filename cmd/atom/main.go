package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/marcomorain/atom"
)

const (
	appName     = "atom"
	historyFile = ".atom_history"
	prompt      = "> "
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [-f file ...] [-i]

  -f, --file <path>    Load the given source file.
  -i, --interactive    Enter the interactive read-eval-print loop.
`, appName)
}

func main() {
	interactive := false
	var files []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-i", "--interactive":
			interactive = true
		case "-f", "--file":
			i++
			if i == len(args) {
				fmt.Fprintf(os.Stderr, "%s: filename expected after %s\n", appName, args[i-1])
				os.Exit(2)
			}
			files = append(files, args[i])
		case "-h", "--help":
			usage()
			return
		default:
			fmt.Fprintf(os.Stderr, "%s: unknown flag %q\n", appName, args[i])
			usage()
			os.Exit(2)
		}
	}

	in := atom.New()

	for _, file := range files {
		if err := in.LoadFile(file); err != nil {
			// Evaluation errors were already reported by the driver; a
			// missing file has not been.
			if !errors.As(err, new(*atom.Error)) && !errors.As(err, new(*atom.SyntaxError)) {
				fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			}
		}
	}

	if interactive {
		repl(in)
	}
}

// repl evaluates each non-empty line until end of input. Line editing and
// history come from liner; history persists in the user's home directory.
func repl(in *atom.Interp) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		in.Load(line)
	}
}

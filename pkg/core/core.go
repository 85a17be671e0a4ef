// Package core provides the stdio and exit-code plumbing shared by ccwc packages.
package core

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Name is the program name used as the prefix of every diagnostic.
const Name = "ccwc"

// Exit codes following POSIX conventions
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Stdio holds the standard I/O streams for a run.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Println writes a message to stdout with a newline.
func (s *Stdio) Println(args ...any) {
	fmt.Fprintln(s.Out, args...)
}

// UsageError prints a usage error followed by the usage line and returns ExitUsage.
func UsageError(stdio *Stdio, message, usage string) int {
	stdio.Errorf("%s: %s\n", Name, message)
	if usage != "" {
		stdio.Errorf("%s\n", usage)
	}
	return ExitUsage
}

// Fail prints an error and returns ExitFailure.
func Fail(stdio *Stdio, err error) int {
	stdio.Errorf("%s: %v\n", Name, err)
	return ExitFailure
}

// IsTerminal reports whether the stream is backed by an interactive terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Package cmdline resolves ccwc arguments into the counts to report and
// the source to read.
//
// Each argument is classified against a fixed whitelist of flags. Anything
// else is a path. The filesystem is never consulted, so a missing file is
// reported when it is opened rather than silently treated as a flag.
package cmdline

import (
	"errors"
	"fmt"

	"github.com/rcarmo/go-ccwc/pkg/count"
	"github.com/rcarmo/go-ccwc/pkg/input"
)

// Usage is the fixed usage line printed on a malformed invocation.
const Usage = "usage: ccwc [-c|-l|-w|-m] [file]"

// MaxArgs is the most arguments accepted after the program name.
const MaxArgs = 2

// ErrUsage is matched by every CommandLineError.
var ErrUsage = errors.New("invalid command line")

// CommandLineError reports a malformed invocation.
type CommandLineError struct {
	Reason string
}

func (e *CommandLineError) Error() string {
	return e.Reason
}

// Is makes errors.Is(err, ErrUsage) hold.
func (e *CommandLineError) Is(target error) bool {
	return target == ErrUsage
}

// Request is a resolved invocation.
type Request struct {
	Modes  []count.Mode
	Source input.Source
}

// Resolve classifies args (without the program name).
func Resolve(args []string) (Request, error) {
	if len(args) > MaxArgs {
		return Request{}, &CommandLineError{Reason: fmt.Sprintf("too many arguments (%d)", len(args))}
	}

	var (
		mode    count.Mode
		hasMode bool
		req     = Request{Source: input.Stdin()}
		hasPath bool
	)
	for _, arg := range args {
		if m, ok := count.ModeForFlag(arg); ok {
			if hasMode {
				return Request{}, &CommandLineError{Reason: fmt.Sprintf("only one of -c, -l, -w, -m may be given (got %s and %s)", mode.Flag(), arg)}
			}
			mode, hasMode = m, true
			continue
		}
		if hasPath {
			return Request{}, &CommandLineError{Reason: fmt.Sprintf("only one file may be given (got %s and %s)", req.Source.Path, arg)}
		}
		if arg == "" {
			return Request{}, &CommandLineError{Reason: "empty file name"}
		}
		req.Source, hasPath = input.File(arg), true
	}

	if hasMode {
		req.Modes = []count.Mode{mode}
	} else {
		req.Modes = count.DefaultModes()
	}
	return req, nil
}

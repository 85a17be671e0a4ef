// Package input loads the full content to be counted from a file or stdin.
package input

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/rcarmo/go-ccwc/pkg/core"
)

// Source names where content comes from. The zero value is standard input.
type Source struct {
	Path string
}

// Stdin returns the standard input source.
func Stdin() Source {
	return Source{}
}

// File returns a source reading the named file.
func File(path string) Source {
	return Source{Path: path}
}

// IsStdin reports whether the source is standard input.
func (s Source) IsStdin() bool {
	return s.Path == ""
}

// Name returns the path shown after the counts, empty for stdin.
func (s Source) Name() string {
	return s.Path
}

func (s Source) String() string {
	if s.IsStdin() {
		return "standard input"
	}
	return s.Path
}

// Opener opens a named file for reading.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// IOError wraps a failure to open or read the source. Its message is the
// underlying error text unchanged.
type IOError struct {
	Source Source
	Err    error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Loader reads a Source eagerly into memory.
type Loader struct {
	In     io.Reader
	Opener Opener
	Log    zerolog.Logger
}

// Load returns the complete content of src.
func (l *Loader) Load(src Source) ([]byte, error) {
	var r io.Reader
	if src.IsStdin() {
		if core.IsTerminal(l.In) {
			l.Log.Info().Msg("reading from input stream (end with Ctrl-D)...")
		} else {
			l.Log.Info().Msg("reading from input stream...")
		}
		r = l.In
	} else {
		l.Log.Info().Msgf("opening file %s...", src.Path)
		f, err := l.Opener.Open(src.Path)
		if err != nil {
			return nil, &IOError{Source: src, Err: err}
		}
		defer f.Close()
		r = f
	}

	if r == nil {
		return nil, &IOError{Source: src, Err: fmt.Errorf("read %s: no reader", src)}
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Source: src, Err: err}
	}
	l.Log.Debug().Int("bytes", len(content)).Str("source", src.String()).Msg("input loaded")
	return content, nil
}

// Package count implements the byte, line, word and character counters.
//
// Every counter is a pure function over an immutable byte slice, so the
// same content can be measured in any number of modes within one run.
package count

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects one countable quantity.
type Mode int

const (
	Bytes Mode = iota // -c
	Lines             // -l
	Words             // -w
	Chars             // -m
)

var flags = map[string]Mode{
	"-c": Bytes,
	"-l": Lines,
	"-w": Words,
	"-m": Chars,
}

// ErrInvalidUTF8 is matched by every EncodingError.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// EncodingError reports content that is not valid UTF-8 text.
type EncodingError struct {
	Offset int // byte offset of the first invalid sequence
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte offset %d", e.Offset)
}

// Is makes errors.Is(err, ErrInvalidUTF8) hold.
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case Bytes:
		return "bytes"
	case Lines:
		return "lines"
	case Words:
		return "words"
	case Chars:
		return "chars"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Flag returns the command-line flag selecting the mode.
func (m Mode) Flag() string {
	switch m {
	case Bytes:
		return "-c"
	case Lines:
		return "-l"
	case Words:
		return "-w"
	case Chars:
		return "-m"
	}
	return ""
}

// ModeForFlag looks arg up in the static flag whitelist.
func ModeForFlag(arg string) (Mode, bool) {
	m, ok := flags[arg]
	return m, ok
}

// DefaultModes returns the modes reported when no flag is given.
func DefaultModes() []Mode {
	return []Mode{Lines, Words, Bytes}
}

// CountBytes returns the length of content.
func CountBytes(content []byte) int {
	return len(content)
}

// CountLines returns the number of newline-terminated records, plus one for
// a non-empty trailing record without a terminator.
func CountLines(content []byte) int {
	n := 0
	for _, b := range content {
		if b == '\n' {
			n++
		}
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		n++
	}
	return n
}

// CountWords returns the number of maximal runs of non-whitespace runes.
func CountWords(content []byte) (int, error) {
	if err := validate(content); err != nil {
		return 0, err
	}
	words := 0
	inWord := false
	for _, r := range string(content) {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			words++
		}
	}
	return words, nil
}

// CountChars returns the number of Unicode scalar values in content.
func CountChars(content []byte) (int, error) {
	if err := validate(content); err != nil {
		return 0, err
	}
	return utf8.RuneCount(content), nil
}

// Count measures content in a single mode and returns the decimal text.
func Count(mode Mode, content []byte) (string, error) {
	var (
		n   int
		err error
	)
	switch mode {
	case Bytes:
		n = CountBytes(content)
	case Lines:
		n = CountLines(content)
	case Words:
		n, err = CountWords(content)
	case Chars:
		n, err = CountChars(content)
	default:
		return "", fmt.Errorf("unknown count mode %d", int(mode))
	}
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// Entry is one reported count.
type Entry struct {
	Mode  Mode
	Value string
}

// Result holds the counts of a run in requested order.
type Result []Entry

// Run evaluates every requested mode over content. Any failure discards
// the counts already computed.
func Run(modes []Mode, content []byte) (Result, error) {
	if len(modes) == 0 {
		return nil, errors.New("no count modes requested")
	}
	res := make(Result, 0, len(modes))
	for _, m := range modes {
		v, err := Count(m, content)
		if err != nil {
			return nil, err
		}
		res = append(res, Entry{Mode: m, Value: v})
	}
	return res, nil
}

// Format renders the counts space-separated, followed by path when set.
func (r Result) Format(path string) string {
	parts := make([]string, 0, len(r)+1)
	for _, e := range r {
		parts = append(parts, e.Value)
	}
	if path != "" {
		parts = append(parts, path)
	}
	return strings.Join(parts, " ")
}

func validate(content []byte) error {
	if utf8.Valid(content) {
		return nil
	}
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return &EncodingError{Offset: i}
		}
		i += size
	}
	return &EncodingError{Offset: len(content)}
}

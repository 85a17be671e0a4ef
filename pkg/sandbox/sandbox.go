// Package sandbox restricts which files may be opened for counting.
// It wraps file opening and refuses paths outside pre-authorized prefixes.
package sandbox

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrAccessDenied is returned for paths outside every allowed prefix.
var ErrAccessDenied = errors.New("access denied: path not in sandbox")

// Sandbox provides read-only, allow-listed file access.
// A Sandbox with no rules allows every path.
type Sandbox struct {
	rules []string // absolute, cleaned path prefixes
}

// Config holds sandbox configuration.
type Config struct {
	// Paths to allow read access to
	AllowedPaths []string
	// Allow access to the current working directory
	AllowCwd bool
}

// New builds a sandbox from cfg. An empty cfg yields an unrestricted sandbox.
func New(cfg Config) (*Sandbox, error) {
	s := &Sandbox{}
	if cfg.AllowCwd {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		s.rules = append(s.rules, filepath.Clean(cwd))
	}
	for _, p := range cfg.AllowedPaths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		s.rules = append(s.rules, filepath.Clean(abs))
	}
	return s, nil
}

// Unrestricted returns a sandbox that allows every path.
func Unrestricted() *Sandbox {
	return &Sandbox{}
}

// Enabled reports whether any rule restricts access.
func (s *Sandbox) Enabled() bool {
	return len(s.rules) > 0
}

// Check verifies that path may be read.
func (s *Sandbox) Check(path string) error {
	if !s.Enabled() {
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return ErrAccessDenied
	}

	// Clean the path to prevent traversal attacks
	absPath = filepath.Clean(absPath)

	for _, rule := range s.rules {
		if absPath == rule {
			return nil
		}
		remainder := strings.TrimPrefix(absPath, rule)
		if remainder != absPath && (strings.HasPrefix(remainder, string(filepath.Separator)) || strings.HasSuffix(rule, string(filepath.Separator))) {
			return nil
		}
	}

	return ErrAccessDenied
}

// Open opens a file for reading within the sandbox.
func (s *Sandbox) Open(path string) (io.ReadCloser, error) {
	if err := s.Check(path); err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.Open(path) // #nosec G304 -- Check enforces allowed paths
}

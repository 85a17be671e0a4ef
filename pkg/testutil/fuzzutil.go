package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"
)

const MaxFuzzBytes = 2048

type FuzzOptions struct {
	SkipReference bool
	// Fields limits the comparison to the leading whitespace-separated
	// fields of stdout; zero compares the whole output.
	Fields int
}

var cwdMu sync.Mutex

func ClampBytes(data []byte, max int) []byte {
	if len(data) > max {
		return data[:max]
	}
	return data
}

func RunAppletInDir(t *testing.T, run RunApplet, args []string, input string, dir string) (string, string, int) {
	t.Helper()
	cwdMu.Lock()
	defer cwdMu.Unlock()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(oldDir) }()

	stdio, out, errBuf := CaptureStdio(input)
	code := run(stdio, args)
	return out.String(), errBuf.String(), code
}

// RunReferenceInDir runs the system tool of the given name, if installed.
func RunReferenceInDir(t *testing.T, tool string, args []string, input string, dir string) (string, string, int, bool) {
	t.Helper()
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", "", 0, false
	}
	cmd := exec.Command(path, args...) // #nosec G204 -- test helper for an installed reference tool
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(input)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	exitCode := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		} else {
			t.Fatalf("%s run: %v", tool, err)
		}
	}
	return outBuf.String(), errBuf.String(), exitCode, true
}

// FuzzCompare runs ours and the reference tool over the same files and
// compares exit codes and stdout.
func FuzzCompare(t *testing.T, tool string, run RunApplet, args []string, input string, files map[string]string, opts FuzzOptions) {
	t.Helper()
	dir := TempDirWithFiles(t, files)
	ourOut, _, ourCode := RunAppletInDir(t, run, args, input, dir)
	if opts.SkipReference {
		return
	}
	refOut, _, refCode, ok := RunReferenceInDir(t, tool, args, input, dir)
	if !ok {
		return
	}
	if ourCode != refCode {
		t.Fatalf("exit code mismatch: ours=%d %s=%d", ourCode, tool, refCode)
	}
	if !outputsEqual(leadingFields(ourOut, opts.Fields), leadingFields(refOut, opts.Fields)) {
		t.Fatalf("stdout mismatch:\nours: %q\n%s: %q", ourOut, tool, refOut)
	}
}

func leadingFields(out string, n int) string {
	if n <= 0 {
		return out
	}
	fields := strings.Fields(out)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

func outputsEqual(a, b string) bool {
	if a == b {
		return true
	}
	trimA := strings.TrimSuffix(a, "\n")
	trimB := strings.TrimSuffix(b, "\n")
	return trimA == trimB
}

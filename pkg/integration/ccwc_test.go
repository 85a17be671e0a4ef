package integration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rcarmo/go-ccwc/pkg/core"
	"github.com/rcarmo/go-ccwc/pkg/testutil"
	"github.com/rcarmo/go-ccwc/pkg/wc"
)

// corpus builds a multi-line fixture mixing ASCII, accented text, tabs,
// blank lines and a final line without a terminator.
func corpus() string {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&b, "Chapter %d\tthe quick brown fox jumps\n", i)
		if i%7 == 0 {
			b.WriteString("\n")
		}
		if i%11 == 0 {
			b.WriteString("  Ça s'écrit «naïvement» — déjà vu  \n")
		}
	}
	b.WriteString("The End")
	return b.String()
}

type expected struct {
	bytes, lines, words, chars int
}

// independent counts, computed without the counting package.
func expectFor(s string) expected {
	lines := strings.Count(s, "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		lines++
	}
	return expected{
		bytes: len(s),
		lines: lines,
		words: len(strings.Fields(s)),
		chars: utf8.RuneCountInString(s),
	}
}

type scenario struct {
	name    string
	args    func(path string) []string
	stdin   bool
	wantOut func(e expected, path string) string
}

func scenarios() []scenario {
	return []scenario{
		{
			name:    "bytes",
			args:    func(p string) []string { return []string{"-c", p} },
			wantOut: func(e expected, p string) string { return fmt.Sprintf("%d %s\n", e.bytes, p) },
		},
		{
			name:    "lines",
			args:    func(p string) []string { return []string{"-l", p} },
			wantOut: func(e expected, p string) string { return fmt.Sprintf("%d %s\n", e.lines, p) },
		},
		{
			name:    "words",
			args:    func(p string) []string { return []string{"-w", p} },
			wantOut: func(e expected, p string) string { return fmt.Sprintf("%d %s\n", e.words, p) },
		},
		{
			name:    "characters",
			args:    func(p string) []string { return []string{"-m", p} },
			wantOut: func(e expected, p string) string { return fmt.Sprintf("%d %s\n", e.chars, p) },
		},
		{
			name: "filename_only",
			args: func(p string) []string { return []string{p} },
			wantOut: func(e expected, p string) string {
				return fmt.Sprintf("%d %d %d %s\n", e.lines, e.words, e.bytes, p)
			},
		},
		{
			name:    "lines_from_stdin",
			args:    func(string) []string { return []string{"-l"} },
			stdin:   true,
			wantOut: func(e expected, _ string) string { return fmt.Sprintf("%d\n", e.lines) },
		},
		{
			name:  "default_from_stdin",
			args:  func(string) []string { return nil },
			stdin: true,
			wantOut: func(e expected, _ string) string {
				return fmt.Sprintf("%d %d %d\n", e.lines, e.words, e.bytes)
			},
		},
	}
}

func TestCcwcScenarios(t *testing.T) {
	t.Setenv("CCWC_QUIET", "true")
	t.Setenv("CCWC_ALLOW", "")
	t.Setenv("CCWC_ALLOW_CWD", "")
	t.Setenv("CCWC_CONFIG", "")

	text := corpus()
	path := testutil.TempFile(t, "test.txt", text)
	want := expectFor(text)

	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			input := ""
			if sc.stdin {
				input = text
			}
			out, errBuf, code := testutil.CaptureAndRun(t, wc.Main, sc.args(path), input)
			testutil.AssertExitCode(t, code, core.ExitSuccess)
			testutil.AssertOutput(t, out.String(), sc.wantOut(want, path))
			if errBuf.Len() != 0 {
				t.Errorf("stderr = %q, want empty with CCWC_QUIET", errBuf.String())
			}
		})
	}
}

func TestCcwcConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	if err := os.MkdirAll(data, 0755); err != nil {
		t.Fatal(err)
	}
	allowed := testutil.TempFile(t, "x.txt", "x")
	cfg := filepath.Join(dir, "ccwc.yaml")
	content := fmt.Sprintf("quiet: true\nallow:\n  - %s\n", filepath.Dir(allowed))
	if err := os.WriteFile(cfg, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CCWC_CONFIG", cfg)
	t.Setenv("CCWC_QUIET", "")
	t.Setenv("CCWC_ALLOW", "")
	t.Setenv("CCWC_ALLOW_CWD", "")

	out, errBuf, code := testutil.CaptureAndRun(t, wc.Main, []string{"-c", allowed}, "")
	testutil.AssertExitCode(t, code, core.ExitSuccess)
	testutil.AssertOutput(t, out.String(), "1 "+allowed+"\n")
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}

	denied := filepath.Join(data, "y.txt")
	if err := os.WriteFile(denied, []byte("y"), 0644); err != nil {
		t.Fatal(err)
	}
	out, errBuf, code = testutil.CaptureAndRun(t, wc.Main, []string{"-c", denied}, "")
	testutil.AssertExitCode(t, code, core.ExitFailure)
	testutil.AssertOutput(t, out.String(), "")
	testutil.AssertOutputContains(t, errBuf.String(), "access denied")
}

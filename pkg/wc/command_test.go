package wc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/go-ccwc/pkg/core"
	"github.com/rcarmo/go-ccwc/pkg/testutil"
	"github.com/rcarmo/go-ccwc/pkg/wc"
)

func TestNewCommand(t *testing.T) {
	stdio, _, _ := testutil.CaptureStdio("")
	cmd := wc.NewCommand(stdio, []string{"-c"})
	require.NotNil(t, cmd)
	assert.Equal(t, "ccwc", cmd.Name())
	assert.True(t, cmd.DisableFlagParsing)
	assert.False(t, cmd.HasSubCommands())
}

// Help-looking arguments are not on the flag whitelist, so they name files.
func TestHelpIsAPath(t *testing.T) {
	for k, v := range cleanEnv {
		t.Setenv(k, v)
	}
	dir := testutil.TempDirWithFiles(t, map[string]string{"--help": "a b\n"})

	out, _, code := testutil.RunAppletInDir(t, wc.Main, []string{"-w", "--help"}, "", dir)
	testutil.AssertExitCode(t, code, core.ExitSuccess)
	testutil.AssertOutput(t, out, "2 --help\n")

	_, errOut, code := testutil.RunAppletInDir(t, wc.Main, []string{"--version"}, "", dir)
	testutil.AssertExitCode(t, code, core.ExitFailure)
	testutil.AssertOutputContains(t, errOut, "open --version")
}

func TestMainWithNilArgsReadsStdin(t *testing.T) {
	for k, v := range cleanEnv {
		t.Setenv(k, v)
	}
	out, _, code := testutil.CaptureAndRun(t, wc.Main, nil, "a b c\n")
	testutil.AssertExitCode(t, code, core.ExitSuccess)
	testutil.AssertOutput(t, out.String(), "1 3 6\n")
}

package wc

import (
	"github.com/spf13/cobra"

	"github.com/rcarmo/go-ccwc/pkg/cmdline"
	"github.com/rcarmo/go-ccwc/pkg/core"
)

// NewCommand builds the root command for args. cobra never sees args: they
// are handed straight to cmdline so that every argument, including names
// cobra reserves such as __complete, is classified against the same static
// whitelist.
func NewCommand(stdio *core.Stdio, args []string) *cobra.Command {
	if args == nil {
		args = []string{}
	}
	cmd := &cobra.Command{
		Use:   "ccwc [-c|-l|-w|-m] [file]",
		Short: "Count bytes, lines, words or characters",
		Long: `ccwc counts the bytes (-c), lines (-l), words (-w) or characters (-m)
of a file, or of standard input when no file is named. Without a flag it
prints lines, words and bytes.`,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(*cobra.Command, []string) error {
			return Execute(stdio, args)
		},
	}
	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)
	cmd.SetUsageTemplate(cmdline.Usage + "\n")
	cmd.SetArgs([]string{})
	return cmd
}

// Package wc implements the ccwc (word count) command.
package wc

import (
	"errors"

	"github.com/rcarmo/go-ccwc/pkg/cmdline"
	"github.com/rcarmo/go-ccwc/pkg/config"
	"github.com/rcarmo/go-ccwc/pkg/core"
	"github.com/rcarmo/go-ccwc/pkg/count"
	"github.com/rcarmo/go-ccwc/pkg/input"
	"github.com/rcarmo/go-ccwc/pkg/logging"
	"github.com/rcarmo/go-ccwc/pkg/sandbox"
)

// Main runs ccwc with the given arguments and returns the exit code.
func Main(stdio *core.Stdio, args []string) int {
	err := NewCommand(stdio, args).Execute()
	return Report(stdio, err)
}

// Execute resolves args, loads the input once and prints the requested
// counts as a single line. Nothing is printed to stdout on failure.
func Execute(stdio *core.Stdio, args []string) error {
	req, err := cmdline.Resolve(args)
	if err != nil {
		return err
	}

	settings, err := config.Load(core.IsTerminal(stdio.Err))
	if err != nil {
		return err
	}
	log := logging.New(stdio.Err, settings)

	sb, err := sandbox.New(sandbox.Config{
		AllowedPaths: settings.Allow,
		AllowCwd:     settings.AllowCwd,
	})
	if err != nil {
		return &config.ConfigError{Err: err}
	}

	loader := &input.Loader{In: stdio.In, Opener: sb, Log: log}
	content, err := loader.Load(req.Source)
	if err != nil {
		return err
	}

	res, err := count.Run(req.Modes, content)
	if err != nil {
		return err
	}
	for _, e := range res {
		log.Debug().Str("mode", e.Mode.String()).Str("count", e.Value).Msg("counted")
	}

	stdio.Println(res.Format(req.Source.Name()))
	return nil
}

// Report prints err, if any, and returns the matching exit code.
func Report(stdio *core.Stdio, err error) int {
	if err == nil {
		return core.ExitSuccess
	}

	var cfgErr *config.ConfigError
	switch {
	case errors.Is(err, cmdline.ErrUsage):
		return core.UsageError(stdio, err.Error(), cmdline.Usage)
	case errors.As(err, &cfgErr):
		stdio.Errorf("%s: config: %v\n", core.Name, cfgErr)
		return core.ExitFailure
	default:
		return core.Fail(stdio, err)
	}
}

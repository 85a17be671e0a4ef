// Package logging builds the diagnostic logger that writes progress notices
// to the auxiliary output stream.
package logging

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/rcarmo/go-ccwc/pkg/config"
	"github.com/rcarmo/go-ccwc/pkg/core"
)

// New returns a console logger writing to w at the configured level.
func New(w io.Writer, s config.Settings) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      s.NoColor,
		PartsOrder:   []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel:  formatLevel,
	}
	return zerolog.New(cw).Level(Level(s))
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Level maps settings to a zerolog level.
func Level(s config.Settings) zerolog.Level {
	if s.Quiet {
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func formatLevel(i any) string {
	lvl, _ := i.(string)
	switch lvl {
	case zerolog.LevelInfoValue, "":
		return core.Name + ":"
	default:
		return core.Name + ": " + lvl + ":"
	}
}

// Package config resolves ccwc runtime settings from the environment and an
// optional config file.
//
// Settings never change what is counted or how counts are printed; they only
// control diagnostics and which files may be read.
//
// Environment variables:
//
//	CCWC_QUIET      suppress progress notices (true/false)
//	CCWC_LOG_LEVEL  debug|info|warn|error (default: info)
//	CCWC_NO_COLOR   disable coloured notices (default: on unless stderr is a terminal)
//	CCWC_ALLOW      path list of files or directories that may be read
//	CCWC_ALLOW_CWD  allow reading below the working directory (true/false)
//	CCWC_CONFIG     explicit config file (yaml, toml or json)
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "CCWC"

// Settings holds resolved runtime settings.
type Settings struct {
	Quiet    bool
	LogLevel string
	NoColor  bool
	Allow    []string
	AllowCwd bool
}

// ConfigError reports an unreadable or malformed configuration.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load resolves settings. colorDefault is used when no_color is not set.
func Load(colorDefault bool) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("quiet", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", !colorDefault)
	v.SetDefault("allow", []string{})
	v.SetDefault("allow_cwd", false)

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, &ConfigError{Path: path, Err: err}
		}
	}

	s := Settings{
		Quiet:    v.GetBool("quiet"),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		NoColor:  v.GetBool("no_color"),
		Allow:    allowList(v),
		AllowCwd: v.GetBool("allow_cwd"),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, &ConfigError{Path: v.ConfigFileUsed(), Err: err}
	}
	return s, nil
}

// Validate checks setting values.
func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log_level %q", s.LogLevel)
}

// allowList reads the allow key. A string value, as set from the
// environment, is a single os.PathListSeparator-joined list and is never
// split on spaces.
func allowList(v *viper.Viper) []string {
	if s, ok := v.Get("allow").(string); ok {
		return splitPaths([]string{s})
	}
	return splitPaths(v.GetStringSlice("allow"))
}

// splitPaths flattens entries holding os.PathListSeparator-joined lists.
func splitPaths(entries []string) []string {
	var out []string
	for _, e := range entries {
		for _, p := range filepath.SplitList(e) {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

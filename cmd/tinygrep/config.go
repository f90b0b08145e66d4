package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// options are the resolved per-run settings that can come from three
// places. Precedence is flags over environment over config file.
type options struct {
	lineNumber bool
	invert     bool
	countOnly  bool
	quiet      bool
	color      bool
	gzip       bool
}

// resolveOptions layers the tinygrep.yaml config file and TINYGREP_*
// environment variables under the command-line flags. A missing config
// file is fine; a malformed one is an error.
func resolveOptions(c *cli.Context, logger zerolog.Logger) (options, error) {
	v := viper.New()
	v.SetConfigName("tinygrep")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/tinygrep")
	v.SetEnvPrefix("TINYGREP")
	v.AutomaticEnv()

	v.SetDefault("line_number", false)
	v.SetDefault("color", "auto")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return options{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		logger.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded config")
	}

	lineNumber := v.GetBool("line_number")
	if c.IsSet("line-number") {
		lineNumber = c.Bool("line-number")
	}
	colorMode := v.GetString("color")
	if c.IsSet("color") {
		colorMode = c.String("color")
	}

	color, err := resolveColor(colorMode)
	if err != nil {
		return options{}, err
	}

	return options{
		lineNumber: lineNumber,
		invert:     c.Bool("invert-match"),
		countOnly:  c.Bool("count"),
		quiet:      c.Bool("quiet"),
		color:      color,
		gzip:       c.Bool("gzip"),
	}, nil
}

// resolveColor turns the auto/always/never mode into a yes or no,
// probing stdout for a terminal in auto mode.
func resolveColor(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return stdoutIsTerminal(), nil
	default:
		return false, fmt.Errorf("invalid --color mode %q (want auto, always, or never)", mode)
	}
}

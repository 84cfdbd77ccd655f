package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/mdsite/internal/config"
	"github.com/gerunddev/mdsite/internal/logger"
	"github.com/gerunddev/mdsite/internal/state"
	"github.com/gerunddev/mdsite/internal/styles"
)

// fail prints an error line and exits
func fail(msg string, err error) {
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+msg))
	os.Exit(1)
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fail("Error loading config", err)
	}
	return cfg
}

func loadState() *state.State {
	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fail("Error loading state", err)
	}
	return st
}

func saveState(st *state.State) error {
	return st.Save(config.StateFilePath())
}

// hasFlag reports whether args carries the given flag
func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

// flagValue returns the value following flag in args
func flagValue(args []string, flag string) (string, bool) {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// positional returns the arguments that are not flags or flag values
func positional(args []string, valueFlags ...string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 1 && arg[0] == '-' {
			for _, f := range valueFlags {
				if arg == f {
					i++
					break
				}
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}

// newLogger builds the command logger writing to w and the configured log file.
// Either may be absent; with neither the logger discards everything.
func newLogger(cfg *config.Config, w io.Writer, verbose bool) (*logger.Logger, func()) {
	var writers []io.Writer
	cleanup := func() {}

	if w != nil {
		writers = append(writers, w)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("! Unable to open log file: "+err.Error()))
		} else {
			writers = append(writers, f)
			cleanup = func() { f.Close() }
		}
	}

	if len(writers) == 0 {
		return logger.Discard(), cleanup
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return logger.NewWithLevel(io.MultiWriter(writers...), level), cleanup
}

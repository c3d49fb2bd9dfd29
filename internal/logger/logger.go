package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hance08/teller/internal/config"
	"github.com/pterm/pterm"
)

type attributes = map[string]any

var globalLogger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)

// Initialize replaces the package logger according to cfg. Logs go to stderr
// so they never mix with command output.
func Initialize(cfg config.LogConfig) error {
	l, err := New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

func New(cfg config.LogConfig, w io.Writer) (*pterm.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var formatter pterm.LogFormatter
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		formatter = pterm.LogFormatterColorful
	case "json":
		formatter = pterm.LogFormatterJSON
	default:
		return nil, fmt.Errorf("unknown log format %q (use text or json)", cfg.Format)
	}

	return pterm.DefaultLogger.
		WithLevel(level).
		WithFormatter(formatter).
		WithWriter(w), nil
}

func ParseLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(s) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "disabled", "off":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelDisabled, fmt.Errorf("unknown log level %q", s)
	}
}

func Debug(message string, attrs attributes) {
	globalLogger.Debug(message, globalLogger.ArgsFromMap(attrs))
}

func Info(message string, attrs attributes) {
	globalLogger.Info(message, globalLogger.ArgsFromMap(attrs))
}

func Warn(message string, attrs attributes) {
	globalLogger.Warn(message, globalLogger.ArgsFromMap(attrs))
}

func Error(message string, err error, attrs attributes) {
	if err != nil {
		if attrs == nil {
			attrs = attributes{}
		}
		attrs["error"] = err.Error()
	}
	globalLogger.Error(message, globalLogger.ArgsFromMap(attrs))
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/imagepick/internal/config"
	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/logger"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
)

// logTarget selects where a command writes logs when neither settings nor
// flags name a file.
type logTarget int

const (
	// logToFile keeps the terminal free for the picker.
	logToFile logTarget = iota
	logToStderr
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	flags    *rootFlags
	Settings *config.Settings
	Logger   ports.Logger

	// bootstrap buffers entries logged before the configured logger exists.
	bootstrap *logging.Recorder
	closers   []io.Closer
}

func newAppContext() *AppContext {
	return &AppContext{
		flags:     &rootFlags{},
		bootstrap: logging.NewRecorder(0),
	}
}

// Setup loads settings and opens the logger. It is called once per command.
func (a *AppContext) Setup(cmd *cobra.Command, target logTarget) error {
	if a.Logger != nil {
		return nil
	}
	ctx := context.Background()

	path := a.flags.configPath
	if path == "" {
		if def, err := config.DefaultSettingsPath(); err == nil {
			path = def
		} else {
			a.bootstrap.Warn(ctx, "settings path unavailable", "error", err)
		}
	}

	settings, found, err := config.LoadSettings(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !found && a.flags.configPath != "" {
		return fmt.Errorf("load settings: %s does not exist", a.flags.configPath)
	}
	if found {
		a.bootstrap.Debug(ctx, "settings loaded", "path", path)
	} else {
		a.bootstrap.Debug(ctx, "settings file not found, using defaults", "path", path)
	}
	a.applyFlags(settings)
	if err := config.ValidateSettings(settings); err != nil {
		return err
	}
	a.Settings = settings

	writer, err := a.logWriter(cmd, target)
	if err != nil {
		return err
	}

	log, err := newLogger(settings.Log, writer)
	if err != nil {
		return err
	}
	a.Logger = log
	a.bootstrap.Flush(log)
	return nil
}

func (a *AppContext) applyFlags(settings *config.Settings) {
	if a.flags.verbose {
		settings.Log.Level = "debug"
	}
	if a.flags.logFormat != "" {
		settings.Log.Format = strings.ToLower(a.flags.logFormat)
	}
	if a.flags.logFile != "" {
		settings.Log.File = a.flags.logFile
	}
}

func (a *AppContext) logWriter(cmd *cobra.Command, target logTarget) (io.Writer, error) {
	path := a.Settings.Log.File
	if path == "" && target == logToStderr {
		return cmd.ErrOrStderr(), nil
	}
	if path == "" {
		def, err := config.DefaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = def
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	a.closers = append(a.closers, file)
	return file, nil
}

func newLogger(settings config.LogSettings, w io.Writer) (ports.Logger, error) {
	if settings.Format == config.LogFormatJSON {
		log, err := logger.New(logger.Options{Level: settings.Level, Writer: w, Component: "imagepick"})
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		return log, nil
	}
	log, err := logging.New(logging.Options{Writer: w, Level: settings.Level, Component: "imagepick"})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger tagged with the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	log := a.Logger
	log = logging.OrNoOp(log)
	return ctx, log.With("command", name)
}

// Close releases log files. It is safe to call more than once.
func (a *AppContext) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// ============================================================================
// ngc - RS274/NGC Parser Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the CLI logger from config
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, usually the command being run
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output writer (default: stderr, so rendered results on stdout stay clean)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Correlation ID attached to every entry. A random one is generated when
	// empty.
	CorrelationID string

	// EnableCaller adds file and line to every entry
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig builds a LoggerConfig from the application config. verbose
// lowers the level to debug.
func FromConfig(name string, cfg config.LoggingConfig, verbose bool) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	if cfg.Format != "" {
		lc.Format = cfg.Format
	}
	if verbose {
		lc.Level = "debug"
		lc.EnableCaller = true
	}
	return lc
}

// NewLogger creates a new foundation logger tagged with a correlation id
func NewLogger(cfg LoggerConfig) *ngclog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	logger := ngclog.NewWithConfig(ngclog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})

	return logger.WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *ngclog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewCorrelationID returns a fresh id for one CLI run
func NewCorrelationID() string {
	return uuid.NewString()
}

// parseLevel converts a string level to ngclog.Level, falling back to warn
func parseLevel(level string) ngclog.Level {
	l, err := ngclog.ParseLevel(level)
	if err != nil {
		return ngclog.LevelWarn
	}
	return l
}

// parseFormat converts a string format to ngclog.Format, falling back to text
func parseFormat(format string) ngclog.Format {
	f, err := ngclog.ParseFormat(format)
	if err != nil {
		return ngclog.FormatText
	}
	return f
}

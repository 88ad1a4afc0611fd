// ============================================================================
// tsl - TSL Whitespace Transcoder
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the tools' loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	tsllog "github.com/msto63/tsl/foundation/core/log"
	"github.com/msto63/tsl/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name is the logger name, usually the binary
	Name string

	// Level (trace, debug, info, warn, error, fatal)
	Level string

	// Format (json, text, console, logfmt)
	Format string

	// Output defaults to stderr; stdout belongs to the transcoder output
	Output io.Writer

	// RunID tags every entry; a random one is generated when empty
	RunID string

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

// FromConfig derives a logger configuration from the application config
func FromConfig(cfg *config.Config) LoggerConfig {
	lc := DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	return lc
}

// NewLogger creates a foundation logger tagged with a run ID
func NewLogger(cfg LoggerConfig) *tsllog.Logger {
	level, err := tsllog.ParseLevel(cfg.Level)
	if err != nil {
		level = tsllog.LevelWarn
	}

	format, err := tsllog.ParseFormat(cfg.Format)
	if err != nil {
		format = tsllog.FormatText
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	return tsllog.NewWithConfig(tsllog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	}).WithField("run_id", runID)
}

// NewRunID returns a fresh identifier for one invocation
func NewRunID() string {
	return uuid.New().String()
}

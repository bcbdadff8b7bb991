// Package log provides structured logging for the ngc foundation.
//
// Package: log
// Title: ngc Structured Logging
// Description: Leveled, structured logging with contextual fields and JSON,
//              text, console and logfmt output. The parser and evaluator take
//              a *Logger through their options and tag entries with a
//              component field; the CLI adds a correlation id per run.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Usage:
//
//	import ngclog "github.com/msto63/ngc/foundation/core/log"
//
//	logger := ngclog.NewWithConfig(ngclog.Config{
//		Level:  ngclog.LevelDebug,
//		Format: ngclog.FormatText,
//		Output: os.Stderr,
//		Name:   "ngc",
//	}).WithField("component", "ngc-parser")
//
//	timer := logger.StartTimer("parse program")
//	defer timer.Stop()
package log

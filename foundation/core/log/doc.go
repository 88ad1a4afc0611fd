// Package log provides structured logging for the tsl tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output, persistent context fields, integration with
//              the structured error type and a timer for measuring
//              operations. Loggers are immutable: the With* methods return
//              a configured copy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Removed async buffering, audit level and request context
//
// Usage:
//   import tsllog "github.com/msto63/tsl/foundation/core/log"
//
//   logger := tsllog.NewWithConfig(tsllog.Config{
//     Level:  tsllog.LevelDebug,
//     Format: tsllog.FormatLogfmt,
//     Output: os.Stderr,
//     Name:   "tsl",
//   }).WithField("run_id", runID)
//
//   timer := logger.StartTimer("decode")
//   stats, err := transcode.Decode(os.Stdin, os.Stdout)
//   if err != nil {
//     timer.StopWithError(err)
//     return err
//   }
//   timer.WithFields(tsllog.Fields{"lines": stats.Lines}).Stop()
package log

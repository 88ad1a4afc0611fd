// Package error provides structured errors for the tsl tools.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a machine-readable code, a severity, the
//              operation that failed and free-form details. They wrap a
//              cause and participate in errors.Is / errors.As through
//              Unwrap, so callers can keep using the standard library
//              helpers while loggers get the extra context.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-17 v0.2.0: Reduced to the codes used by the transcoder tools
//
// Usage:
//   import tslerror "github.com/msto63/tsl/foundation/core/error"
//
//   if _, err := r.Read(buf); err != nil {
//     return tslerror.Wrap(err, "reading input").
//       WithCode(tslerror.CodeReadFailed).
//       WithOperation("transcode.ReadLines")
//   }
package error

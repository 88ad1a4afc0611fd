// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the transcoder tools for
//              classifying I/O and configuration failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Stream and configuration codes only

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Streams
	CodeReadFailed  Code = "READ_FAILED"
	CodeWriteFailed Code = "WRITE_FAILED"

	// Configuration
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeInvalidFormat Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeReadFailed, CodeWriteFailed:
		return "io"
	case CodeInvalidConfig, CodeInvalidFormat:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a CLI should use for the code
func (c Code) ExitCode() int {
	switch c {
	case CodeReadFailed, CodeWriteFailed:
		return 74 // EX_IOERR
	case CodeInvalidConfig, CodeInvalidFormat, CodeNotFound:
		return 78 // EX_CONFIG
	default:
		return 1
	}
}

// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that loggers can pick
//              an appropriate level when reporting them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.2.0: Severity mapping for stream and configuration codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error, e.g. a bad flag value
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround
	SeverityMedium

	// SeverityHigh indicates that the current run cannot produce output
	SeverityHigh

	// SeverityCritical indicates a broken installation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeReadFailed, CodeWriteFailed:
		return SeverityHigh
	case CodeInvalidConfig:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeInvalidFormat:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

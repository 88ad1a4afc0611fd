// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-17 v0.2.0: Stream and configuration codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("config file not found: %s", "tsl.toml")
	if err.Error() != "config file not found: tsl.toml" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("short write").WithCode(CodeWriteFailed),
			message: "wrapper message",
			wantMsg: "wrapper message: short write",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if inner, ok := tt.err.(*Error); ok {
				if wrapped.Code() != inner.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
				}
				if wrapped.Severity() != inner.Severity() {
					t.Errorf("Severity() = %v, want %v", wrapped.Severity(), inner.Severity())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := io.ErrUnexpectedEOF
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: unexpected EOF"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, io.ErrUnexpectedEOF) {
		t.Error("errors.Is() should find original error")
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		code     Code
		severity Severity
	}{
		{CodeReadFailed, SeverityHigh},
		{CodeWriteFailed, SeverityHigh},
		{CodeInvalidConfig, SeverityMedium},
		{CodeInvalidFormat, SeverityLow},
		{CodeNotFound, SeverityLow},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("test error").WithCode(tt.code)

			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}
			if err.Severity() != tt.severity {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.severity)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := New("test error").
		WithDetail("path", "tsl.toml").
		WithDetail("line", 42)

	details := err.Details()

	if len(details) != 2 {
		t.Errorf("Details() length = %d, want 2", len(details))
	}
	if details["path"] != "tsl.toml" {
		t.Errorf("Details()[\"path\"] = %v, want \"tsl.toml\"", details["path"])
	}
	if details["line"] != 42 {
		t.Errorf("Details()[\"line\"] = %v, want 42", details["line"])
	}

	// returned map is a copy
	details["path"] = "other"
	if err.Details()["path"] != "tsl.toml" {
		t.Error("Details() should return a copy")
	}
}

func TestWithOperation(t *testing.T) {
	err := New("test error").WithOperation("transcode.Decode")

	if err.Operation() != "transcode.Decode" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "transcode.Decode")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("broken pipe").WithCode(CodeWriteFailed)
	outer := fmt.Errorf("decode: %w", inner)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", inner, CodeWriteFailed, true},
		{"direct mismatch", inner, CodeReadFailed, false},
		{"through fmt wrapping", outer, CodeWriteFailed, true},
		{"standard error", errors.New("plain"), CodeWriteFailed, false},
		{"nil error", nil, CodeWriteFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	err := fmt.Errorf("context: %w", New("bad").WithCode(CodeInvalidConfig))

	if GetCode(err) != CodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeInvalidConfig)
	}

	plain := errors.New("plain")
	if GetCode(plain) != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", GetCode(plain), CodeUnknown)
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("eof"), "reading input").
		WithCode(CodeReadFailed).
		WithOperation("transcode.ReadLines").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: reading input",
		"Code: READ_FAILED",
		"Severity: high",
		"Operation: transcode.ReadLines",
		"Details: {a=1, b=2}",
		"Cause: eof",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("broken pipe"), "writing output").
		WithCode(CodeWriteFailed).
		WithOperation("transcode.Decode")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if decoded["code"] != "WRITE_FAILED" {
		t.Errorf("code = %v, want WRITE_FAILED", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v, want high", decoded["severity"])
	}
	if decoded["operation"] != "transcode.Decode" {
		t.Errorf("operation = %v, want transcode.Decode", decoded["operation"])
	}
	if decoded["cause"] != "broken pipe" {
		t.Errorf("cause = %v, want broken pipe", decoded["cause"])
	}
}

func TestCode_Classification(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeReadFailed, "io", 74},
		{CodeWriteFailed, "io", 74},
		{CodeInvalidConfig, "configuration", 78},
		{CodeInvalidFormat, "configuration", 78},
		{CodeNotFound, "generic", 78},
		{CodeUnknown, "generic", 1},
		{Code("BOGUS"), "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %v, want %v", got, tt.exit)
			}
		})
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ============================================================================
// tsl - TSL Whitespace Transcoder
// ============================================================================
//
// Package:     transcode
// Description: Translation of TSL notation into literal whitespace
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package transcode converts TSL notation into whitespace and back.
//
// In TSL source every T stands for a tab, every S for a space and every L
// for a newline. A # starts a comment that runs to the end of the line.
// Every other character is ignored, so letters, digits and the line breaks
// of the source itself never reach the output.
package transcode

import (
	"strings"
)

// Code characters and the comment delimiter
const (
	CodeTab     = 'T'
	CodeSpace   = 'S'
	CodeNewline = 'L'
	Comment     = '#'
)

// StripComment returns line up to, not including, the first '#'.
// Lines without a comment are returned unchanged.
func StripComment(line string) string {
	if i := strings.IndexByte(line, Comment); i >= 0 {
		return line[:i]
	}
	return line
}

// Whitespace returns the character a code stands for
func Whitespace(code rune) (rune, bool) {
	switch code {
	case CodeTab:
		return '\t', true
	case CodeSpace:
		return ' ', true
	case CodeNewline:
		return '\n', true
	default:
		return 0, false
	}
}

// TranslateLine translates the code characters of an already stripped
// line and drops everything else.
func TranslateLine(code string) string {
	var sb strings.Builder
	translateInto(&sb, code)
	return sb.String()
}

// Line strips the comment from a raw input line and translates the rest
func Line(line string) string {
	return TranslateLine(StripComment(line))
}

// Transcode translates lines in order and concatenates the results
// without any separator.
func Transcode(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		translateInto(&sb, StripComment(line))
	}
	return sb.String()
}

func translateInto(sb *strings.Builder, code string) {
	for i := 0; i < len(code); i++ {
		// all code characters are ASCII, multi-byte runes never match
		if ws, ok := Whitespace(rune(code[i])); ok {
			sb.WriteByte(byte(ws))
		}
	}
}

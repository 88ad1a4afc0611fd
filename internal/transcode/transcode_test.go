package transcode

import (
	"strings"
	"testing"
)

func TestTranscode(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"all three codes", []string{"TSL"}, "\t \n"},
		{"comment discarded, no separator", []string{"TT#comment", "SS"}, "\t\t  "},
		{"empty line", []string{""}, ""},
		{"no lines", nil, ""},
		{"unknown characters", []string{"XYZ123"}, ""},
		{"terminators dropped", []string{"T\n", "S\n"}, "\t "},
		{"crlf terminators dropped", []string{"T\r\n", "L\r\n"}, "\t\n"},
		{"comment only", []string{"# heading\n"}, ""},
		{"codes in comment ignored", []string{"S# TSL\n"}, " "},
		{"second hash inside comment", []string{"L#a#T"}, "\n"},
		{"lowercase is not a code", []string{"tsl"}, ""},
		{"mixed noise", []string{"push S S T L"}, "  \t\n"},
		{"bare hash without terminator", []string{"#"}, ""},
		{"multibyte runes ignored", []string{"äTßS€L"}, "\t \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transcode(tt.lines); got != tt.expected {
				t.Errorf("Transcode(%q) = %q, want %q", tt.lines, got, tt.expected)
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		line     string
		expected string
	}{
		{"TSL", "TSL"},
		{"TT#comment", "TT"},
		{"#", ""},
		{"a#b#c", "a"},
		{"", ""},
		{"no comment\n", "no comment\n"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := StripComment(tt.line); got != tt.expected {
				t.Errorf("StripComment(%q) = %q, want %q", tt.line, got, tt.expected)
			}
		})
	}
}

func TestStripComment_IdentityWithoutHash(t *testing.T) {
	for _, line := range []string{"", "TSL", "STL\n", "abc 123", "T\tS L\r\n"} {
		if got := StripComment(line); got != line {
			t.Errorf("StripComment(%q) = %q, want identity", line, got)
		}
	}
}

func TestTranscode_AppendedCommentIsIgnored(t *testing.T) {
	bases := [][]string{
		{"TSL"},
		{"SST", "LLT"},
		{"", "S"},
		{"noise T noise"},
	}
	comments := []string{"#", "# plain", "#TSL", "# T S L"}

	for _, base := range bases {
		want := Transcode(base)
		for _, comment := range comments {
			commented := make([]string, len(base))
			for i, line := range base {
				commented[i] = line + comment
			}
			if got := Transcode(commented); got != want {
				t.Errorf("Transcode(%q) = %q, want %q", commented, got, want)
			}
		}
	}
}

func TestTranscode_Deterministic(t *testing.T) {
	lines := []string{"SSL # push\n", "TLS\n", "LLL"}
	first := Transcode(lines)
	for i := 0; i < 5; i++ {
		if got := Transcode(lines); got != first {
			t.Fatalf("run %d = %q, want %q", i, got, first)
		}
	}
}

func TestTranscode_OutputAlphabet(t *testing.T) {
	input := []string{"The Quick Brown Fox # Jumps\n", "Over The Lazy Dog 123 !?\n"}
	out := Transcode(input)
	if strings.Trim(out, "\t \n") != "" {
		t.Errorf("output contains non-whitespace: %q", out)
	}
}

func TestLine(t *testing.T) {
	if got := Line("STL# trailing\n"); got != " \t\n" {
		t.Errorf("Line() = %q, want %q", got, " \t\n")
	}
	if got := TranslateLine("S#T"); got != " \t" {
		t.Errorf("TranslateLine() must not strip comments itself, got %q, want %q", got, " \t")
	}
}

func TestWhitespace(t *testing.T) {
	tests := []struct {
		code rune
		ws   rune
		ok   bool
	}{
		{'T', '\t', true},
		{'S', ' ', true},
		{'L', '\n', true},
		{'t', 0, false},
		{'#', 0, false},
		{'\n', 0, false},
	}

	for _, tt := range tests {
		ws, ok := Whitespace(tt.code)
		if ws != tt.ws || ok != tt.ok {
			t.Errorf("Whitespace(%q) = (%q, %v), want (%q, %v)", tt.code, ws, ok, tt.ws, tt.ok)
		}
	}
}

func TestAnalyze(t *testing.T) {
	stats := Analyze([]string{"TT#comment\n", "SS\n", "L x\n", "#only"})

	expected := Stats{
		Lines:        4,
		CommentLines: 2,
		Tabs:         2,
		Spaces:       2,
		Newlines:     1,
		// "\n" of line 2, " x\n" of line 3
		Ignored: 4,
	}
	if stats != expected {
		t.Errorf("Analyze() = %+v, want %+v", stats, expected)
	}
	if stats.Bytes() != 5 {
		t.Errorf("Bytes() = %d, want 5", stats.Bytes())
	}
}

func TestAnalyze_MatchesTranscode(t *testing.T) {
	lines := []string{"SSL # push\n", "TLS\n", "LLL", "junk\n"}
	if got, want := Analyze(lines).Bytes(), len(Transcode(lines)); got != want {
		t.Errorf("Analyze().Bytes() = %d, len(Transcode()) = %d", got, want)
	}
}

package transcode

import (
	"io"
	"strings"

	tslerror "github.com/msto63/tsl/foundation/core/error"
)

// EncodeOptions controls how whitespace is rendered as TSL
type EncodeOptions struct {
	// BreakLines puts a real line break after every L so the encoded
	// text keeps the line structure of the input.
	BreakLines bool
}

// Encode renders the tabs, spaces and newlines of text as TSL codes.
// All other characters are dropped, so Transcode of the encoded lines
// returns exactly the whitespace of text.
func Encode(text string, opts EncodeOptions) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '\t':
			sb.WriteByte(CodeTab)
		case ' ':
			sb.WriteByte(CodeSpace)
		case '\n':
			sb.WriteByte(CodeNewline)
			if opts.BreakLines {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// EncodeTo reads all of r, encodes it and writes the result to w with a
// single Write.
func EncodeTo(r io.Reader, w io.Writer, opts EncodeOptions) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return tslerror.Wrap(err, "reading input").
			WithCode(tslerror.CodeReadFailed).
			WithOperation("transcode.EncodeTo")
	}
	return writeAll(w, Encode(string(data), opts), "transcode.EncodeTo")
}

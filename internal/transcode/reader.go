package transcode

import (
	"bufio"
	"io"

	tslerror "github.com/msto63/tsl/foundation/core/error"
)

// ReadLines reads r to the end and splits it into lines. Each line keeps
// its trailing newline; the last line lacks one when the input does not
// end with a newline. Empty input yields no lines.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, tslerror.Wrap(err, "reading input").
				WithCode(tslerror.CodeReadFailed).
				WithOperation("transcode.ReadLines").
				WithDetail("lines_read", len(lines))
		}
	}
}

// Decode reads all of r, transcodes it and writes the result to w with a
// single Write. Nothing is written for empty output.
func Decode(r io.Reader, w io.Writer) (Stats, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return Stats{}, err
	}

	stats := Analyze(lines)
	out := Transcode(lines)

	if err := writeAll(w, out, "transcode.Decode"); err != nil {
		return stats, err
	}
	return stats, nil
}

func writeAll(w io.Writer, out, operation string) error {
	if out == "" {
		return nil
	}

	n, err := w.Write([]byte(out))
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return tslerror.Wrap(err, "writing output").
			WithCode(tslerror.CodeWriteFailed).
			WithOperation(operation).
			WithDetail("bytes_written", n).
			WithDetail("bytes_total", len(out))
	}
	return nil
}

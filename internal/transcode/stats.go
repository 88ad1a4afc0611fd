package transcode

// Stats summarizes one transcoding pass
type Stats struct {
	// Lines is the number of input lines
	Lines int
	// CommentLines counts lines that contain a '#'
	CommentLines int

	Tabs     int
	Spaces   int
	Newlines int

	// Ignored counts characters before the comment that are not codes,
	// line terminators included
	Ignored int
}

// Bytes returns the size of the transcoded output
func (s Stats) Bytes() int {
	return s.Tabs + s.Spaces + s.Newlines
}

// Analyze computes the statistics Transcode(lines) would produce
func Analyze(lines []string) Stats {
	var s Stats
	for _, line := range lines {
		s.Lines++

		code := StripComment(line)
		if len(code) < len(line) {
			s.CommentLines++
		}

		for _, r := range code {
			switch r {
			case CodeTab:
				s.Tabs++
			case CodeSpace:
				s.Spaces++
			case CodeNewline:
				s.Newlines++
			default:
				s.Ignored++
			}
		}
	}
	return s
}

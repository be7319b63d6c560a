package transcript

import (
	"regexp"
	"strings"
)

var (
	// Matches a cue timing line: 00:00:05.579 --> 00:00:06.858
	vttTimingRegex = regexp.MustCompile(`\s+-->\s+`)

	// Inline cue markup such as <v Speaker>, <i>, <c.yellow>
	vttTagRegex = regexp.MustCompile(`<[^>]+>`)

	lineBreakRegex = regexp.MustCompile(`\r?\n`)
)

// NormalizeVTT converts a WebVTT document into plain text, one line per cue.
// Cue identifiers, timings and inline markup are dropped and a cue's text
// lines are joined with a space. Input without timing lines yields "".
func NormalizeVTT(raw string) string {
	lines := lineBreakRegex.Split(raw, -1)
	out := make([]string, 0, len(lines)/3)

	for i := 0; i < len(lines); i++ {
		if !vttTimingRegex.MatchString(strings.TrimSpace(lines[i])) {
			continue
		}

		j := i + 1
		cue := make([]string, 0, 2)
		for ; j < len(lines); j++ {
			l := strings.TrimSpace(lines[j])
			if l == "" {
				break
			}
			cue = append(cue, vttTagRegex.ReplaceAllString(l, ""))
		}
		i = j

		if len(cue) == 0 {
			continue
		}
		text := strings.Join(cue, " ")
		// Zoom repeats a caption when a speaker pauses mid-sentence.
		if n := len(out); n > 0 && out[n-1] == text {
			continue
		}
		out = append(out, text)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

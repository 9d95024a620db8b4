package transcriber

import (
	"fmt"
	"regexp"
	"strings"
)

// Segment is one timestamped fragment of the transcript.
type Segment struct {
	Start string // HH:MM:SS
	Text  string
}

var reSrtTiming = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}),\d{3}\s+-->\s+\d{2}:\d{2}:\d{2},\d{3}`)

// parseSRT extracts timestamped segments from SRT subtitle content.
func parseSRT(content string) []Segment {
	var segments []Segment

	blocks := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		var start string
		var textLines []string

		for _, line := range strings.Split(block, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if m := reSrtTiming.FindStringSubmatch(trimmed); m != nil {
				start = m[1]
				continue
			}
			if start == "" {
				// sequence number before the timing line
				continue
			}
			textLines = append(textLines, trimmed)
		}

		if start != "" && len(textLines) > 0 {
			segments = append(segments, Segment{
				Start: start,
				Text:  strings.Join(textLines, " "),
			})
		}
	}

	return segments
}

// formatTranscript renders segments as timestamped paragraphs. The
// double square bracket markers are the documentation convention for
// meeting transcripts.
func formatTranscript(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		fmt.Fprintf(&b, "[[%s]]\n%s\n\n", seg.Start, seg.Text)
	}
	return b.String()
}

// plainText joins segment texts into one block for pasting into an
// external assistant.
func plainText(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, " ")
}

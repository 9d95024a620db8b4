package uploader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LinkLog is the append-only text file mapping meetings to their
// published video URLs. One line per upload: "<n> - <date> - <url>".
type LinkLog struct {
	path string
}

// NewLinkLog creates a link log at path. The file is created on first
// append.
func NewLinkLog(path string) *LinkLog {
	return &LinkLog{path: path}
}

// Append records one published meeting.
func (l *LinkLog) Append(number int, date, url string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open link log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d - %s - %s\n", number, date, url); err != nil {
		return fmt.Errorf("append link log: %w", err)
	}
	return nil
}

// NextNumber derives the next meeting number from the last log line,
// falling back to line count when the line does not parse.
func (l *LinkLog) NextNumber() int {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 1
	}

	lines := nonEmptyLines(string(data))
	if len(lines) == 0 {
		return 1
	}

	last := lines[len(lines)-1]
	if idx := strings.Index(last, " - "); idx > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(last[:idx])); err == nil {
			return n + 1
		}
	}

	return len(lines) + 1
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

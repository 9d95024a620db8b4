package meeting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Artifact names fixed by convention inside a meeting directory.
const (
	HighlightsPromptName = "prompt_01_highlights.txt"
	SummaryPromptName    = "prompt_02_summary.txt"
	MetadataPromptName   = "prompt_03_metadata.txt"
	HighlightsName       = "highlights.md"
	SummaryName          = "meeting-transcript.md"
	LinkName             = "youtube_link.txt"
	ReadmeName           = "README.md"
)

// Meeting groups every artifact of one recorded meeting. Number is 0
// for unnumbered weekly meetings.
type Meeting struct {
	Date   time.Time
	Number int
	Dir    string
}

// Store resolves meeting directories and input files on disk. It is a
// filesystem convention only, no locking.
type Store struct {
	root   string
	output string
}

// NewStore creates a Store rooted at the project root with artifact
// directories under output.
func NewStore(root, output string) *Store {
	return &Store{root: root, output: output}
}

// ResolveAudio validates the audio input. The path is tried as given
// first and then relative to the project root; a miss on both is a
// missing-input error, reported before any external tool runs.
func (s *Store) ResolveAudio(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return filepath.Abs(path)
	}

	rooted := filepath.Join(s.root, path)
	if _, err := os.Stat(rooted); err == nil {
		return filepath.Abs(rooted)
	}

	return "", fmt.Errorf("audio file not found: %s", path)
}

// MeetingFor computes the meeting directory for a date and optional
// number. The result is a pure function of its inputs so repeated runs
// land in the same directory.
func (s *Store) MeetingFor(date string, number int) (*Meeting, error) {
	dt, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	var dir string
	if number > 0 {
		dir = filepath.Join(s.output, fmt.Sprintf("meeting_%d_%s", number, dt.Format("2006-01-02")))
	} else {
		start, end := weekWindow(dt)
		dir = filepath.Join(s.output, fmt.Sprintf("week_%02d_%02d", start.Day(), end.Day()))
	}

	return &Meeting{Date: dt, Number: number, Dir: dir}, nil
}

// ResolveAgainstRoot resolves a relative path against the project root.
func (s *Store) ResolveAgainstRoot(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.root, path)
}

func parseDate(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	dt, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return dt, nil
}

// weekWindow returns the Monday and Sunday bracketing t.
func weekWindow(t time.Time) (time.Time, time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the window
	}
	start := t.AddDate(0, 0, -(weekday - 1))
	end := start.AddDate(0, 0, 6)
	return start, end
}

// EnsureDir creates the meeting directory.
func (m *Meeting) EnsureDir() error {
	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return fmt.Errorf("create meeting directory %s: %w", m.Dir, err)
	}
	return nil
}

// Artifact returns the path of a named artifact inside the meeting
// directory.
func (m *Meeting) Artifact(name string) string {
	return filepath.Join(m.Dir, name)
}

func (m *Meeting) TranscriptPath(stem string) string { return m.Artifact(stem + "_transcript.txt") }
func (m *Meeting) PlainPath(stem string) string      { return m.Artifact(stem + "_plain.txt") }
func (m *Meeting) SubtitlePath(stem string) string   { return m.Artifact(stem + ".srt") }
func (m *Meeting) DocxPath(stem string) string       { return m.Artifact(stem + "_transcript.docx") }
func (m *Meeting) VideoPath(stem string) string      { return m.Artifact(stem + ".mp4") }
func (m *Meeting) LogPath(stem string) string        { return m.Artifact(stem + "_log.txt") }

// DateString formats the meeting date for titles and file content.
func (m *Meeting) DateString() string {
	return m.Date.Format("2006-01-02")
}

// Stem strips directory and extension from an audio path. Artifact
// names are derived from it.
func Stem(audioPath string) string {
	base := filepath.Base(audioPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Exists reports whether an artifact is already on disk. Its presence
// signals that the producing step is complete.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

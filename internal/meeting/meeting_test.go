package meeting

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMeetingForDeterministic(t *testing.T) {
	s := NewStore(".", "out")

	first, err := s.MeetingFor("2025-11-28", 0)
	if err != nil {
		t.Fatalf("MeetingFor() error = %v", err)
	}
	second, err := s.MeetingFor("2025-11-28", 0)
	if err != nil {
		t.Fatalf("MeetingFor() error = %v", err)
	}

	if first.Dir != second.Dir {
		t.Errorf("directory not deterministic: %q vs %q", first.Dir, second.Dir)
	}
}

func TestMeetingForLayout(t *testing.T) {
	s := NewStore(".", "out")

	tests := []struct {
		name    string
		date    string
		number  int
		wantDir string
	}{
		// 2025-11-28 is a Friday; its week runs Mon 24 .. Sun 30
		{"weekly window", "2025-11-28", 0, filepath.Join("out", "week_24_30")},
		{"numbered meeting", "2025-11-28", 7, filepath.Join("out", "meeting_7_2025-11-28")},
		// 2025-11-30 is a Sunday and must close the same window
		{"sunday stays in window", "2025-11-30", 0, filepath.Join("out", "week_24_30")},
		// window crossing a month boundary keeps day-of-month naming
		{"month boundary", "2025-12-01", 0, filepath.Join("out", "week_01_07")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := s.MeetingFor(tt.date, tt.number)
			if err != nil {
				t.Fatalf("MeetingFor() error = %v", err)
			}
			if m.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", m.Dir, tt.wantDir)
			}
		})
	}
}

func TestMeetingForInvalidDate(t *testing.T) {
	s := NewStore(".", "out")
	if _, err := s.MeetingFor("28.11.2025", 0); err == nil {
		t.Error("MeetingFor() should reject non ISO dates")
	}
}

func TestResolveAudio(t *testing.T) {
	root := t.TempDir()
	audio := filepath.Join(root, "nagranie.mkv")
	if err := os.WriteFile(audio, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(root, filepath.Join(root, "out"))

	got, err := s.ResolveAudio(audio)
	if err != nil {
		t.Fatalf("ResolveAudio() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ResolveAudio() = %q, want absolute path", got)
	}

	// Relative to project root
	got, err = s.ResolveAudio("nagranie.mkv")
	if err != nil {
		t.Fatalf("ResolveAudio() relative error = %v", err)
	}
	if filepath.Base(got) != "nagranie.mkv" {
		t.Errorf("ResolveAudio() = %q", got)
	}

	if _, err := s.ResolveAudio("missing.mkv"); err == nil {
		t.Error("ResolveAudio() should fail for missing file")
	}
}

func TestArtifactNames(t *testing.T) {
	s := NewStore(".", "out")
	m, err := s.MeetingFor("2025-11-28", 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := m.TranscriptPath("spotkanie"); filepath.Base(got) != "spotkanie_transcript.txt" {
		t.Errorf("TranscriptPath = %q", got)
	}
	if got := m.VideoPath("spotkanie"); filepath.Base(got) != "spotkanie.mp4" {
		t.Errorf("VideoPath = %q", got)
	}
	if got := m.Artifact(HighlightsPromptName); filepath.Base(got) != "prompt_01_highlights.txt" {
		t.Errorf("HighlightsPrompt = %q", got)
	}
}

func TestStem(t *testing.T) {
	if got := Stem("/tmp/audio/meeting.mkv"); got != "meeting" {
		t.Errorf("Stem() = %q, want meeting", got)
	}
	if got := Stem("nagranie.2025.mp3"); got != "nagranie.2025" {
		t.Errorf("Stem() = %q, want nagranie.2025", got)
	}
}

// Package prompts fills fixed text templates with transcript and notes
// content. The output is pasted into an external assistant by the
// operator; nothing here calls an AI service.
package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/meeting"
)

// Highlights renders the highlights prompt with the transcript
// substituted exactly once.
func Highlights(transcript string) string {
	return strings.Replace(highlightsTemplate, transcriptMark, transcript, 1)
}

// Summary renders the full-summary prompt. Empty notes become an
// explicit BRAK marker so the assistant knows none were taken.
func Summary(transcript, notes, date string) string {
	if strings.TrimSpace(notes) == "" {
		notes = "BRAK"
	}
	out := strings.Replace(summaryTemplate, dateMark, date, 1)
	out = strings.Replace(out, notesMark, notes, 1)
	return strings.Replace(out, transcriptMark, transcript, 1)
}

// Metadata renders the YouTube title/description prompt.
func Metadata(date, highlights string) string {
	out := strings.Replace(metadataTemplate, dateMark, date, 1)
	return strings.Replace(out, highlightsMark, highlights, 1)
}

// WriteAll writes the highlights and summary prompt files into dir and
// returns their paths.
func WriteAll(dir, transcript, notes, date string) ([]string, error) {
	files := []struct {
		name    string
		content string
	}{
		{meeting.HighlightsPromptName, Highlights(transcript)},
		{meeting.SummaryPromptName, Summary(transcript, notes, date)},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return nil, fmt.Errorf("write prompt %s: %w", f.name, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// WriteMetadata writes the video metadata prompt. It needs the
// highlights produced by the operator from the first prompt, so it is
// generated separately once those exist.
func WriteMetadata(dir, date, highlights string) (string, error) {
	path := filepath.Join(dir, meeting.MetadataPromptName)
	if err := os.WriteFile(path, []byte(Metadata(date, highlights)), 0644); err != nil {
		return "", fmt.Errorf("write prompt %s: %w", meeting.MetadataPromptName, err)
	}
	return path, nil
}

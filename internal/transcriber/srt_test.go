package transcriber

import (
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:04,500
Witam wszystkich na dzisiejszym spotkaniu.

2
00:00:04,500 --> 00:00:09,000
Dzisiaj omówimy plany
na następny tydzień.

3
00:01:30,200 --> 00:01:35,000
Pierwsza rzecz to projekt badawczy.
`

func TestParseSRT(t *testing.T) {
	segments := parseSRT(sampleSRT)

	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	if segments[0].Start != "00:00:00" {
		t.Errorf("Start = %q, want 00:00:00", segments[0].Start)
	}
	if segments[1].Text != "Dzisiaj omówimy plany na następny tydzień." {
		t.Errorf("multi-line text not joined: %q", segments[1].Text)
	}
	if segments[2].Start != "00:01:30" {
		t.Errorf("Start = %q, want 00:01:30", segments[2].Start)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	if got := parseSRT(""); len(got) != 0 {
		t.Errorf("got %d segments for empty input", len(got))
	}
}

func TestFormatTranscript(t *testing.T) {
	segments := []Segment{
		{Start: "00:00:00", Text: "Pierwszy fragment."},
		{Start: "00:02:30", Text: "Drugi fragment."},
	}

	got := formatTranscript(segments)

	want := "[[00:00:00]]\nPierwszy fragment.\n\n[[00:02:30]]\nDrugi fragment.\n\n"
	if got != want {
		t.Errorf("formatTranscript() = %q, want %q", got, want)
	}
}

func TestPlainText(t *testing.T) {
	segments := parseSRT(sampleSRT)
	got := plainText(segments)

	if strings.Contains(got, "[[") || strings.Contains(got, "-->") {
		t.Errorf("plain text carries markup: %q", got)
	}
	if !strings.HasPrefix(got, "Witam wszystkich") {
		t.Errorf("unexpected plain text: %q", got)
	}
}

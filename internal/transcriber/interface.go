package transcriber

import "context"

// Transcriber wraps the external speech-to-text tool. One call produces
// the raw subtitle file plus the timestamped and plain transcripts.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, outDir string, opts Options) (*Result, error)
}

// Options override the configured model and language per invocation.
type Options struct {
	Model    string
	Language string
}

// Result lists the artifacts written for one transcription.
type Result struct {
	SubtitlePath   string
	TranscriptPath string
	PlainPath      string
	DocxPath       string
	Segments       int
	Settings       Settings
}

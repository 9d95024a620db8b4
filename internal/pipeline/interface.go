package pipeline

import "context"

// Pipeline drives the meeting post-production steps in order. Each
// step can also run on its own, resuming from whatever artifacts a
// previous run left behind.
type Pipeline interface {
	Process(ctx context.Context, audioPath string, opts ProcessOptions) (*Summary, error)

	Transcribe(ctx context.Context, audioPath string, opts ProcessOptions) error
	ComposeVideo(ctx context.Context, audioPath string, opts ProcessOptions) error
	GeneratePrompts(ctx context.Context, audioPath string, opts ProcessOptions) error
	Upload(ctx context.Context, audioPath string, opts ProcessOptions) (string, error)
}

// ProcessOptions carry the per-run flags. Zero values fall back to the
// configuration file.
type ProcessOptions struct {
	Date       string // YYYY-MM-DD, empty means today
	Number     int    // 0 means unnumbered weekly meeting
	NotesPath  string // optional manual notes fed into the summary prompt
	Background string // override for the background image
	Model      string // override for the speech model
	Language   string // override for the transcription language
	Title      string // override for the video title
	Privacy    string // override for the upload privacy status
	Upload     bool   // run the upload step
	Force      bool   // redo steps whose artifacts already exist
}

// StepStatus records what happened to one step of a run.
type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepSkipped StepStatus = "skipped"
	StepFailed  StepStatus = "failed"
)

// StepResult is one line of the run summary.
type StepResult struct {
	Name   string
	Status StepStatus
	Detail string
}

// Summary describes a finished (or aborted) run.
type Summary struct {
	RunID string
	Dir   string
	Stem  string
	Steps []StepResult
}

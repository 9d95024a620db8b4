package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/meeting"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/prompts"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/transcriber"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/uploader"
)

// Process runs transcription, video composition and prompt generation
// for one recording, then optionally the upload. Steps whose artifacts
// already exist are skipped unless Force is set, so a failed run can be
// repeated and picks up where it stopped. The first failing step aborts
// the run; completed artifacts stay on disk.
func (p *implPipeline) Process(ctx context.Context, audioPath string, opts ProcessOptions) (*Summary, error) {
	runID := uuid.NewString()[:8]

	audio, m, err := p.resolve(audioPath, opts)
	if err != nil {
		return nil, err
	}
	stem := meeting.Stem(audio)

	summary := &Summary{RunID: runID, Dir: m.Dir, Stem: stem}
	p.logger.Info(ctx, "[%s] Processing %s into %s", runID, audio, m.Dir)

	steps := []struct {
		name string
		run  func(context.Context, string, ProcessOptions) error
	}{
		{"transcribe", p.Transcribe},
		{"video", p.ComposeVideo},
		{"prompts", p.GeneratePrompts},
	}

	for _, step := range steps {
		err := step.run(ctx, audioPath, opts)
		switch {
		case err == nil:
			summary.Steps = append(summary.Steps, StepResult{Name: step.name, Status: StepDone})
		case isSkip(err):
			summary.Steps = append(summary.Steps, StepResult{Name: step.name, Status: StepSkipped, Detail: err.Error()})
		default:
			summary.Steps = append(summary.Steps, StepResult{Name: step.name, Status: StepFailed, Detail: err.Error()})
			p.writeReadme(ctx, m, stem, summary)
			return summary, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if opts.Upload {
		url, err := p.Upload(ctx, audioPath, opts)
		switch {
		case err == nil:
			summary.Steps = append(summary.Steps, StepResult{Name: "upload", Status: StepDone, Detail: url})
		case isSkip(err):
			summary.Steps = append(summary.Steps, StepResult{Name: "upload", Status: StepSkipped, Detail: err.Error()})
		case errors.Is(err, uploader.ErrNoCredential):
			// Batch jobs cannot log in interactively. The rest of the
			// run is valid, so the upload is skipped, not failed.
			p.logger.Warn(ctx, "Upload skipped: %v", err)
			summary.Steps = append(summary.Steps, StepResult{Name: "upload", Status: StepSkipped, Detail: err.Error()})
		default:
			summary.Steps = append(summary.Steps, StepResult{Name: "upload", Status: StepFailed, Detail: err.Error()})
			p.writeReadme(ctx, m, stem, summary)
			return summary, fmt.Errorf("upload: %w", err)
		}
	}

	p.writeReadme(ctx, m, stem, summary)
	p.logger.Info(ctx, "[%s] Run finished", runID)
	return summary, nil
}

// Transcribe produces the subtitle file and both transcript variants.
func (p *implPipeline) Transcribe(ctx context.Context, audioPath string, opts ProcessOptions) error {
	audio, m, err := p.resolve(audioPath, opts)
	if err != nil {
		return err
	}
	stem := meeting.Stem(audio)

	if !opts.Force && meeting.Exists(m.TranscriptPath(stem)) {
		return skipErr("transcript already exists: %s", m.TranscriptPath(stem))
	}

	result, err := p.transcriber.Transcribe(ctx, audio, m.Dir, transcriber.Options{
		Model:    opts.Model,
		Language: opts.Language,
	})
	if err != nil {
		return err
	}

	p.logger.Info(ctx, "Transcribed %d segments with model %s", result.Segments, result.Settings.Model)
	return nil
}

// ComposeVideo renders the upload video from the audio and the
// configured background image.
func (p *implPipeline) ComposeVideo(ctx context.Context, audioPath string, opts ProcessOptions) error {
	audio, m, err := p.resolve(audioPath, opts)
	if err != nil {
		return err
	}
	stem := meeting.Stem(audio)
	output := m.VideoPath(stem)

	if !opts.Force && meeting.Exists(output) {
		return skipErr("video already exists: %s", output)
	}

	background := opts.Background
	if background == "" {
		background = p.cfg.Paths.Background
	}
	background = p.store.ResolveAgainstRoot(background)

	// Compose probes and logs the duration itself
	return p.composer.Compose(ctx, audio, background, output)
}

// GeneratePrompts writes the highlights and summary prompt files from
// the timestamped transcript. Transcription must have run first.
func (p *implPipeline) GeneratePrompts(ctx context.Context, audioPath string, opts ProcessOptions) error {
	audio, m, err := p.resolve(audioPath, opts)
	if err != nil {
		return err
	}
	stem := meeting.Stem(audio)

	// The metadata prompt depends on highlights.md, which the operator
	// saves after working through the first prompt. Re-running this
	// step once highlights exist fills in the missing third prompt.
	highlights, highlightsErr := os.ReadFile(m.Artifact(meeting.HighlightsName))
	needMetadata := highlightsErr == nil && !meeting.Exists(m.Artifact(meeting.MetadataPromptName))

	if !opts.Force && !needMetadata &&
		meeting.Exists(m.Artifact(meeting.HighlightsPromptName)) &&
		meeting.Exists(m.Artifact(meeting.SummaryPromptName)) {
		return skipErr("prompt files already exist in %s", m.Dir)
	}

	transcript, err := os.ReadFile(m.TranscriptPath(stem))
	if err != nil {
		return fmt.Errorf("read transcript (run transcription first): %w", err)
	}

	notes := ""
	if opts.NotesPath != "" {
		data, err := os.ReadFile(opts.NotesPath)
		if err != nil {
			return fmt.Errorf("read notes %s: %w", opts.NotesPath, err)
		}
		notes = string(data)
	}

	written, err := prompts.WriteAll(m.Dir, string(transcript), notes, m.DateString())
	if err != nil {
		return err
	}

	if highlightsErr == nil {
		path, err := prompts.WriteMetadata(m.Dir, m.DateString(), string(highlights))
		if err != nil {
			return err
		}
		written = append(written, path)
	}

	p.logger.Info(ctx, "Wrote %d prompt files", len(written))
	return nil
}

// Upload publishes the rendered video and records the link. The
// meeting number defaults to the next free number in the link log.
func (p *implPipeline) Upload(ctx context.Context, audioPath string, opts ProcessOptions) (string, error) {
	audio, m, err := p.resolve(audioPath, opts)
	if err != nil {
		return "", err
	}
	stem := meeting.Stem(audio)

	linkFile := m.Artifact(meeting.LinkName)
	if !opts.Force && meeting.Exists(linkFile) {
		data, _ := os.ReadFile(linkFile)
		return strings.TrimSpace(string(data)), skipErr("already uploaded: %s", linkFile)
	}

	video := m.VideoPath(stem)
	if !meeting.Exists(video) {
		return "", fmt.Errorf("video file not found: %s (run the video step first)", video)
	}

	number := opts.Number
	if number <= 0 {
		number = p.links.NextNumber()
	}

	title := opts.Title
	if title == "" {
		title = uploader.MeetingTitle(number, m.DateString())
	}

	highlights := ""
	if data, err := os.ReadFile(m.Artifact(meeting.HighlightsName)); err == nil {
		highlights = string(data)
	}

	result, err := p.uploader.Upload(ctx, uploader.Request{
		VideoPath:   video,
		Title:       title,
		Description: uploader.MeetingDescription(m.DateString(), "", highlights),
		Tags:        p.cfg.YouTube.Tags,
		Privacy:     opts.Privacy,
	})
	if err != nil {
		return "", err
	}

	if err := p.links.Append(number, m.DateString(), result.URL); err != nil {
		p.logger.Warn(ctx, "Failed to record link: %v", err)
	}
	if err := os.WriteFile(linkFile, []byte(result.URL+"\n"), 0644); err != nil {
		p.logger.Warn(ctx, "Failed to write %s: %v", linkFile, err)
	}

	return result.URL, nil
}

func (p *implPipeline) resolve(audioPath string, opts ProcessOptions) (string, *meeting.Meeting, error) {
	audio, err := p.store.ResolveAudio(audioPath)
	if err != nil {
		return "", nil, err
	}

	m, err := p.store.MeetingFor(opts.Date, opts.Number)
	if err != nil {
		return "", nil, err
	}
	if err := m.EnsureDir(); err != nil {
		return "", nil, err
	}

	return audio, m, nil
}

// writeReadme summarizes the run inside the meeting directory so the
// state of a partially processed meeting is visible at a glance.
func (p *implPipeline) writeReadme(ctx context.Context, m *meeting.Meeting, stem string, summary *Summary) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Spotkanie %s\n\n", m.DateString())
	if m.Number > 0 {
		fmt.Fprintf(&b, "Numer spotkania: %d\n\n", m.Number)
	}
	fmt.Fprintf(&b, "Nagranie: %s\n\n", stem)
	b.WriteString("## Przebieg\n\n")
	for _, step := range summary.Steps {
		if step.Detail != "" {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", step.Name, step.Status, step.Detail)
		} else {
			fmt.Fprintf(&b, "- %s: %s\n", step.Name, step.Status)
		}
	}
	fmt.Fprintf(&b, "\nOstatni przebieg: %s (id %s)\n", time.Now().Format(time.RFC3339), summary.RunID)

	if err := os.WriteFile(m.Artifact(meeting.ReadmeName), []byte(b.String()), 0644); err != nil {
		p.logger.Warn(ctx, "Failed to write run summary: %v", err)
	}
}

// stepSkip marks a step whose artifact already exists. Process treats
// it as success.
type stepSkip struct{ msg string }

func (e *stepSkip) Error() string { return e.msg }

func skipErr(format string, args ...any) error {
	return &stepSkip{msg: fmt.Sprintf(format, args...)}
}

func isSkip(err error) bool {
	var s *stepSkip
	return errors.As(err, &s)
}

// Skipped reports whether a step error only means the artifact was
// already in place.
func Skipped(err error) bool { return isSkip(err) }

package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe runs the whisper binary on the audio file and writes the
// subtitle, timestamped transcript and plain text artifacts into
// outDir.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, outDir string, opts Options) (*Result, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio file not found: %s", audioPath)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	override := opts.Model
	if override == "" {
		override = t.cfg.Whisper.Model
	}
	language := opts.Language
	if language == "" {
		language = t.cfg.Whisper.Language
	}

	capability := t.detector.Detect()
	settings := ResolveSettings(capability, override)

	modelFile := t.modelFile(settings.Model)
	if _, err := os.Stat(modelFile); err != nil {
		return nil, fmt.Errorf("whisper model not found: %s", modelFile)
	}

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	outputPrefix := filepath.Join(outDir, stem)

	t.logger.Info(ctx, "Transcribing %s (model=%s, language=%s, threads=%d, gpu=%v)",
		filepath.Base(audioPath), settings.Model, language, settings.Threads, settings.UseGPU)

	args := []string{
		"-m", modelFile,
		"-f", audioPath,
		"-osrt",
		"-l", language,
		"-t", strconv.Itoa(settings.Threads),
		"-bs", strconv.Itoa(settings.BeamSize),
		"--output-file", outputPrefix,
	}
	if !settings.UseGPU {
		args = append(args, "-ng")
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	segments := parseSRT(string(data))

	transcriptPath := filepath.Join(outDir, stem+"_transcript.txt")
	if err := os.WriteFile(transcriptPath, []byte(formatTranscript(segments)), 0644); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}

	plainPath := filepath.Join(outDir, stem+"_plain.txt")
	if err := os.WriteFile(plainPath, []byte(plainText(segments)), 0644); err != nil {
		return nil, fmt.Errorf("write plain text: %w", err)
	}

	result := &Result{
		SubtitlePath:   srtPath,
		TranscriptPath: transcriptPath,
		PlainPath:      plainPath,
		Segments:       len(segments),
		Settings:       settings,
	}

	if t.cfg.Export.Docx {
		docxPath := filepath.Join(outDir, stem+"_transcript.docx")
		if err := writeTranscriptDocx("Transkrypt "+stem, segments, docxPath); err != nil {
			// The text artifacts are the source of truth, keep going
			t.logger.Warn(ctx, "Failed to export transcript docx: %v", err)
		} else {
			result.DocxPath = docxPath
		}
	}

	t.logger.Info(ctx, "Transcription completed: %d segments -> %s", len(segments), transcriptPath)
	return result, nil
}

// modelFile resolves a model name to a file. A name with a path
// separator or .bin suffix is taken as-is, anything else maps into the
// configured model directory.
func (t *implTranscriber) modelFile(model string) string {
	if strings.ContainsRune(model, os.PathSeparator) || strings.HasSuffix(model, ".bin") {
		return model
	}
	return t.cfg.ResolvePath(filepath.Join(t.cfg.Whisper.ModelDir, "ggml-"+model+".bin"))
}

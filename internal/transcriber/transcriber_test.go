package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
)

// fakeExecutor simulates the whisper binary: it records the invocation
// and writes an SRT file at the requested output prefix.
type fakeExecutor struct {
	name string
	args []string
	srt  string
	err  error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	if f.err != nil {
		return "", f.err
	}

	for i, a := range args {
		if a == "--output-file" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".srt", []byte(f.srt), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) Look(name string) (string, error) { return name, nil }

func cpuDetector() *Detector {
	return NewDetectorForTests(
		func(string) (string, error) { return "", errors.New("not found") },
		func(string) ([]byte, error) { return []byte("MemAvailable: 8388608 kB\n"), nil },
		func() int { return 8 },
	)
}

func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Whisper.ModelDir = filepath.Join(dir, "models")
	if err := os.MkdirAll(cfg.Whisper.ModelDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.Whisper.ModelDir, "ggml-small.bin"), []byte("model"), 0644); err != nil {
		t.Fatal(err)
	}

	return cfg, dir
}

func TestTranscribe(t *testing.T) {
	cfg, dir := testConfig(t)

	audio := filepath.Join(dir, "spotkanie.mkv")
	if err := os.WriteFile(audio, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := &fakeExecutor{srt: sampleSRT}
	tr := New(cfg, exec, cpuDetector(), logger.New("error"))

	outDir := filepath.Join(dir, "out")
	result, err := tr.Transcribe(context.Background(), audio, outDir, Options{})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if exec.name != "whisper-cli" {
		t.Errorf("binary = %q, want whisper-cli", exec.name)
	}
	if result.Segments != 3 {
		t.Errorf("Segments = %d, want 3", result.Segments)
	}

	data, err := os.ReadFile(result.TranscriptPath)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if string(data[:12]) != "[[00:00:00]]" {
		t.Errorf("transcript missing timestamp marker: %q", data[:12])
	}

	if _, err := os.Stat(result.PlainPath); err != nil {
		t.Errorf("plain text not written: %v", err)
	}

	// CPU run must disable the GPU on the whisper command line
	found := false
	beamSize := ""
	for i, a := range exec.args {
		if a == "-ng" {
			found = true
		}
		if a == "-bs" && i+1 < len(exec.args) {
			beamSize = exec.args[i+1]
		}
		if a == "-bo" {
			t.Error("best-of flag passed where beam size was intended")
		}
	}
	if !found {
		t.Errorf("args missing -ng: %v", exec.args)
	}
	if beamSize != "5" {
		t.Errorf("beam size = %q, want 5 for the small model", beamSize)
	}
}

func TestTranscribeMissingAudio(t *testing.T) {
	cfg, dir := testConfig(t)

	exec := &fakeExecutor{srt: sampleSRT}
	tr := New(cfg, exec, cpuDetector(), logger.New("error"))

	_, err := tr.Transcribe(context.Background(), filepath.Join(dir, "missing.mkv"), dir, Options{})
	if err == nil {
		t.Fatal("Transcribe() should fail for missing audio")
	}
	if exec.name != "" {
		t.Error("external tool invoked despite missing input")
	}
}

func TestTranscribeMissingModel(t *testing.T) {
	cfg, dir := testConfig(t)

	audio := filepath.Join(dir, "spotkanie.mkv")
	if err := os.WriteFile(audio, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := &fakeExecutor{srt: sampleSRT}
	tr := New(cfg, exec, cpuDetector(), logger.New("error"))

	_, err := tr.Transcribe(context.Background(), audio, dir, Options{Model: "large-v3"})
	if err == nil {
		t.Fatal("Transcribe() should fail when the model file is absent")
	}
	if exec.name != "" {
		t.Error("external tool invoked despite missing model")
	}
}

func TestTranscribeToolFailure(t *testing.T) {
	cfg, dir := testConfig(t)

	audio := filepath.Join(dir, "spotkanie.mkv")
	if err := os.WriteFile(audio, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := &fakeExecutor{err: errors.New("boom")}
	tr := New(cfg, exec, cpuDetector(), logger.New("error"))

	if _, err := tr.Transcribe(context.Background(), audio, dir, Options{}); err == nil {
		t.Fatal("Transcribe() should propagate tool failure")
	}
}

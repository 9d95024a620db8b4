package batch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/scheduler"
)

type fakeSubmitter struct {
	called bool
	spec   scheduler.JobSpec
	jobID  string
	err    error
}

func (f *fakeSubmitter) Submit(ctx context.Context, spec scheduler.JobSpec) (string, error) {
	f.called = true
	f.spec = spec
	return f.jobID, f.err
}

type fakeTokens struct{ present bool }

func (f *fakeTokens) Load() (*oauth2.Token, error) { return &oauth2.Token{}, nil }
func (f *fakeTokens) Save(t *oauth2.Token) error   { return nil }
func (f *fakeTokens) Present() bool                { return f.present }

func newTestRunner(t *testing.T, present bool) (*Runner, *fakeSubmitter, string) {
	t.Helper()
	dir := t.TempDir()

	audio := filepath.Join(dir, "meeting.mkv")
	if err := os.WriteFile(audio, []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	script := filepath.Join(dir, "meeting.sbatch")
	if err := os.WriteFile(script, []byte("#!/bin/bash\n"), 0755); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Slurm.Script = script
	cfg.Slurm.LogDir = filepath.Join(dir, "logs")

	sub := &fakeSubmitter{jobID: "42"}
	r := NewRunner(cfg, &fakeTokens{present: present}, sub, logger.New("error"))
	r.stdout = &bytes.Buffer{}
	return r, sub, audio
}

func TestRun(t *testing.T) {
	r, sub, audio := newTestRunner(t, true)

	res, err := r.Run(context.Background(), audio, 7, "2025-11-28")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.JobID != "42" {
		t.Errorf("JobID = %q, want 42", res.JobID)
	}
	if !strings.Contains(res.LogPath, "_42.out") {
		t.Errorf("LogPath = %q, %%j not expanded", res.LogPath)
	}

	args := sub.spec.Args
	if len(args) != 3 {
		t.Fatalf("got %d script args, want 3", len(args))
	}
	if !filepath.IsAbs(args[0]) {
		t.Errorf("audio arg %q should be absolute", args[0])
	}
	if args[1] != "7" || args[2] != "2025-11-28" {
		t.Errorf("args = %v", args)
	}
}

func TestRunDefaultsDate(t *testing.T) {
	r, sub, audio := newTestRunner(t, true)

	if _, err := r.Run(context.Background(), audio, 0, ""); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sub.spec.Args[2] == "" {
		t.Error("empty date should default to today")
	}
}

func TestRunInvalidDate(t *testing.T) {
	r, sub, audio := newTestRunner(t, true)

	if _, err := r.Run(context.Background(), audio, 0, "28-11-2025"); err == nil {
		t.Fatal("Run() should reject malformed date")
	}
	if sub.called {
		t.Error("Submit must not run on invalid input")
	}
}

func TestRunMissingAudio(t *testing.T) {
	r, sub, _ := newTestRunner(t, true)

	_, err := r.Run(context.Background(), "missing.mkv", 0, "2025-11-28")
	if err == nil || !strings.Contains(err.Error(), "audio file not found") {
		t.Errorf("Run() error = %v", err)
	}
	if sub.called {
		t.Error("Submit must not run when audio is missing")
	}
}

func TestRunMissingScript(t *testing.T) {
	r, sub, audio := newTestRunner(t, true)
	r.cfg.Slurm.Script = "missing.sbatch"

	_, err := r.Run(context.Background(), audio, 0, "2025-11-28")
	if err == nil || !strings.Contains(err.Error(), "batch script not found") {
		t.Errorf("Run() error = %v", err)
	}
	if sub.called {
		t.Error("Submit must not run when script is missing")
	}
}

func TestRunNoCredentialDeclined(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
	}{
		{"empty answer", "\n"},
		{"explicit no", "n\n"},
		{"eof", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sub, audio := newTestRunner(t, false)
			r.stdin = strings.NewReader(tt.stdin)

			_, err := r.Run(context.Background(), audio, 0, "2025-11-28")
			if !errors.Is(err, ErrAborted) {
				t.Errorf("Run() error = %v, want ErrAborted", err)
			}
			if sub.called {
				t.Error("Submit must not run after declined confirmation")
			}
		})
	}
}

func TestRunNoCredentialConfirmed(t *testing.T) {
	r, sub, audio := newTestRunner(t, false)
	r.stdin = strings.NewReader("y\n")

	if _, err := r.Run(context.Background(), audio, 0, "2025-11-28"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !sub.called {
		t.Error("confirmed submission should reach the scheduler")
	}
}

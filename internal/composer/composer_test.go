package composer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
)

type fakeExecutor struct {
	calls   [][]string
	out     map[string]string
	lookErr error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if out, ok := f.out[name]; ok {
		return out, nil
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) Look(name string) (string, error) {
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/usr/bin/" + name, nil
}

func writeFixtures(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	audio := filepath.Join(dir, "spotkanie.mkv")
	background := filepath.Join(dir, "tlo.png")
	for _, p := range []string{audio, background} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return audio, background, filepath.Join(dir, "out", "spotkanie.mp4")
}

func TestCompose(t *testing.T) {
	audio, background, output := writeFixtures(t)

	exec := &fakeExecutor{out: map[string]string{"ffprobe": "123.4\n"}}
	c := New(config.Default(), exec, logger.New("error"))

	if err := c.Compose(context.Background(), audio, background, output); err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if len(exec.calls) == 0 || exec.calls[0][0] != "ffmpeg" {
		t.Fatalf("ffmpeg not invoked: %v", exec.calls)
	}

	args := exec.calls[0]
	for _, want := range []string{"-loop", "-tune", "stillimage", "-shortest", "-pix_fmt", "yuv420p", output} {
		found := false
		for _, a := range args {
			if a == want {
				found = true
			}
		}
		if !found {
			t.Errorf("ffmpeg args missing %q: %v", want, args)
		}
	}
}

func TestComposeMissingAudio(t *testing.T) {
	_, background, output := writeFixtures(t)

	exec := &fakeExecutor{}
	c := New(config.Default(), exec, logger.New("error"))

	err := c.Compose(context.Background(), "missing.mkv", background, output)
	if err == nil {
		t.Fatal("Compose() should fail for missing audio")
	}
	if len(exec.calls) != 0 {
		t.Error("ffmpeg invoked despite missing input")
	}
}

func TestComposeMissingTool(t *testing.T) {
	audio, background, output := writeFixtures(t)

	exec := &fakeExecutor{lookErr: errors.New("not installed")}
	c := New(config.Default(), exec, logger.New("error"))

	if err := c.Compose(context.Background(), audio, background, output); err == nil {
		t.Fatal("Compose() should fail when ffmpeg is missing")
	}
}

func TestDuration(t *testing.T) {
	exec := &fakeExecutor{out: map[string]string{"ffprobe": " 61.25 \n"}}
	c := New(config.Default(), exec, logger.New("error"))

	got, err := c.Duration(context.Background(), "video.mp4")
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if got != 61.25 {
		t.Errorf("Duration() = %v, want 61.25", got)
	}
}

func TestSplitResolution(t *testing.T) {
	if _, _, err := splitResolution("1920x1080"); err != nil {
		t.Errorf("splitResolution() error = %v", err)
	}
	if _, _, err := splitResolution("1080p"); err == nil {
		t.Error("splitResolution() should reject 1080p")
	}
}

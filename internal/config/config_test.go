package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "bad resolution",
			config: Config{
				Video: VideoConfig{Resolution: "fullhd"},
			},
			wantErr: true,
		},
		{
			name: "negative fps",
			config: Config{
				Video: VideoConfig{Resolution: "1280x720", FPS: -1},
			},
			wantErr: true,
		},
		{
			name: "unknown privacy",
			config: Config{
				YouTube: YouTubeConfig{Privacy: "secret"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Model != "auto" {
		t.Errorf("Model = %v, want auto", cfg.Whisper.Model)
	}
	if cfg.Whisper.Language != "pl" {
		t.Errorf("Language = %v, want pl", cfg.Whisper.Language)
	}
	if cfg.YouTube.Privacy != "unlisted" {
		t.Errorf("Privacy = %v, want unlisted", cfg.YouTube.Privacy)
	}
	if cfg.Slurm.JobName != "sknwpl-meeting" {
		t.Errorf("JobName = %v, want sknwpl-meeting", cfg.Slurm.JobName)
	}
}

func TestResolvePath(t *testing.T) {
	cfg := Default()
	cfg.Paths.Root = "/srv/sknwpl"

	if got := cfg.ResolvePath("cluster/meeting.sbatch"); got != "/srv/sknwpl/cluster/meeting.sbatch" {
		t.Errorf("ResolvePath() = %q", got)
	}
	if got := cfg.ResolvePath("/etc/secrets.json"); got != "/etc/secrets.json" {
		t.Errorf("absolute path changed: %q", got)
	}

	cfg.Paths.Root = "."
	if got := cfg.ResolvePath("models"); got != "models" {
		t.Errorf("ResolvePath() = %q, default root must not alter paths", got)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  binary_path: "./whisper-cli"
  model_dir: "models"
  model: "small"
  language: "pl"

video:
  resolution: "1280x720"
  fps: 25

paths:
  output: "meetings"

youtube:
  privacy: "private"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Model != "small" {
		t.Errorf("Model = %v, want small", cfg.Whisper.Model)
	}
	if cfg.Paths.Output != "meetings" {
		t.Errorf("Output = %v, want meetings", cfg.Paths.Output)
	}
	if cfg.YouTube.Privacy != "private" {
		t.Errorf("Privacy = %v, want private", cfg.YouTube.Privacy)
	}
	// Defaults still fill unset sections
	if cfg.Video.AudioBitrate != "192k" {
		t.Errorf("AudioBitrate = %v, want 192k", cfg.Video.AudioBitrate)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("nonexistent.yaml")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Whisper.Language != "pl" {
		t.Errorf("Language = %v, want pl", cfg.Whisper.Language)
	}
}

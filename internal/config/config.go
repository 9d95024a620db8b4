package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	Video   VideoConfig   `yaml:"video"`
	Paths   PathsConfig   `yaml:"paths"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Slurm   SlurmConfig   `yaml:"slurm"`
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
}

type VideoConfig struct {
	Resolution   string `yaml:"resolution"`
	FPS          int    `yaml:"fps"`
	AudioBitrate string `yaml:"audio_bitrate"`
	VideoBitrate string `yaml:"video_bitrate"`
}

type PathsConfig struct {
	Root       string `yaml:"root"`
	Output     string `yaml:"output"`
	Inbox      string `yaml:"inbox"`
	Background string `yaml:"background"`
	LinksFile  string `yaml:"links_file"`
}

type YouTubeConfig struct {
	ClientSecrets string   `yaml:"client_secrets"`
	TokenFile     string   `yaml:"token_file"`
	CategoryID    string   `yaml:"category_id"`
	Privacy       string   `yaml:"privacy"`
	Tags          []string `yaml:"tags"`
}

type SlurmConfig struct {
	Script  string `yaml:"script"`
	LogDir  string `yaml:"log_dir"`
	JobName string `yaml:"job_name"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ExportConfig struct {
	Docx bool `yaml:"docx"`
}

// Validate fills defaults and rejects values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelDir == "" {
		c.Whisper.ModelDir = "models"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "auto"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "pl"
	}

	if c.Video.Resolution == "" {
		c.Video.Resolution = "1920x1080"
	}
	if !strings.Contains(c.Video.Resolution, "x") {
		return fmt.Errorf("video.resolution must look like WIDTHxHEIGHT, got %q", c.Video.Resolution)
	}
	if c.Video.FPS < 0 {
		return fmt.Errorf("video.fps must not be negative")
	}
	if c.Video.FPS == 0 {
		c.Video.FPS = 30
	}
	if c.Video.AudioBitrate == "" {
		c.Video.AudioBitrate = "192k"
	}
	if c.Video.VideoBitrate == "" {
		c.Video.VideoBitrate = "1M"
	}

	if c.Paths.Root == "" {
		c.Paths.Root = "."
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "last-week-in-sknwpl"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Background == "" {
		c.Paths.Background = "resources/templates/background.png"
	}
	if c.Paths.LinksFile == "" {
		c.Paths.LinksFile = "youtube_links.txt"
	}

	if c.YouTube.ClientSecrets == "" {
		c.YouTube.ClientSecrets = "credentials/client_secrets.json"
	}
	if c.YouTube.TokenFile == "" {
		c.YouTube.TokenFile = "credentials/youtube_token.json"
	}
	if c.YouTube.CategoryID == "" {
		c.YouTube.CategoryID = "22" // People & Blogs
	}
	if c.YouTube.Privacy == "" {
		c.YouTube.Privacy = "unlisted"
	}
	switch c.YouTube.Privacy {
	case "public", "private", "unlisted":
	default:
		return fmt.Errorf("youtube.privacy must be public, private or unlisted, got %q", c.YouTube.Privacy)
	}

	if c.Slurm.Script == "" {
		c.Slurm.Script = "cluster/meeting.sbatch"
	}
	if c.Slurm.LogDir == "" {
		c.Slurm.LogDir = "cluster/logs"
	}
	if c.Slurm.JobName == "" {
		c.Slurm.JobName = "sknwpl-meeting"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// ResolvePath resolves a configured path against paths.root. Absolute
// paths pass through unchanged.
func (c *Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Paths.Root, path)
}

// Default returns a configuration with every default filled in.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

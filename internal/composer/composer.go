package composer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Compose loops the background image for the full audio duration and
// encodes an MP4 suitable for YouTube.
func (c *implComposer) Compose(ctx context.Context, audioPath, backgroundPath, outputPath string) error {
	if _, err := c.executor.Look("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("audio file not found: %s", audioPath)
	}
	if _, err := os.Stat(backgroundPath); err != nil {
		return fmt.Errorf("background image not found: %s", backgroundPath)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	width, height, err := splitResolution(c.cfg.Video.Resolution)
	if err != nil {
		return err
	}

	c.logger.Info(ctx, "Composing video: %s + %s -> %s",
		filepath.Base(audioPath), filepath.Base(backgroundPath), outputPath)

	// -loop 1 repeats the still image, -shortest stops at the end of
	// the audio stream. tune/pix_fmt/faststart keep the file friendly
	// for YouTube and common players.
	scale := fmt.Sprintf("scale=%s:%s:force_original_aspect_ratio=decrease,pad=%s:%s:(ow-iw)/2:(oh-ih)/2",
		width, height, width, height)

	args := []string{
		"-y",
		"-loop", "1",
		"-i", backgroundPath,
		"-i", audioPath,
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-c:a", "aac",
		"-b:a", c.cfg.Video.AudioBitrate,
		"-b:v", c.cfg.Video.VideoBitrate,
		"-r", strconv.Itoa(c.cfg.Video.FPS),
		"-vf", scale,
		"-pix_fmt", "yuv420p",
		"-shortest",
		"-movflags", "+faststart",
		outputPath,
	}

	if _, err := c.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg compose: %w", err)
	}

	if duration, err := c.Duration(ctx, outputPath); err == nil {
		c.logger.Info(ctx, "Video ready: %s (%d:%02d)", outputPath, int(duration)/60, int(duration)%60)
	} else {
		c.logger.Info(ctx, "Video ready: %s", outputPath)
	}

	return nil
}

// Duration probes a media file's length in seconds with ffprobe.
func (c *implComposer) Duration(ctx context.Context, mediaPath string) (float64, error) {
	out, err := c.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		mediaPath,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", out, err)
	}
	return duration, nil
}

func splitResolution(resolution string) (string, string, error) {
	parts := strings.SplitN(resolution, "x", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid resolution %q", resolution)
	}
	return parts[0], parts[1], nil
}

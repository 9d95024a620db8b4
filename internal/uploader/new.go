package uploader

import (
	"io"
	"os"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
)

type implUploader struct {
	cfg         *config.Config
	tokens      TokenStore
	logger      logger.Logger
	interactive bool
	stdin       io.Reader
	stdout      io.Writer
}

// New creates a YouTube Uploader. With interactive set, a missing
// token triggers the one-time login flow; without it (batch jobs) a
// missing token is ErrNoCredential.
func New(cfg *config.Config, tokens TokenStore, log logger.Logger, interactive bool) Uploader {
	return &implUploader{
		cfg:         cfg,
		tokens:      tokens,
		logger:      log,
		interactive: interactive,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
	}
}

package transcriber

import (
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	detector *Detector
	logger   logger.Logger
}

// New creates a Transcriber wrapping the configured whisper binary.
func New(cfg *config.Config, exec executor.Executor, det *Detector, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		detector: det,
		logger:   log,
	}
}

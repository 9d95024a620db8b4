package composer

import (
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/pkg/executor"
)

type implComposer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Composer backed by ffmpeg.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Composer {
	return &implComposer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

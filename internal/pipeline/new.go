package pipeline

import (
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/composer"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/meeting"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/transcriber"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/uploader"
)

type implPipeline struct {
	cfg         *config.Config
	store       *meeting.Store
	transcriber transcriber.Transcriber
	composer    composer.Composer
	uploader    uploader.Uploader
	links       *uploader.LinkLog
	logger      logger.Logger
}

func New(
	cfg *config.Config,
	store *meeting.Store,
	tr transcriber.Transcriber,
	comp composer.Composer,
	up uploader.Uploader,
	links *uploader.LinkLog,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		store:       store,
		transcriber: tr,
		composer:    comp,
		uploader:    up,
		links:       links,
		logger:      log,
	}
}

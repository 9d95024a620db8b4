package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
)

// New creates a Watcher on inboxDir. The directory must exist.
func New(inboxDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", inboxDir, err)
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
	}, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/cli"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/meeting"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/pkg/executor"
)

func main() {
	// Optional .env next to the binary, ignored when absent
	_ = godotenv.Load()

	configPath := os.Getenv("SKNWPL_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	deps := &cli.Dependencies{
		Config:   cfg,
		Logger:   log,
		Executor: executor.New(),
		Store:    meeting.NewStore(cfg.Paths.Root, resolveOutput(cfg)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(deps)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveOutput(cfg *config.Config) string {
	if filepath.IsAbs(cfg.Paths.Output) {
		return cfg.Paths.Output
	}
	return filepath.Join(cfg.Paths.Root, cfg.Paths.Output)
}

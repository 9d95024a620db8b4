package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/batch"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/scheduler"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/uploader"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/pkg/executor"
)

func main() {
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

	root := &cobra.Command{
		Use:           "submit <audio_file> [meeting_number] [date]",
		Short:         "Submit meeting processing as a cluster batch job",
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			number := 0
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 0 {
					return fmt.Errorf("invalid meeting number %q", args[1])
				}
				number = n
			}
			date := ""
			if len(args) > 2 {
				date = args[2]
			}

			tokens := uploader.NewFileTokenStore(cfg.YouTube.TokenFile)
			submitter := scheduler.New(executor.New(), log)
			runner := batch.NewRunner(cfg, tokens, submitter, log)

			result, err := runner.Run(cmd.Context(), args[0], number, date)
			if err != nil {
				return err
			}

			cmd.Printf("Submitted job %s\n", result.JobID)
			cmd.Printf("Log file: %s\n", result.LogPath)
			cmd.Printf("Check status with: squeue -j %s\n", result.JobID)
			return nil
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/meeting"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/pipeline"
)

func newProcessCmd(deps *Dependencies) *cobra.Command {
	flags := &runFlags{}
	var upload bool

	cmd := &cobra.Command{
		Use:   "process <audio_file>",
		Short: "Run the full pipeline: transcribe, render video, generate prompts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			audio, err := deps.Store.ResolveAudio(args[0])
			if err != nil {
				return err
			}

			opts := flags.options()
			opts.Upload = upload

			log, closeLog, err := teeLogger(deps, audio, opts.Date, opts.Number)
			if err != nil {
				deps.Logger.Warn(ctx, "Cannot open meeting log file: %v", err)
				log = deps.Logger
			}
			if closeLog != nil {
				defer closeLog()
			}

			p := buildPipeline(deps, log, false)
			summary, perr := p.Process(ctx, args[0], opts)
			if summary != nil {
				printSummary(cmd.OutOrStdout(), summary)
			}
			return perr
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.notes, "notes", "", "path to manual notes merged into the summary prompt")
	cmd.Flags().StringVar(&flags.background, "background", "", "background image override")
	cmd.Flags().StringVar(&flags.model, "model", "", "speech model override (tiny, base, small, medium, large)")
	cmd.Flags().StringVar(&flags.language, "language", "", "transcription language override")
	cmd.Flags().StringVar(&flags.title, "title", "", "video title override")
	cmd.Flags().StringVar(&flags.privacy, "privacy", "", "upload privacy override (public, private, unlisted)")
	cmd.Flags().BoolVar(&upload, "upload", false, "publish the video after processing")

	return cmd
}

// teeLogger duplicates log output into the meeting directory so every
// run leaves a trace next to its artifacts.
func teeLogger(deps *Dependencies, audio, date string, number int) (logger.Logger, func(), error) {
	m, err := deps.Store.MeetingFor(date, number)
	if err != nil {
		return nil, nil, err
	}
	if err := m.EnsureDir(); err != nil {
		return nil, nil, err
	}

	path := m.LogPath(meeting.Stem(audio))
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewWriter(deps.Config.Logging.Level, io.MultiWriter(os.Stdout, file))
	return log, func() { file.Close() }, nil
}

func printSummary(w io.Writer, s *pipeline.Summary) {
	fmt.Fprintf(w, "\nMeeting directory: %s\n", s.Dir)
	for _, step := range s.Steps {
		if step.Detail != "" {
			fmt.Fprintf(w, "  %-10s %s (%s)\n", step.Name, step.Status, step.Detail)
		} else {
			fmt.Fprintf(w, "  %-10s %s\n", step.Name, step.Status)
		}
	}
}

// Package cli wires the commands of the meeting tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/composer"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/meeting"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/pipeline"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/transcriber"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/uploader"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/pkg/executor"
)

// Dependencies hold everything the commands share. Built once in main.
type Dependencies struct {
	Config   *config.Config
	Logger   logger.Logger
	Executor executor.Executor
	Store    *meeting.Store
}

// NewRootCmd builds the meeting command tree.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "meeting",
		Short:         "Post-production pipeline for recorded SKNWPL meetings",
		Long:          "Transcribes recorded meetings, renders upload videos, prepares summary prompts and publishes to YouTube.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProcessCmd(deps),
		newTranscribeCmd(deps),
		newVideoCmd(deps),
		newPromptsCmd(deps),
		newUploadCmd(deps),
		newWatchCmd(deps),
		newDoctorCmd(deps),
		newAuthCmd(deps),
	)

	return root
}

// runFlags are the per-run options shared by the pipeline commands.
type runFlags struct {
	date       string
	number     int
	notes      string
	background string
	model      string
	language   string
	title      string
	privacy    string
	force      bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "meeting date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&f.number, "number", 0, "meeting number, 0 for an unnumbered weekly meeting")
	cmd.Flags().BoolVar(&f.force, "force", false, "redo steps whose artifacts already exist")
}

func (f *runFlags) options() pipeline.ProcessOptions {
	return pipeline.ProcessOptions{
		Date:       f.date,
		Number:     f.number,
		NotesPath:  f.notes,
		Background: f.background,
		Model:      f.model,
		Language:   f.language,
		Title:      f.title,
		Privacy:    f.privacy,
		Force:      f.force,
	}
}

// buildPipeline assembles the pipeline components. The interactive
// flag controls whether a missing upload token starts the login flow.
func buildPipeline(deps *Dependencies, log logger.Logger, interactive bool) pipeline.Pipeline {
	cfg := deps.Config

	tokens := uploader.NewFileTokenStore(deps.Store.ResolveAgainstRoot(cfg.YouTube.TokenFile))
	links := uploader.NewLinkLog(deps.Store.ResolveAgainstRoot(cfg.Paths.LinksFile))

	return pipeline.New(
		cfg,
		deps.Store,
		transcriber.New(cfg, deps.Executor, transcriber.NewDetector(), log),
		composer.New(cfg, deps.Executor, log),
		uploader.New(cfg, tokens, log, interactive),
		links,
		log,
	)
}

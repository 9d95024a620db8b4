package cli

import (
	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/pipeline"
)

func newTranscribeCmd(deps *Dependencies) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "transcribe <audio_file>",
		Short: "Transcribe a recording into subtitle and transcript files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := buildPipeline(deps, deps.Logger, false)
			err := p.Transcribe(cmd.Context(), args[0], flags.options())
			if pipeline.Skipped(err) {
				cmd.Println(err.Error())
				return nil
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.model, "model", "", "speech model override (tiny, base, small, medium, large)")
	cmd.Flags().StringVar(&flags.language, "language", "", "transcription language override")

	return cmd
}

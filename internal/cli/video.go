package cli

import (
	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/pipeline"
)

func newVideoCmd(deps *Dependencies) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "video <audio_file>",
		Short: "Render the upload video from audio and background image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := buildPipeline(deps, deps.Logger, false)
			err := p.ComposeVideo(cmd.Context(), args[0], flags.options())
			if pipeline.Skipped(err) {
				cmd.Println(err.Error())
				return nil
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.background, "background", "", "background image override")

	return cmd
}

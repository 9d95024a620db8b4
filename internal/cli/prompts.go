package cli

import (
	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/pipeline"
)

func newPromptsCmd(deps *Dependencies) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "prompts <audio_file>",
		Short: "Generate the highlights and summary prompt files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := buildPipeline(deps, deps.Logger, false)
			err := p.GeneratePrompts(cmd.Context(), args[0], flags.options())
			if pipeline.Skipped(err) {
				cmd.Println(err.Error())
				return nil
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.notes, "notes", "", "path to manual notes merged into the summary prompt")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/pipeline"
)

func newUploadCmd(deps *Dependencies) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "upload <audio_file>",
		Short: "Publish the rendered video and record the link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive: first use without a token opens the login
			// flow instead of failing. Batch runs go through process.
			p := buildPipeline(deps, deps.Logger, true)
			url, err := p.Upload(cmd.Context(), args[0], flags.options())
			if pipeline.Skipped(err) {
				cmd.Printf("%s\n%s\n", err.Error(), url)
				return nil
			}
			if err != nil {
				return err
			}
			cmd.Println(url)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.title, "title", "", "video title override")
	cmd.Flags().StringVar(&flags.privacy, "privacy", "", "upload privacy override (public, private, unlisted)")

	return cmd
}

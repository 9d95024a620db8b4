package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/watcher"
)

func newWatchCmd(deps *Dependencies) *cobra.Command {
	flags := &runFlags{}
	var upload bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the inbox directory and process dropped recordings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			inbox := deps.Store.ResolveAgainstRoot(deps.Config.Paths.Inbox)

			if err := os.MkdirAll(inbox, 0755); err != nil {
				return err
			}

			p := buildPipeline(deps, deps.Logger, false)
			handler := func(ctx context.Context, audioPath string) error {
				opts := flags.options()
				opts.Upload = upload
				_, err := p.Process(ctx, audioPath, opts)
				return err
			}

			w, err := watcher.New(inbox, handler, deps.Logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			if err := w.Start(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&upload, "upload", false, "publish each processed recording")

	// Watched recordings are always filed by their drop date
	cmd.Flags().MarkHidden("date")
	cmd.Flags().MarkHidden("number")

	return cmd
}

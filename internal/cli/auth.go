package cli

import (
	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/uploader"
)

func newAuthCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize YouTube uploads and persist the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config
			tokens := uploader.NewFileTokenStore(deps.Store.ResolveAgainstRoot(cfg.YouTube.TokenFile))
			up := uploader.New(cfg, tokens, deps.Logger, true)
			return up.Authorize(cmd.Context())
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/diagnostics"
)

func newDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that tools, models and credentials are in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := diagnostics.NewChecker(deps.Config).Run()

			for _, check := range checks {
				cmd.Printf("%-5s %-16s %s\n", marker(check.Status), check.Name, check.Detail)
			}

			if !diagnostics.Healthy(checks) {
				return fmt.Errorf("host is not ready, fix the failing checks")
			}
			return nil
		},
	}
}

func marker(s diagnostics.Status) string {
	switch s {
	case diagnostics.StatusOK:
		return "[ok]"
	case diagnostics.StatusWarn:
		return "[warn]"
	default:
		return "[FAIL]"
	}
}

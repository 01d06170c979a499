package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

func init() {
	rootCmd.AddCommand(
		newPlayCmd("outdoor", domain.ActionOutdoor, domain.OutdoorOptions, 10),
		newPlayCmd("indoor", domain.ActionIndoor, domain.IndoorOptions, 8),
	)
}

// newPlayCmd builds the outdoor and indoor commands. Each run replaces
// today's list for that kind.
func newPlayCmd(use string, kind domain.ActionKind, options []string, xp int) *cobra.Command {
	var other string
	cmd := &cobra.Command{
		Use:   use + " NAME [ACTIVITY...]",
		Short: fmt.Sprintf("Set today's %s activities (+%d XP)", use, xp),
		Long: fmt.Sprintf(`Set today's %s activities, replacing any saved earlier.
Choices: %s. Use --other for anything else.`, use, strings.Join(options, ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return logAction(cmd, args[0], domain.Action{Kind: kind, Items: args[1:], Other: other})
		},
	}
	cmd.Flags().StringVar(&other, "other", "", "an activity that is not in the list")
	return cmd
}

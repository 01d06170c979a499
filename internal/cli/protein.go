package cli

import (
	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

func init() {
	rootCmd.AddCommand(proteinCmd)
}

var proteinCmd = &cobra.Command{
	Use:   "protein NAME ITEM...",
	Short: "Log protein foods from the catalog (+8 XP)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return logAction(cmd, args[0], domain.Action{Kind: domain.ActionProtein, Items: args[1:]})
	},
}

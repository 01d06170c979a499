package cli

import (
	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

func init() {
	rootCmd.AddCommand(finishCmd)
}

var finishCmd = &cobra.Command{
	Use:   "finish NAME",
	Short: "Complete today (+30 XP once) and grow your streak",
	Long: `Mark today as complete. Allowed once all water glasses are drunk and at
least two other activities are done. Completing on consecutive days grows the
streak; a missed day starts it again at 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return logAction(cmd, args[0], domain.Action{Kind: domain.ActionFinish})
	},
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

func init() {
	rootCmd.AddCommand(schoolCmd)
}

var schoolCmd = &cobra.Command{
	Use:   "school NAME",
	Short: "Mark today's school work as done (+10 XP once a day)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return logAction(cmd, args[0], domain.Action{Kind: domain.ActionSchool, Done: true})
	},
}

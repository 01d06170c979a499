package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

func init() {
	rootCmd.AddCommand(examCmd)
}

var examCmd = &cobra.Command{
	Use:   "exam NAME MINUTES",
	Short: "Save today's exam preparation minutes (+2 XP per new 5 minutes)",
	Long: `Save the total minutes of exam preparation for today (0-180).
Only growth over the previously saved total earns XP.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("minutes must be a whole number: %q", args[1])
		}
		return logAction(cmd, args[0], domain.Action{Kind: domain.ActionExam, Minutes: minutes})
	},
}

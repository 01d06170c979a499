package cli

import (
	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

var waterGlasses int

func init() {
	waterCmd.Flags().IntVarP(&waterGlasses, "glasses", "n", 1, "number of glasses drunk")
	rootCmd.AddCommand(waterCmd)
}

var waterCmd = &cobra.Command{
	Use:   "water NAME",
	Short: "Log glasses of water (+5 XP each)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return logAction(cmd, args[0], domain.Action{Kind: domain.ActionWater, Count: waterGlasses})
	},
}

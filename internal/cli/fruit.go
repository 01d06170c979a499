package cli

import (
	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

var fruitOther string

func init() {
	fruitCmd.Flags().StringVar(&fruitOther, "other", "", "a fruit that is not in the catalog")
	rootCmd.AddCommand(fruitCmd)
}

var fruitCmd = &cobra.Command{
	Use:   "fruit NAME [FRUIT...]",
	Short: "Log fruits eaten today (+8 XP each)",
	Long: `Log one or more fruits. Each fruit counts, even the same one twice.
Use --other for a fruit missing from 'bachpan catalog'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return logAction(cmd, args[0], domain.Action{
			Kind:  domain.ActionFruit,
			Items: args[1:],
			Other: fruitOther,
		})
	},
}

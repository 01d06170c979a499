package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/app/hydration"
)

var targetAge, targetGender, targetWeight string

func init() {
	f := targetCmd.Flags()
	f.StringVar(&targetAge, "age", "8", "age in years")
	f.StringVar(&targetGender, "gender", "boy", "boy, girl or other")
	f.StringVar(&targetWeight, "weight", "25", "weight in kg")
	rootCmd.AddCommand(targetCmd)
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Calculate a daily water target without a profile",
	Long: `Calculate the daily water recommendation: the larger of 35 ml per kg and
an age/gender minimum, in 250 ml glasses. Values that cannot be used fall
back to age 8, 25 kg, boy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := hydration.ComputeText(targetAge, targetGender, targetWeight)
		fmt.Fprintf(cmd.OutOrStdout(), "%d ml (%.2f L) = %d glasses of %d ml\n", t.ML, t.Liters, t.Glasses, t.GlassML)
		return nil
	},
}

// Package cli implements the Bachpan Balance command-line interface using
// Cobra. Each subcommand logs one kind of activity or shows progress.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	homeFlag  string
	plainFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "bachpan",
	Short: "Bachpan Balance: a daily habit tracker for kids",
	Long: `Bachpan Balance helps children build healthy daily habits.
Log water, fruit, protein, school work, play and study time,
earn XP and badges, and keep your streak going.

Data lives in ~/.bachpan (override with --home or BACHPAN_HOME).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if homeFlag != "" {
			return os.Setenv("BACHPAN_HOME", homeFlag)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "data and config directory (default ~/.bachpan)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "print plain markdown instead of styled output")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/render"
)

var (
	historyEvents bool
	historyLimit  int
)

func init() {
	historyCmd.Flags().BoolVar(&historyEvents, "events", false, "list XP journal events instead of days")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum events to list (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history NAME",
	Short: "List logged days, or XP events with --events",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	p, err := a.Tracker.Load(ctx, args[0])
	if err != nil {
		return err
	}
	if !historyEvents {
		return printMarkdown(cmd, a, render.History(p))
	}

	events, err := a.Tracker.Events(ctx, args[0], historyLimit)
	if err != nil {
		return err
	}
	return printMarkdown(cmd, a, "# "+p.Name+"'s XP events\n\n"+render.Events(events, a.Tracker.Now()))
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/app"
	"github.com/bachpan-balance/bachpan/internal/app/tracker"
	"github.com/bachpan-balance/bachpan/internal/render"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:     "show NAME",
	Aliases: []string{"today"},
	Short:   "Show today's water target, checklist, XP and badges",
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	return withSession(cmd, args[0], func(a *app.App, s *tracker.Session) error {
		summary := render.NewSummary(s.Profile(), s.DayKey(), s.Today(), s.Target(), a.Tracker.Now())
		md, err := render.DaySummary(summary)
		if err != nil {
			return err
		}
		return printMarkdown(cmd, a, md)
	})
}

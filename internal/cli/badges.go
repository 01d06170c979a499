package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/app/reward"
	"github.com/bachpan-balance/bachpan/internal/domain"
	"github.com/bachpan-balance/bachpan/internal/render"
)

func init() {
	rootCmd.AddCommand(badgesCmd)
}

var badgesCmd = &cobra.Command{
	Use:   "badges NAME",
	Short: "Show every badge a child has earned",
	Args:  cobra.ExactArgs(1),
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.Tracker.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 🏅 %s's badges\n\n", p.Name)
	rows := render.CategoryBadges(p)
	if len(rows) == 0 {
		b.WriteString("No badges yet. Log an activity to earn your first one!\n")
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "- %s · **%s %s**: %s _(earned %s)_\n", r.Label, r.Tier, r.Title, r.Flavor, r.Earned)
	}

	b.WriteString("\n## ⭐ XP stars\n\n")
	ladder := render.LadderBadges(p)
	for _, r := range ladder {
		fmt.Fprintf(&b, "- %s · **%s**: %s _(earned %s)_\n", r.Label, r.Title, r.Flavor, r.Earned)
	}
	if next := reward.NextLadderTier(p); next != domain.TierNone {
		fmt.Fprintf(&b, "\n%d XP now, next star at %d XP.\n", p.XP, reward.LadderThreshold(next))
	}
	return printMarkdown(cmd, a, b.String())
}

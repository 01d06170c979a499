package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/app/reward"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List children with stored profiles",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	keys, err := a.Tracker.Profiles(ctx)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles yet. Run 'bachpan profile <name>' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tXP\tLEVEL\tSTREAK\tLAST COMPLETED")
	for _, k := range keys {
		p, err := a.Tracker.Load(ctx, k)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", k, err)
			continue
		}
		last := p.LastCompletedDay
		if last == "" {
			last = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", p.Name, p.XP, reward.LevelForXP(p.XP), p.Streak, last)
	}
	return w.Flush()
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/app"
	"github.com/bachpan-balance/bachpan/internal/app/tracker"
	"github.com/bachpan-balance/bachpan/internal/domain"
	"github.com/bachpan-balance/bachpan/internal/render"
)

var screenCreate, screenFun, screenLimit int

func init() {
	f := screenCmd.Flags()
	f.IntVar(&screenCreate, "create", 0, "minutes of creative screen time")
	f.IntVar(&screenFun, "fun", 0, "minutes of fun screen time")
	f.IntVar(&screenLimit, "limit", 0, "parent-set daily limit in minutes (0 = none)")
	rootCmd.AddCommand(screenCmd)
}

var screenCmd = &cobra.Command{
	Use:   "screen NAME",
	Short: "Save today's screen time (+4 XP per new 10 creative minutes)",
	Long: `Save today's screen time totals. Flags that are not given keep their
saved value. A warning is shown when create + fun exceeds the limit.`,
	Args: cobra.ExactArgs(1),
	RunE: runScreen,
}

func runScreen(cmd *cobra.Command, args []string) error {
	return withSession(cmd, args[0], func(a *app.App, s *tracker.Session) error {
		cur := s.Today().Screen
		f := cmd.Flags()
		if f.Changed("create") {
			cur.Create = screenCreate
		}
		if f.Changed("fun") {
			cur.Fun = screenFun
		}
		if f.Changed("limit") {
			cur.Limit = screenLimit
		}
		fx, err := s.Apply(domain.Action{
			Kind:    domain.ActionScreen,
			Minutes: cur.Create,
			Fun:     cur.Fun,
			Limit:   cur.Limit,
		})
		if err != nil {
			return err
		}
		return printMarkdown(cmd, a, render.Effects(fx))
	})
}

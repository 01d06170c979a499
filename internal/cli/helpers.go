package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/app"
	"github.com/bachpan-balance/bachpan/internal/app/tracker"
	"github.com/bachpan-balance/bachpan/internal/domain"
	"github.com/bachpan-balance/bachpan/internal/render"
)

// openApp wires the runtime from the config file and the --plain flag.
func openApp() (*app.App, error) {
	a, err := app.New()
	if err != nil {
		return nil, err
	}
	if plainFlag {
		a.Config.Display.Plain = true
	}
	return a, nil
}

func renderer(a *app.App) render.Renderer {
	d := a.Config.Display
	return render.Renderer{Plain: d.Plain, Style: d.Style, Width: d.Width}
}

// printMarkdown renders md for the terminal and writes it to the command's
// output.
func printMarkdown(cmd *cobra.Command, a *app.App, md string) error {
	out, err := renderer(a).Render(md)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// withSession opens the named child's session, runs fn and saves.
func withSession(cmd *cobra.Command, name string, fn func(a *app.App, s *tracker.Session) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	s, err := a.Tracker.Open(ctx, name)
	if err != nil {
		return err
	}
	if s.Created() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Welcome, %s! A new profile was created.\n", s.Profile().Name)
	}
	if err := fn(a, s); err != nil {
		return err
	}
	return s.Save(ctx)
}

// logAction applies one action for the named child and prints its effects.
func logAction(cmd *cobra.Command, name string, action domain.Action) error {
	return withSession(cmd, name, func(a *app.App, s *tracker.Session) error {
		fx, err := s.Apply(action)
		if err != nil {
			return err
		}
		return printMarkdown(cmd, a, render.Effects(fx))
	})
}

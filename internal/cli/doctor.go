package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the data directory, storage and configuration",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "home:    %s\n", homeDir())
	fmt.Fprintf(out, "backend: %s (%s)\n\n", a.Config.Storage.Backend, a.Config.Storage.Dir)

	for _, s := range a.Health.RunAll(cmd.Context()) {
		switch {
		case !s.Healthy:
			fmt.Fprintf(out, "  ✗ %-10s %s\n", s.Name, s.Error)
		case s.Recovered:
			fmt.Fprintf(out, "  ✓ %-10s recovered\n", s.Name)
		default:
			fmt.Fprintf(out, "  ✓ %s\n", s.Name)
		}
	}
	if !a.Health.IsHealthy() {
		return errors.New("some checks failed")
	}
	return nil
}

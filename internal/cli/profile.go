package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/app"
	"github.com/bachpan-balance/bachpan/internal/app/tracker"
	"github.com/bachpan-balance/bachpan/internal/domain"
)

var (
	profileGender string
	profileAge    int
	profileWeight float64
	profileHeight float64
)

func init() {
	f := profileCmd.Flags()
	f.StringVar(&profileGender, "gender", "", "Boy, Girl or Other")
	f.IntVar(&profileAge, "age", 0, "age in years (1-17)")
	f.Float64Var(&profileWeight, "weight", 0, "weight in kg (10-120)")
	f.Float64Var(&profileHeight, "height", 0, "height in cm (70-200)")
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile NAME",
	Short: "Create a child's profile or update their details",
	Long: `Create a profile for NAME, or update gender, age, weight and height.
Flags that are not given keep their stored value. Today's water target is
recalculated from the details.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	return withSession(cmd, args[0], func(a *app.App, s *tracker.Session) error {
		d := s.Profile().Details()
		f := cmd.Flags()
		changed := false
		if f.Changed("gender") {
			g, ok := domain.LookupGender(profileGender)
			if !ok {
				return fmt.Errorf("%w: gender %q must be Boy, Girl or Other", domain.ErrInvalidDetails, profileGender)
			}
			d.Gender = g
			changed = true
		}
		if f.Changed("age") {
			d.Age = profileAge
			changed = true
		}
		if f.Changed("weight") {
			d.Weight = profileWeight
			changed = true
		}
		if f.Changed("height") {
			d.Height = profileHeight
			changed = true
		}
		if changed {
			if _, err := s.UpdateDetails(d); err != nil {
				return err
			}
		}

		p, t := s.Profile(), s.Target()
		md := fmt.Sprintf("# 👧 %s\n\n"+
			"| Gender | Age | Weight | Height |\n|:---|---:|---:|---:|\n"+
			"| %s | %d | %.1f kg | %.0f cm |\n\n"+
			"💧 Daily water: **%d ml** (%.2f L) = **%d glasses** of %d ml\n",
			p.Name, p.Gender, p.Age, p.Weight, p.Height, t.ML, t.Liters, t.Glasses, t.GlassML)
		return printMarkdown(cmd, a, md)
	})
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the fruits, protein foods and play activities to choose from",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fruits := make([]string, 0, len(domain.FruitBenefits))
	for f := range domain.FruitBenefits {
		fruits = append(fruits, f)
	}
	sort.Strings(fruits)

	var b strings.Builder
	b.WriteString("# 🍎 Fruits\n\n| Fruit | Why it's good |\n|:---|:---|\n")
	for _, f := range fruits {
		fmt.Fprintf(&b, "| %s | %s |\n", f, domain.FruitBenefits[f])
	}
	fmt.Fprintf(&b, "\n# 🥚 Protein\n\n%s\n", strings.Join(domain.ProteinOptions, " · "))
	fmt.Fprintf(&b, "\n# ⚽ Outdoor play\n\n%s\n", strings.Join(domain.OutdoorOptions, " · "))
	fmt.Fprintf(&b, "\n# 🎨 Indoor play\n\n%s\n", strings.Join(domain.IndoorOptions, " · "))
	return printMarkdown(cmd, a, b.String())
}

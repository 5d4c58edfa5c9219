package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gomoc/internal/gb"
	"github.com/spf13/cobra"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List the supported material grades and derived constants",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("CONCRETE GRADES (GB 50010-2010):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Grade\tf_ck (MPa)\tf_cd (MPa)\tf_td (MPa)\tε_cu\n")
		for _, g := range gb.ConcreteGrades() {
			c, _ := gb.ResolveConcrete(g)
			fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.1f\t%.4f\n", g, c.Fck, c.Fcd, c.Ftd, c.EpsU)
		}
		w.Flush()
		fmt.Println()

		fmt.Println("STEEL GRADES (GB 50010-2010):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Grade\tf_yk (MPa)\tf_yd (MPa)\tε_y\tDescription\n")
		for _, g := range gb.SteelGrades() {
			s, _ := gb.ResolveSteel(g)
			fmt.Fprintf(w, "  %s\t%.0f\t%.1f\t%.5f\t%s\n", g, s.Fyk, s.Fyd, s.EpsY, gb.SteelDescription(g))
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(gradesCmd)
}

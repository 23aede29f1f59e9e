package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List drill categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTIMEOUT\tPAUSE\tSCORE\tKEY")
		for _, fam := range cat.Families() {
			for _, c := range cat.ByFamily(fam.ID) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID, fam.Name+" · "+c.Name, timeout(c.Timing), c.Timing.Pause, c.Score, c.StoreKey)
			}
		}
		return w.Flush()
	},
}

func timeout(t catalog.Timing) string {
	if !t.HasDeadline() {
		return "-"
	}
	return t.AnswerTimeout.String()
}

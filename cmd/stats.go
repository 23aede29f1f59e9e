package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show best scores and round statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, true)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		scores := store.NewBestScores(rt.store.KV(), rt.logger)

		fmt.Fprintln(out, "Best scores")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		seen := make(map[string]bool)
		for _, c := range rt.catalog.All() {
			if seen[c.StoreKey] {
				continue
			}
			seen[c.StoreKey] = true
			best := "--"
			if v, ok := scores.Best(c.StoreKey); ok {
				best = c.Score.Format(v)
			}
			fmt.Fprintf(w, "  %s\t%s\n", c.StoreKey, best)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		byCat, err := rt.store.Rounds().StatsByCategory(ctx)
		if err != nil {
			return fmt.Errorf("query rounds: %w", err)
		}
		fmt.Fprintln(out, "\nRounds")
		if len(byCat) == 0 {
			fmt.Fprintln(out, "  No rounds played yet.")
			return nil
		}
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  CATEGORY\tPLAYED\tCORRECT\tACCURACY\tFASTEST\tLAST")
		for _, st := range byCat {
			fastest := "--"
			if st.Fastest > 0 {
				fastest = fmt.Sprintf("%.2fs", st.Fastest.Seconds())
			}
			fmt.Fprintf(w, "  %s\t%d\t%d\t%.0f%%\t%s\t%s\n",
				st.Category, st.Attempted, st.Correct, st.Accuracy()*100, fastest,
				st.LastPlayed.Local().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

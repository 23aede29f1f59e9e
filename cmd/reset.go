package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/catalog"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear best scores and round history",
	Long: `Clear best scores and the round log. With --category only that
category's rounds and its best-score key are removed; variants sharing the
key lose their best as well.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringP("category", "c", "", "Category ID (default: everything)")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("category")
	yes, _ := cmd.Flags().GetBool("yes")

	rt, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	var cats []catalog.Category
	if id == "" {
		cats = rt.catalog.All()
	} else {
		c, err := rt.catalog.Lookup(id)
		if err != nil {
			return err
		}
		cats = []catalog.Category{c}
	}

	keys := storeKeys(cats)
	out := cmd.OutOrStdout()
	if !yes {
		target := "ALL best scores and rounds"
		if id != "" {
			target = fmt.Sprintf("rounds of %s and best %s", id, strings.Join(keys, ", "))
		}
		fmt.Fprintf(out, "Delete %s? [y/N] ", target)
		reply, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if r := strings.ToLower(strings.TrimSpace(reply)); r != "y" && r != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	ctx := cmd.Context()
	kv := rt.store.KV()
	for _, k := range keys {
		if err := kv.Delete(ctx, k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	n, err := rt.store.Rounds().DeleteRounds(ctx, id)
	if err != nil {
		return fmt.Errorf("delete rounds: %w", err)
	}

	rt.logger.Info("reset", "category", id, "keys", keys, "rounds", n)
	fmt.Fprintf(out, "Cleared %d best score key(s) and %d round(s).\n", len(keys), n)
	return nil
}

// storeKeys returns the distinct best-score keys of cats in order.
func storeKeys(cats []catalog.Category) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, c := range cats {
		if !seen[c.StoreKey] {
			seen[c.StoreKey] = true
			keys = append(keys, c.StoreKey)
		}
	}
	return keys
}

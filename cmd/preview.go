package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated problems for a category (no database)",
	Long: `Generate and optionally answer problems for one category.

This is a stateless developer tool: no database, no best scores, no round
log. Useful for checking generator output at a given level. A fixed --seed
reproduces the same problems.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("category", "c", "", "Category ID (required)")
	previewCmd.Flags().Int("count", 5, "Number of problems to generate")
	previewCmd.Flags().Int("level", 1, "Difficulty level for adaptive categories")
	previewCmd.Flags().Uint64("seed", 0, "Random seed (0 = random)")
	previewCmd.Flags().Bool("answers", false, "Print answers instead of asking")
	_ = previewCmd.MarkFlagRequired("category")
}

func runPreview(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("category")
	count, _ := cmd.Flags().GetInt("count")
	level, _ := cmd.Flags().GetInt("level")
	seed, _ := cmd.Flags().GetUint64("seed")
	showAnswers, _ := cmd.Flags().GetBool("answers")

	if count <= 0 {
		return fmt.Errorf("invalid --count %d: must be positive", count)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	c, err := cat.Lookup(id)
	if err != nil {
		return err
	}
	if !c.Adaptive {
		level = 1
	}

	var rnd *rand.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewPCG(seed, seed))
	}
	gen := problemgen.New(rnd, problemgen.DefaultConfig())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Category: %s (%s, level %d)\n\n", c.ID, c.Name, level)

	problems := make([]problemgen.Problem, count)
	for i := range problems {
		problems[i] = gen.Generate(c.Spec, level)
	}
	if showAnswers {
		for i, p := range problems {
			fmt.Fprintf(out, "%2d. %s = %s\n", i+1, problemText(p), p.Answer)
		}
		return nil
	}
	return quiz(cmd.InOrStdin(), out, problems)
}

// quiz asks each problem on out and checks the replies read from in.
func quiz(in io.Reader, out io.Writer, problems []problemgen.Problem) error {
	scanner := bufio.NewScanner(in)
	var correct int

	for i, p := range problems {
		fmt.Fprintf(out, "── Problem %d/%d ──\n", i+1, len(problems))
		for _, l := range p.Lines {
			fmt.Fprintln(out, l)
		}
		fmt.Fprintln(out, p.Text)
		if p.Hint != "" {
			fmt.Fprintf(out, "(hint: %s)\n", p.Hint)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		switch {
		case answer == "":
			fmt.Fprintf(out, "(skipped) Answer: %s\n\n", p.Answer)
			continue
		case problemgen.CheckAnswer(answer, &p):
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		default:
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", p.Answer)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, len(problems))
	return scanner.Err()
}

// problemText flattens multi-line puzzles onto one line.
func problemText(p problemgen.Problem) string {
	if len(p.Lines) == 0 {
		return p.Text
	}
	return strings.Join(p.Lines, "; ") + "; " + p.Text
}

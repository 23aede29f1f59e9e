package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/catalog"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// historyDots is the number of recent outcomes shown under the problem.
const historyDots = 20

// lowTime is where a deadline countdown turns red.
const lowTime = 3 * time.Second

func (s *DrillScreen) View(width, height int) string {
	st := s.state
	if st.Problem == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing your drill...")
	}

	center := func(text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")
	if st.HasDeadline() {
		bar := components.NewCountdownBar(st.Remaining, st.Category.Timing.AnswerTimeout, lowTime, min(width-8, 40))
		b.WriteString(center(bar.View()))
	}
	b.WriteString("\n")

	for _, line := range st.Problem.Lines {
		b.WriteString(center(theme.Problem.Render(line)))
		b.WriteString("\n")
	}
	if len(st.Problem.Lines) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(center(theme.Problem.Render(st.Problem.Text)))
	b.WriteString("\n\n")

	b.WriteString(center(s.input.View(st.Phase != sess.PhaseAnswering)))
	b.WriteString("\n\n")

	if fb := renderFeedback(st); fb != "" {
		b.WriteString(center(fb))
		b.WriteString("\n")
	}
	if st.HintShown && st.Phase == sess.PhaseAnswering {
		b.WriteString(center(theme.Hint.Render("Hint: " + st.Problem.Hint)))
		b.WriteString("\n")
	}

	if dots := components.OutcomeStrip(st.History, historyDots); dots != "" {
		b.WriteString("\n")
		b.WriteString(center(dots))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d/%d correct", st.Correct, st.Total))))
	}

	return b.String()
}

// renderInfoLine shows the level on the left and the clock on the right.
func (s *DrillScreen) renderInfoLine(width int) string {
	st := s.state

	left := "  " + st.Category.Name
	if st.Category.Adaptive {
		left = fmt.Sprintf("  Level %d", st.Level)
	}
	infoLeft := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(left)
	infoRight := renderClock(st)

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad <= 0 {
		return infoLeft
	}
	return infoLeft + strings.Repeat(" ", pad) + infoRight
}

func renderClock(st sess.State) string {
	switch {
	case st.Phase == sess.PhaseAdvancing:
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Next in %s", seconds(st.Remaining)))
	case st.HasDeadline():
		style := theme.Timer
		if st.Remaining <= lowTime {
			style = theme.TimerLow
		}
		return style.Render("⏱ " + seconds(st.Remaining))
	default:
		return theme.Timer.Render("⏱ " + seconds(st.Elapsed))
	}
}

func renderFeedback(st sess.State) string {
	answer := st.Problem.Answer
	var line string
	switch {
	case st.Phase == sess.PhaseAnswering && st.Retrying:
		line = theme.Retry.Render("Not quite. Try again!")
	case st.Phase == sess.PhaseAnswering:
		return ""
	case st.Outcome == sess.OutcomeCorrect:
		line = theme.Correct.Render("Correct!")
		if st.Category.Score == catalog.ScoreFastest {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + seconds(st.Elapsed))
		}
	case st.Outcome == sess.OutcomeTimeout:
		line = theme.Incorrect.Render("Time's up! Answer: " + answer)
	default:
		line = theme.Incorrect.Render("Wrong: " + answer)
	}
	if st.NewBest {
		line += "\n" + theme.NewBest.Render("★ New best! "+st.Category.Score.Format(st.BestValue))
	}
	return line
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Accuracy bands of the summary bar.
const (
	GoodAccuracy = 0.8
	FairAccuracy = 0.5
)

// ProgressBar displays a horizontal bar for a fraction in [0, 1].
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int

	// Fill picks the style of the filled cells from Percent. Nil uses
	// theme.ProgressFilled.
	Fill func(pct float64) lipgloss.Style
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewAccuracyBar returns a labeled bar whose fill is graded by accuracy.
func NewAccuracyBar(accuracy float64, width int) ProgressBar {
	bar := NewProgressBar("Accuracy", accuracy, true, width)
	bar.Fill = AccuracyStyle
	return bar
}

// AccuracyStyle returns the fill for an accuracy in [0, 1].
func AccuracyStyle(accuracy float64) lipgloss.Style {
	switch {
	case accuracy >= GoodAccuracy:
		return theme.ProgressGood
	case accuracy >= FairAccuracy:
		return theme.ProgressFair
	default:
		return theme.ProgressPoor
	}
}

// NewCountdownBar returns an unlabeled bar that drains with the answer
// deadline. It turns to the poor fill once remaining is at or below low.
func NewCountdownBar(remaining, total, low time.Duration, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(remaining) / float64(total)
	}
	bar := NewProgressBar("", pct, false, width)
	bar.Fill = func(float64) lipgloss.Style {
		if remaining <= low {
			return theme.ProgressPoor
		}
		return theme.ProgressFilled
	}
	return bar
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	fill := theme.ProgressFilled
	if p.Fill != nil {
		fill = p.Fill(p.Percent)
	}
	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		pct := min(max(p.Percent, 0), 1)
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(pct*100)))
	}

	return result
}

// OutcomeStrip draws the last n outcomes as colored dots, oldest first.
// Older rounds are elided with a leading ellipsis.
func OutcomeStrip(history []bool, n int) string {
	if len(history) == 0 || n <= 0 {
		return ""
	}
	start := max(len(history)-n, 0)

	var dots []string
	if start > 0 {
		dots = append(dots, lipgloss.NewStyle().Foreground(theme.TextDim).Render("…"))
	}
	for _, ok := range history[start:] {
		if ok {
			dots = append(dots, theme.DotCorrect.Render("●"))
		} else {
			dots = append(dots, theme.DotIncorrect.Render("●"))
		}
	}
	return strings.Join(dots, " ")
}

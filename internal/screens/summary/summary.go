package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SummaryScreen displays the tallies of a finished drill run.
type SummaryScreen struct {
	summary session.Summary
	name    string
	best    string

	// again rebuilds the drill screen for "play again". Nil hides the
	// option.
	again    func() screen.Screen
	selected int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. name is the category label and best the
// formatted best value, empty when none is stored.
func New(summary session.Summary, name, best string, again func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, name: name, best: best, again: again}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) options() []string {
	if s.again == nil {
		return []string{"HOME"}
	}
	return []string{"PLAY AGAIN", "HOME"}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	opts := s.options()
	switch kmsg.String() {
	case "left", "h", "up", "k":
		s.selected = max(s.selected-1, 0)
	case "right", "l", "down", "j", "tab":
		s.selected = min(s.selected+1, len(opts)-1)
	case "enter":
		if opts[s.selected] == "PLAY AGAIN" {
			next := s.again()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

// outcomeDots fits the round strip into width; each dot takes two cells.
func outcomeDots(width int) int {
	return min(max((width-10)/2, 1), 30)
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Inherit(style).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Title, "Session complete!"))
	b.WriteString("\n")
	b.WriteString(center(theme.Subtitle, s.name))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Problems: %d        Correct: %d        Best streak: %d",
		sum.Total, sum.Correct, sum.BestStreak)
	b.WriteString(center(theme.Body, statsLine))
	b.WriteString("\n\n")

	bar := components.NewAccuracyBar(sum.Accuracy, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	if strip := components.OutcomeStrip(sum.History, outcomeDots(width)); strip != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strip))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.best != "" {
		b.WriteString(center(theme.Best, "★ Best "+s.best))
		b.WriteString("\n\n")
	}

	var buttons []string
	for i, label := range s.options() {
		buttons = append(buttons, components.ArcadeButton(label, 0, i == s.selected, 16))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...)))

	return b.String()
}

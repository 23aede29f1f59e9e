package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// recentLimit is the number of rounds loaded per session view.
const recentLimit = 200

type historyLoadedMsg struct {
	Stats  []store.RoundStats
	Rounds []store.Round
	Err    error
}

// HistoryScreen shows per-category totals; Enter expands the most recent
// rounds of the selected category.
type HistoryScreen struct {
	rounds   store.RoundRepo
	stats    []store.RoundStats
	recent   map[string][]store.Round // category -> newest first
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen reading from rounds.
func New(rounds store.RoundRepo) *HistoryScreen {
	return &HistoryScreen{
		rounds:   rounds,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.rounds
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		stats, err := repo.StatsByCategory(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		rounds, err := repo.Recent(ctx, store.QueryOpts{Limit: recentLimit})
		if err != nil {
			// Totals are still worth showing.
			return historyLoadedMsg{Stats: stats}
		}
		return historyLoadedMsg{Stats: stats, Rounds: rounds}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
			s.recent = make(map[string][]store.Round)
			for _, r := range msg.Rounds {
				s.recent[r.Category] = append(s.recent[r.Category], r)
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.stats)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.stats) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Start drilling!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, st := range s.stats {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		fastest := "--"
		if st.Fastest > 0 {
			fastest = fmt.Sprintf("%.2fs", st.Fastest.Seconds())
		}
		line := fmt.Sprintf("%s%-26s %4d played  %3.0f%% correct  fastest %s  last %s",
			prefix, st.Category, st.Attempted, st.Accuracy()*100, fastest,
			st.LastPlayed.Format("Jan 02"))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderRounds(st.Category, width))
		}
	}

	return b.String()
}

// renderRounds lists the recent rounds of category, newest first.
func (s *HistoryScreen) renderRounds(category string, width int) string {
	rounds := s.recent[category]
	if len(rounds) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No recent rounds")) + "\n"
	}

	var b strings.Builder
	for _, r := range rounds[:min(len(rounds), 8)] {
		style := theme.DotCorrect
		mark := "✓"
		switch r.Outcome {
		case store.OutcomeIncorrect:
			style, mark = theme.DotIncorrect, "✗"
		case store.OutcomeTimeout:
			style, mark = theme.DotIncorrect, "⏱"
		}
		given := r.Given
		if given == "" {
			given = "-"
		}
		line := fmt.Sprintf("    %s %-24s = %-8s you: %-8s %.1fs",
			mark, r.Problem, r.Answer, given, float64(r.ElapsedMs)/1000)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

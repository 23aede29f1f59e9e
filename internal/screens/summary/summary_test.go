package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		SessionID:  "sess-1",
		Category:   "multiplication-2digit",
		Duration:   4*time.Minute + 5*time.Second,
		Total:      14,
		Correct:    11,
		Accuracy:   float64(11) / float64(14),
		BestStreak: 6,
		History:    []bool{true, true, false, true, true, true, true, true, false, true, true, true, false, true},
	}
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "again" }

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), "2-digit × 2-digit", "3.20s", nil)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), "2-digit × 2-digit", "3.20s", nil)
	view := s.View(80, 24)
	for _, want := range []string{"Session complete!", "4:05", "Problems: 14", "Best streak: 6", "3.20s", "78%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if dots := strings.Count(view, "●"); dots != 14 {
		t.Errorf("round strip has %d dots, want 14", dots)
	}
}

func TestSummaryScreen_EnterWithoutAgainGoesHome(t *testing.T) {
	s := New(testSummary(), "x", "", nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestSummaryScreen_PlayAgain(t *testing.T) {
	s := New(testSummary(), "x", "", func() screen.Screen { return stubScreen{} })
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "again" {
		t.Errorf("replacement = %q", msg.Screen.Title())
	}
}

func TestSummaryScreen_ChooseHome(t *testing.T) {
	s := New(testSummary(), "x", "", func() screen.Screen { return stubScreen{} })
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg after choosing HOME")
	}
}

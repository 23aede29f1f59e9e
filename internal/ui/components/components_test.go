package components

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type pickedMsg string

func testMenu() Menu {
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd { return func() tea.Msg { return pickedMsg(s) } }
	}
	return NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Multiplication", Detail: "3.20s", Action: pick("mult")},
		{Label: "Division", Action: pick("div")},
	})
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu()
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("up onto disabled item moved selection to %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := testMenu()
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command")
	}
	if got := cmd(); got != pickedMsg("mult") {
		t.Errorf("msg = %v, want mult", got)
	}
}

func TestMenu_NumberJumps(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(keyPress('3'))
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(keyPress('1'))
	if m.Selected != 2 {
		t.Errorf("jump to disabled item moved selection to %d", m.Selected)
	}
	m, _ = m.Update(keyPress('9'))
	if m.Selected != 2 {
		t.Errorf("out of range jump moved selection to %d", m.Selected)
	}
}

func TestMenu_ViewShowsDetail(t *testing.T) {
	view := testMenu().View()
	for _, want := range []string{"▸ Multiplication", "3.20s", "Division"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestAnswerInput_FiltersAlphabet(t *testing.T) {
	in := NewAnswerInput(problemgen.AlphabetDigits, 12)
	for _, r := range "1a2-3" {
		in, _ = in.Update(keyPress(r))
	}
	if in.Value() != "123" {
		t.Errorf("Value = %q, want %q", in.Value(), "123")
	}

	in, _ = in.Update(specialKey(tea.KeyBackspace))
	if in.Value() != "12" {
		t.Errorf("after backspace Value = %q, want %q", in.Value(), "12")
	}
}

func TestAnswerInput_SignedSanitizes(t *testing.T) {
	in := NewAnswerInput(problemgen.AlphabetSigned, 12)
	for _, r := range "-5-" {
		in, _ = in.Update(keyPress(r))
	}
	if in.Value() != "-5" {
		t.Errorf("Value = %q, want %q", in.Value(), "-5")
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ frame, want int }{
		{10, 20}, {50, 44}, {200, 60},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 2} {
		if v := NewProgressBar("Accuracy", pct, true, 30).View(); v == "" {
			t.Errorf("empty view for %v", pct)
		}
	}
}

func TestAccuracyStyle_Bands(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     lipgloss.Style
	}{
		{1, theme.ProgressGood},
		{GoodAccuracy, theme.ProgressGood},
		{0.79, theme.ProgressFair},
		{FairAccuracy, theme.ProgressFair},
		{0.2, theme.ProgressPoor},
		{0, theme.ProgressPoor},
	}
	for _, tt := range tests {
		if got := AccuracyStyle(tt.accuracy); got.GetBackground() != tt.want.GetBackground() {
			t.Errorf("AccuracyStyle(%v) background = %v, want %v", tt.accuracy, got.GetBackground(), tt.want.GetBackground())
		}
	}
}

func TestAccuracyBar_ShowsPercent(t *testing.T) {
	v := NewAccuracyBar(11.0/14.0, 40).View()
	for _, want := range []string{"Accuracy", "78%"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q: %q", want, v)
		}
	}
	if v := NewAccuracyBar(3, 40).View(); !strings.Contains(v, "100%") {
		t.Errorf("over-full bar should clamp to 100%%: %q", v)
	}
}

func TestCountdownBar_TurnsPoorWhenLow(t *testing.T) {
	ok := NewCountdownBar(8*time.Second, 10*time.Second, 3*time.Second, 20)
	if ok.Percent != 0.8 {
		t.Errorf("Percent = %v, want 0.8", ok.Percent)
	}
	if got := ok.Fill(ok.Percent); got.GetBackground() != theme.ProgressFilled.GetBackground() {
		t.Errorf("fill = %v, want default fill", got.GetBackground())
	}

	low := NewCountdownBar(2*time.Second, 10*time.Second, 3*time.Second, 20)
	if got := low.Fill(low.Percent); got.GetBackground() != theme.ProgressPoor.GetBackground() {
		t.Errorf("fill = %v, want poor fill", got.GetBackground())
	}

	if none := NewCountdownBar(time.Second, 0, 0, 20); none.Percent != 0 {
		t.Errorf("zero total: Percent = %v, want 0", none.Percent)
	}
}

func TestOutcomeStrip(t *testing.T) {
	if OutcomeStrip(nil, 10) != "" {
		t.Error("empty history should render nothing")
	}

	history := []bool{true, false, true, true}
	if got := strings.Count(OutcomeStrip(history, 10), "●"); got != 4 {
		t.Errorf("dots = %d, want 4", got)
	}

	trimmed := OutcomeStrip(history, 2)
	if got := strings.Count(trimmed, "●"); got != 2 {
		t.Errorf("dots = %d, want 2", got)
	}
	if !strings.Contains(trimmed, "…") {
		t.Errorf("trimmed strip should start with an ellipsis: %q", trimmed)
	}
}

func TestArcadeButton_Hotkey(t *testing.T) {
	if v := ArcadeButton("DIVISION", Hotkey(1), false, 26); !strings.Contains(v, "2") || !strings.Contains(v, "DIVISION") {
		t.Errorf("button missing hotkey: %q", v)
	}
	if v := ArcadeButton("HOME", 0, true, 16); !strings.Contains(v, "▸ HOME") {
		t.Errorf("selected button = %q", v)
	}
	if Hotkey(9) != 0 || Hotkey(-1) != 0 || Hotkey(0) != 1 {
		t.Error("hotkeys cover items 0..8 only")
	}
}

package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

type stubScreen struct {
	title string
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "content of " + s.title }
func (s *stubScreen) Title() string                           { return s.title }

type backMsg struct{}

type drillStub struct {
	stubScreen
	backs int
}

func (d *drillStub) Back() tea.Cmd {
	d.backs++
	return func() tea.Msg { return backMsg{} }
}

func (d *drillStub) Status() layout.Status {
	return layout.Status{Streak: 4, Best: "3.20s"}
}

func (d *drillStub) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
}

func escKey() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func TestEscAtRootIsNoop(t *testing.T) {
	m := NewModel(&stubScreen{title: "home"})
	_, cmd := m.Update(escKey())
	if cmd != nil {
		t.Error("expected no command at root")
	}
}

func TestEscPops(t *testing.T) {
	m := NewModel(&stubScreen{title: "home"})
	m.router.Push(&stubScreen{title: "picker"})

	_, cmd := m.Update(escKey())
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscDelegatesToBackHandler(t *testing.T) {
	m := NewModel(&stubScreen{title: "home"})
	d := &drillStub{stubScreen: stubScreen{title: "drill"}}
	m.router.Push(d)

	_, cmd := m.Update(escKey())
	if d.backs != 1 {
		t.Fatalf("Back called %d times", d.backs)
	}
	if _, ok := cmd().(backMsg); !ok {
		t.Error("expected the screen's back command")
	}
}

func TestCtrlCClosesActiveScreen(t *testing.T) {
	d := &drillStub{stubScreen: stubScreen{title: "drill"}}
	m := NewModel(d)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if d.backs != 1 {
		t.Errorf("Back called %d times", d.backs)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewRendersStatusAndHints(t *testing.T) {
	d := &drillStub{stubScreen: stubScreen{title: "drill"}}
	var model tea.Model = NewModel(d)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	content := model.(AppModel).render()
	for _, want := range []string{"mathdrill", "drill", "🔥 4", "★ 3.20s", "Submit", "content of drill"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	var model tea.Model = NewModel(&stubScreen{title: "home"})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(model.(AppModel).render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}

func TestRenderEmptyBeforeResize(t *testing.T) {
	m := NewModel(&stubScreen{title: "home"})
	if m.render() != "" {
		t.Error("expected empty frame before the first WindowSizeMsg")
	}
}

type initCounter struct {
	stubScreen
	inits int
}

func (s *initCounter) Init() tea.Cmd {
	s.inits++
	return nil
}

func TestInitOnlyInitsTopScreen(t *testing.T) {
	home := &initCounter{stubScreen: stubScreen{title: "home"}}
	drill := &initCounter{stubScreen: stubScreen{title: "drill"}}
	m := NewModel(home, drill)
	m.Init()

	if drill.inits != 1 || home.inits != 0 {
		t.Errorf("inits: drill=%d home=%d, want 1 and 0", drill.inits, home.inits)
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
}

package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// maxInputWidth bounds the answer buffer.
const maxInputWidth = 16

// DrillScreen runs a drill session for one category.
type DrillScreen struct {
	id      uint64
	env     Env
	session *sess.Session
	state   sess.State
	input   components.AnswerInput
	last    time.Time
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)
var _ screen.BackHandler = (*DrillScreen)(nil)

// New creates a drill screen for cat. The session starts in Init.
func New(env Env, cat catalog.Category) *DrillScreen {
	env = env.withDefaults()
	return &DrillScreen{
		id:      screenIDs.Add(1),
		env:     env,
		session: env.NewSession(),
		state:   sess.State{Category: cat},
		input:   components.NewAnswerInput(cat.Alphabet, maxInputWidth),
	}
}

// Session exposes the underlying session.
func (s *DrillScreen) Session() *sess.Session {
	return s.session
}

func (s *DrillScreen) Init() tea.Cmd {
	s.session.Start(s.state.Category)
	s.sync()
	return tea.Batch(s.input.Init(), s.tick())
}

func (s *DrillScreen) Title() string {
	if fam, ok := s.family(); ok {
		return fam.Name + " · " + s.state.Category.Name
	}
	return s.state.Category.Name
}

func (s *DrillScreen) family() (catalog.Family, bool) {
	for _, f := range s.env.Catalog.Families() {
		if f.ID == s.state.Category.Family {
			return f, true
		}
	}
	return catalog.Family{}, false
}

func (s *DrillScreen) Status() layout.Status {
	st := layout.Status{Streak: s.state.Streak}
	if s.state.HasBest {
		st.Best = s.state.Category.Score.Format(s.state.BestValue)
	}
	return st
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.state.Phase != sess.PhaseAnswering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Tab", Description: "Variant"},
			{Key: "Esc", Description: "Finish"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if p := s.state.Problem; p != nil && p.Hint != "" && !s.state.HintShown {
		hints = append(hints, layout.KeyHint{Key: "?", Description: "Hint"})
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "Variant"},
		layout.KeyHint{Key: "Esc", Description: "Finish"},
	)
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != s.id {
			return s, nil
		}
		if !s.last.IsZero() {
			s.session.Tick(msg.at.Sub(s.last))
		}
		s.last = msg.at
		s.sync()
		return s, s.tick()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DrillScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.session.Submit()
		s.sync()
		return s, nil
	case "?":
		s.session.ShowHint()
		s.sync()
		return s, nil
	case "tab":
		return s, s.nextVariant()
	}

	if s.state.Phase != sess.PhaseAnswering {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.session.SetInput(s.input.Value())
	s.sync()
	return s, cmd
}

// nextVariant switches to the next category of the same family.
func (s *DrillScreen) nextVariant() tea.Cmd {
	next, err := s.env.Catalog.Next(s.state.Category.ID)
	if err != nil || next.ID == s.state.Category.ID {
		return nil
	}
	s.env.Logger.Info("switch category", "from", s.state.Category.ID, "to", next.ID)
	s.session.SetCategory(next)
	s.input = components.NewAnswerInput(next.Alphabet, maxInputWidth)
	s.sync()
	return s.input.Init()
}

// Back ends the run. A run with answered problems goes to the summary.
func (s *DrillScreen) Back() tea.Cmd {
	s.session.Close()
	sum := s.session.Summary()
	if sum.Total == 0 {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	st := s.session.Snapshot()
	var best string
	if st.HasBest {
		best = st.Category.Score.Format(st.BestValue)
	}
	env, cat := s.env, st.Category
	next := summary.New(sum, s.Title(), best, func() screen.Screen { return New(env, cat) })
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// sync pulls the session state and mirrors the buffer into the input.
func (s *DrillScreen) sync() {
	s.state = s.session.Snapshot()
	if s.input.Value() != s.state.Input {
		s.input.SetValue(s.state.Input)
	}
}

func (s *DrillScreen) tick() tea.Cmd {
	id := s.id
	return tea.Tick(s.env.Tick, func(t time.Time) tea.Msg {
		return tickMsg{id: id, at: t}
	})
}

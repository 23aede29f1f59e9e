package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/history"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// statsTimeout bounds the home dashboard query.
const statsTimeout = 2 * time.Second

// stats feeds the dashboard bar.
type stats struct {
	bests   int
	rounds  int
	correct int
	err     error
}

type statsLoadedMsg stats

// HomeScreen is the main menu: one entry per drill family.
type HomeScreen struct {
	env        sessionscreen.Env
	menu       components.Menu
	menuLabels []string
	stats      stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a HomeScreen listing the families of env.Catalog.
func New(env sessionscreen.Env) *HomeScreen {
	if env.Catalog == nil {
		env.Catalog = catalog.Builtin()
	}

	var labels []string
	var items []components.MenuItem
	for _, fam := range env.Catalog.Families() {
		labels = append(labels, strings.ToUpper(fam.Name))
		items = append(items, components.MenuItem{Label: fam.Name, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: NewVariants(env, fam)}
			}
		}})
	}

	if env.Rounds != nil {
		labels = append(labels, "HISTORY")
		items = append(items, components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(env.Rounds)}
			}
		}})
	}

	labels = append(labels, "EXIT")
	items = append(items, components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &HomeScreen{
		env:        env,
		menu:       components.NewMenu(items),
		menuLabels: labels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	env := h.env
	return func() tea.Msg {
		return statsLoadedMsg(loadStats(env))
	}
}

// loadStats counts stored bests and logged rounds.
func loadStats(env sessionscreen.Env) stats {
	var st stats
	if env.Scores != nil {
		seen := make(map[string]bool)
		for _, c := range env.Catalog.All() {
			if seen[c.StoreKey] {
				continue
			}
			seen[c.StoreKey] = true
			if _, ok := env.Scores.Best(c.StoreKey); ok {
				st.bests++
			}
		}
	}
	if env.Rounds != nil {
		ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
		defer cancel()
		all, err := env.Rounds.StatsByCategory(ctx)
		if err != nil {
			st.err = err
			return st
		}
		for _, s := range all {
			st.rounds += s.Attempted
			st.correct += s.Correct
		}
	}
	return st
}

// Resume reloads the dashboard when the learner comes back from a drill.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.Init()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.stats = stats(msg)
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and gaps.
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.stats), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	// Bordered buttons take three lines each.
	if !compact && len(h.menuLabels)*3+24 <= height {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

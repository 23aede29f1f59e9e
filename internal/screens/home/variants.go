package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/catalog"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// VariantScreen lists the categories of one family with their best values.
type VariantScreen struct {
	env    sessionscreen.Env
	family catalog.Family
	cats   []catalog.Category
	menu   components.Menu
}

var _ screen.Screen = (*VariantScreen)(nil)
var _ screen.KeyHintProvider = (*VariantScreen)(nil)
var _ screen.Resumer = (*VariantScreen)(nil)

// NewVariants creates the picker for fam.
func NewVariants(env sessionscreen.Env, fam catalog.Family) *VariantScreen {
	if env.Catalog == nil {
		env.Catalog = catalog.Builtin()
	}
	s := &VariantScreen{
		env:    env,
		family: fam,
		cats:   env.Catalog.ByFamily(fam.ID),
	}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *VariantScreen) items() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.cats))
	for _, c := range s.cats {
		item := components.MenuItem{Label: c.Name, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(s.env, c)}
			}
		}}
		if s.env.Scores != nil {
			if v, ok := s.env.Scores.Best(c.StoreKey); ok {
				item.Detail = "★ " + c.Score.Format(v)
			}
		}
		items = append(items, item)
	}
	return items
}

func (s *VariantScreen) Init() tea.Cmd {
	return nil
}

// Resume reloads the best values after a drill.
func (s *VariantScreen) Resume() tea.Cmd {
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.items())
	s.menu.Selected = selected
	return nil
}

func (s *VariantScreen) Title() string {
	return s.family.Name
}

func (s *VariantScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *VariantScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *VariantScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(cw).Inherit(theme.Title).Render(s.family.Name))
	b.WriteString("\n")
	if s.family.Description != "" {
		b.WriteString(lipgloss.NewStyle().Width(cw).Inherit(theme.Subtitle).Render(s.family.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.ArcadeCard(strings.TrimRight(s.menu.View(), "\n"), cw))

	return components.CabinetFrame(b.String(), width, height)
}

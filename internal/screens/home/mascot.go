package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Purple, waiting for the first best
	MascotCelebrating                      // Gold, star eyes: a best is on record
	MascotAlert                            // Orange: stats failed to load
)

const mascotIdle = `╭─────╮
│ • • │
│  ‿  │
│ ×÷− │
╰─────╯`

const mascotCelebrating = `╭─────╮
│ ★ ★ │
│  ◡  │
│ ×÷− │
╰─┬─┬─╯
  ★ ★`

const mascotAlert = `╭─────╮
│ • • │ ?
│  ~  │
│ ×÷− │
╰─────╯`

// RenderMascot returns the colored mascot art for v.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotAlert:
		art, fg = mascotAlert, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}

// mascotFor picks the variant matching the home stats.
func mascotFor(st stats) MascotVariant {
	switch {
	case st.err != nil:
		return MascotAlert
	case st.bests > 0:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

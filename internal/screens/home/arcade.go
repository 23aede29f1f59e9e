package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const arcadeKicker = "M · A · T · H"

// Block-letter title.
const arcadeTitleFull = ` ██████╗ ██████╗ ██╗██╗     ██╗     
 ██╔══██╗██╔══██╗██║██║     ██║     
 ██║  ██║██████╔╝██║██║     ██║     
 ██║  ██║██╔══██╗██║██║     ██║     
 ██████╔╝██║  ██║██║███████╗███████╗
 ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

const arcadeTitleCompact = "M A T H · D R I L L"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)
	block := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	if compact {
		return block.Render(style.Render(arcadeTitleCompact))
	}
	kicker := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(arcadeKicker)
	return block.Render(kicker + "\n" + style.Render(arcadeTitleFull))
}

// renderStatsBar renders the dashboard stats in a double-bordered box.
func renderStatsBar(st stats, cw int, compact bool) string {
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	roundStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	accuracy := dimStyle.Render("✓ --")
	if st.rounds > 0 {
		accuracy = accStyle.Render(fmt.Sprintf("✓ %.0f%%", 100*float64(st.correct)/float64(st.rounds)))
	}

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			bestStyle.Render(fmt.Sprintf("★%d", st.bests)),
			roundStyle.Render(fmt.Sprintf("◆%d", st.rounds)),
			accuracy,
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			bestStyle.Render(fmt.Sprintf("★ %d BESTS", st.bests)),
			roundStyle.Render(fmt.Sprintf("◆ %d ROUNDS", st.rounds)),
			accuracy,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, components.Hotkey(i), i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for terminals
// too short for bordered buttons.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if k := components.Hotkey(i); k > 0 {
			label = fmt.Sprintf("%d %s", k, label)
		}
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

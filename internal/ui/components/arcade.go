package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// ContentWidth returns the inner width shared by the boxes of a cabinet
// screen: the frame less border and padding, clamped to 20..60.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Hotkey returns the number key that jumps to menu item i, or 0 when the
// item has none.
func Hotkey(i int) int {
	if i < 0 || i >= 9 {
		return 0
	}
	return i + 1
}

// ArcadeButton renders a fixed-width menu button. A hotkey in 1..9 is
// shown before the label.
func ArcadeButton(label string, hotkey int, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	key := ""
	if hotkey >= 1 && hotkey <= 9 {
		key = fmt.Sprintf("%d ", hotkey)
	}

	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + key + label)
	}
	if key != "" {
		key = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(key)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(key + label)
}

package components

import (
	"strings"

	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BalanceMeter renders a two-sided bar centered on zero. ratio is the
// balance divided by the largest absolute balance, clamped to [-1, 1].
// Negative ratios fill leftward in the Owes color, positive ones rightward
// in the Owed color.
func BalanceMeter(ratio float64, width int) string {
	t := theme.Active

	if width < 3 {
		width = 3
	}
	ratio = min(max(ratio, -1), 1)

	half := (width - 1) / 2
	filled := int(abs(ratio)*float64(half) + 0.5)
	if ratio != 0 && filled == 0 {
		filled = 1
	}

	track := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	axis := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	owes := lipgloss.NewStyle().Foreground(t.Owes).Background(t.Surface)
	owed := lipgloss.NewStyle().Foreground(t.Owed).Background(t.Surface)

	var left, right string
	rightHalf := width - 1 - half
	switch {
	case ratio < 0:
		left = track.Render(strings.Repeat("─", half-filled)) + owes.Render(strings.Repeat("█", filled))
		right = track.Render(strings.Repeat("─", rightHalf))
	case ratio > 0:
		filled = min(filled, rightHalf)
		left = track.Render(strings.Repeat("─", half))
		right = owed.Render(strings.Repeat("█", filled)) + track.Render(strings.Repeat("─", rightHalf-filled))
	default:
		left = track.Render(strings.Repeat("─", half))
		right = track.Render(strings.Repeat("─", rightHalf))
	}

	return left + axis.Render("│") + right
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

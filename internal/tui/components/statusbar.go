package components

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusTotals is the right-hand summary shown in the status bar.
type StatusTotals struct {
	OwedToUser string
	UserOwes   string
	Friends    int
}

// RenderStatusBar renders the bottom status bar. notice, when set, replaces
// the key hints on the left.
func RenderStatusBar(width int, notice string, totals StatusTotals) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	hint := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	owed := lipgloss.NewStyle().Foreground(t.Owed).Background(t.Surface).Bold(true)
	owes := lipgloss.NewStyle().Foreground(t.Owes).Background(t.Surface).Bold(true)
	warn := lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface)

	left := hint.Render(" [?]help  [q]uit")
	if notice != "" {
		left = warn.Render(" " + notice)
	}

	right := hint.Render(pluralFriends(totals.Friends)+"  owed ") + owed.Render(totals.OwedToUser) +
		hint.Render("  owe ") + owes.Render(totals.UserOwes) + hint.Render(" ")

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	gap := hint.Render(strings.Repeat(" ", padding))

	return style.Render(left + gap + right)
}

func pluralFriends(n int) string {
	switch n {
	case 1:
		return "1 friend"
	default:
		return strconv.Itoa(n) + " friends"
	}
}

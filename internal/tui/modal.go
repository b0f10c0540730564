package tui

import (
	"fmt"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// modalOpen reports whether a delete confirmation is pending.
func (a App) modalOpen() bool {
	_, ok := a.ledger.PendingDelete()
	return ok
}

// updateDeleteModal answers the pending delete. Every other key is ignored.
func (a App) updateDeleteModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		f, err := a.ledger.ConfirmDelete()
		if err == nil {
			a.notice = fmt.Sprintf("Deleted %s", f.Name)
		}
		a.syncSelection()
	case key.Matches(msg, a.keys.Deny):
		a.ledger.CancelDelete()
		a.refreshActivity()
	}
	return a, nil
}

func (a App) viewDeleteModal() string {
	t := theme.Active
	f, _ := a.ledger.PendingDelete()

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Warn).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface).Bold(true)

	body := titleStyle.Render(fmt.Sprintf("Really delete %s?", f.Name)) + "\n" +
		mutedStyle.Render(cli.BalancePhrase(f, a.currency())) + "\n\n" +
		keyStyle.Render("y") + mutedStyle.Render(" delete   ") +
		keyStyle.Render("n") + mutedStyle.Render(" keep")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/journal"
	"github.com/theirongolddev/eatsplit/internal/ledger"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderActivityTab(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.journal == nil {
		return components.ContentCard("Activity", mutedStyle.Render("Activity log is unavailable this session."), cw)
	}
	if len(a.activity) == 0 {
		return components.ContentCard("Activity", mutedStyle.Render("Nothing yet. Split a bill or add a friend."), cw)
	}

	innerW := components.CardInnerWidth(cw)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	for i, e := range a.activity {
		if i > 0 {
			b.WriteString("\n")
		}
		line := timeStyle.Render(e.At.Local().Format("15:04:05")) + mutedStyle.Render("  ") + a.describeEntry(e)
		b.WriteString(truncateStyled(line, innerW))
	}
	return components.ContentCard(fmt.Sprintf("Activity (%d)", len(a.activity)), b.String(), cw)
}

// describeEntry renders one journal entry as a sentence.
func (a App) describeEntry(e journal.Entry) string {
	t := theme.Active
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	name := textStyle.Render(e.FriendName)
	switch e.Kind {
	case ledger.EventAdded:
		return mutedStyle.Render("Added ") + name
	case ledger.EventSelected:
		return mutedStyle.Render("Opened split with ") + name
	case ledger.EventDeselected:
		return mutedStyle.Render("Closed split with ") + name
	case ledger.EventDeleteRequested:
		return mutedStyle.Render("Asked to delete ") + name
	case ledger.EventDeleteCancelled:
		return mutedStyle.Render("Kept ") + name
	case ledger.EventDeleted:
		return lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface).Render("Deleted ") + name
	case ledger.EventSettled:
		color := t.Owed
		if e.Amount.IsNegative() {
			color = t.Owes
		}
		amount := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true).
			Render(cli.FormatSigned(e.Amount, a.currency()))
		after := ledger.Friend{Name: e.FriendName, Balance: e.Balance}
		return mutedStyle.Render("Split with ") + name + mutedStyle.Render(" ") + amount +
			mutedStyle.Render(" · "+cli.BalancePhrase(after, a.currency()))
	}
	return mutedStyle.Render(string(e.Kind)+" ") + name
}

// truncateStyled cuts a styled line that would overflow width.
func truncateStyled(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

package tui

import (
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/ledger"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const meterWidth = 21

// updateFriends handles list keys on the Friends tab.
func (a App) updateFriends(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	friends := a.ledger.Friends()

	switch {
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(friends)-1 {
			a.cursor++
		}
		return a, nil, true

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil, true

	case key.Matches(msg, a.keys.Toggle):
		if len(friends) == 0 {
			return a, nil, true
		}
		if err := a.ledger.ToggleSelect(friends[a.cursor].ID); err != nil {
			return a, nil, true
		}
		a.syncSelection()
		if a.split.active() {
			return a, a.split.focusCmd(), true
		}
		return a, nil, true

	case key.Matches(msg, a.keys.Add):
		cmd := a.openAddForm()
		return a, cmd, true

	case key.Matches(msg, a.keys.Delete):
		if len(friends) == 0 {
			return a, nil, true
		}
		_ = a.ledger.RequestDelete(friends[a.cursor].ID)
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderFriendsTab(cw int) string {
	t := theme.Active
	friends := a.ledger.Friends()
	totals := a.ledger.Totals()

	netColor := t.TextPrimary
	switch totals.Net.Sign() {
	case 1:
		netColor = t.Owed
	case -1:
		netColor = t.Owes
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Owed to you", Value: cli.FormatMoney(totals.OwedToUser, a.currency()), Color: t.Owed},
		{Label: "You owe", Value: cli.FormatMoney(totals.UserOwes, a.currency()), Color: t.Owes},
		{Label: "Net", Value: cli.FormatSigned(totals.Net, a.currency()), Color: netColor},
	}, cw))
	b.WriteString("\n")

	if !a.split.active() {
		b.WriteString(components.ContentCard("Friends", a.renderFriendList(friends, components.CardInnerWidth(cw)), cw))
		return b.String()
	}

	sel, _ := a.ledger.Selected()
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Friends", a.renderFriendList(friends, components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.FocusCard("Split a bill with "+sel.Name, a.renderSplitPanel(sel), cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Friends", a.renderFriendList(friends, components.CardInnerWidth(widths[0])), widths[0]),
		components.FocusCard("Split a bill with "+sel.Name, a.renderSplitPanel(sel), widths[1]),
	}))
	return b.String()
}

func (a App) renderFriendList(friends []ledger.Friend, innerW int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(friends) == 0 {
		return mutedStyle.Render("No friends yet. Press n to add one.")
	}

	maxAbs := decimal.Zero
	for _, f := range friends {
		if abs := f.Balance.Abs(); abs.GreaterThan(maxAbs) {
			maxAbs = abs
		}
	}

	meterW := meterWidth
	showMeter := innerW >= 60
	phraseW := innerW - 4
	if showMeter {
		phraseW -= meterW + 2
	}

	selected, _ := a.ledger.Selected()

	var b strings.Builder
	for i, f := range friends {
		bg := t.Surface
		if i == a.cursor {
			bg = t.SurfaceBright
		}

		rowColor := t.TextPrimary
		switch f.Standing() {
		case ledger.Owes:
			rowColor = t.Owes
		case ledger.Owed:
			rowColor = t.Owed
		}

		cursorMark := "  "
		if i == a.cursor {
			cursorMark = "▸ "
		}
		selMark := "  "
		if f.ID == selected.ID && selected.ID != "" {
			selMark = "● "
		}

		markStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(bg)
		phraseStyle := lipgloss.NewStyle().Foreground(rowColor).Background(bg)
		if i == a.cursor {
			phraseStyle = phraseStyle.Bold(true)
		}

		phrase := truncStr(cli.BalancePhrase(f, a.currency()), phraseW)
		row := markStyle.Render(cursorMark+selMark) + phraseStyle.Render(phrase)
		if showMeter {
			gap := max(innerW-meterW-lipgloss.Width(row), 1)
			ratio := 0.0
			if !maxAbs.IsZero() {
				ratio = f.Balance.Div(maxAbs).InexactFloat64()
			}
			row += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap)) +
				components.BalanceMeter(ratio, meterW)
		}
		b.WriteString(lipgloss.PlaceHorizontal(innerW, lipgloss.Left, row,
			lipgloss.WithWhitespaceBackground(bg)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter select · n add · d delete"))
	return b.String()
}

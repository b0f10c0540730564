package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/ledger"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type splitField int

const (
	fieldBill splitField = iota
	fieldOwn
	fieldPayer
	splitFieldCount // sentinel
)

// splitState is the split panel of the selected friend. A zero value
// means no panel is open.
type splitState struct {
	friendID string
	form     ledger.BillSplit
	bill     textinput.Model
	own      textinput.Model
	focus    splitField
}

func newSplitState(friendID string) splitState {
	s := splitState{
		friendID: friendID,
		form:     ledger.NewBillSplit(),
		bill:     newAmountInput("bill"),
		own:      newAmountInput("your share"),
	}
	s.bill.Focus()
	return s
}

func newAmountInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 16
	ti.Width = 16
	ti.Prompt = ""
	return ti
}

func (s splitState) active() bool {
	return s.friendID != ""
}

func (s splitState) focusCmd() tea.Cmd {
	switch s.focus {
	case fieldBill:
		return s.bill.Cursor.BlinkCmd()
	case fieldOwn:
		return s.own.Cursor.BlinkCmd()
	}
	return nil
}

func (s *splitState) setFocus(f splitField) {
	s.focus = f
	s.bill.Blur()
	s.own.Blur()
	switch f {
	case fieldBill:
		s.bill.Focus()
	case fieldOwn:
		s.own.Focus()
	}
}

// syncInputs rewrites the inputs from the form when they differ, so a
// rejected keystroke leaves the previous value on screen.
func (s *splitState) syncInputs() {
	if s.bill.Value() != s.form.Bill() {
		s.bill.SetValue(s.form.Bill())
	}
	if s.own.Value() != s.form.OwnShare() {
		s.own.SetValue(s.form.OwnShare())
	}
}

// updateSplit handles keys while the split panel is open. It reports
// false for keys the panel leaves to the rest of the app.
func (a App) updateSplit(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.ledger.Deselect()
		a.syncSelection()
		return a, nil, true

	case key.Matches(msg, a.keys.NextField):
		a.split.setFocus((a.split.focus + 1) % splitFieldCount)
		return a, a.split.focusCmd(), true

	case key.Matches(msg, a.keys.PrevField):
		a.split.setFocus((a.split.focus + splitFieldCount - 1) % splitFieldCount)
		return a, a.split.focusCmd(), true

	case key.Matches(msg, a.keys.Submit):
		return a.submitSplit()
	}

	switch a.split.focus {
	case fieldPayer:
		if key.Matches(msg, a.keys.Payer) {
			a.split.form.TogglePayer()
			return a, nil, true
		}
		return a, nil, false

	case fieldBill:
		var cmd tea.Cmd
		a.split.bill, cmd = a.split.bill.Update(msg)
		a.split.form.SetBill(a.split.bill.Value())
		a.split.syncInputs()
		return a, cmd, true

	default:
		var cmd tea.Cmd
		a.split.own, cmd = a.split.own.Update(msg)
		a.split.form.SetOwnShare(a.split.own.Value())
		a.split.syncInputs()
		return a, cmd, true
	}
}

// updateSplitInputs forwards non-key messages such as cursor blinks.
func (a App) updateSplitInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var billCmd, ownCmd tea.Cmd
	a.split.bill, billCmd = a.split.bill.Update(msg)
	a.split.own, ownCmd = a.split.own.Update(msg)
	return a, tea.Batch(billCmd, ownCmd)
}

// submitSplit settles the form. Incomplete input is ignored without a
// notice; the panel stays open.
func (a App) submitSplit() (tea.Model, tea.Cmd, bool) {
	before, _ := a.ledger.Friend(a.split.friendID)
	amount, err := a.split.form.Amount()
	if err != nil {
		return a, nil, true
	}
	f, err := a.split.form.Submit(a.ledger, a.split.friendID)
	if err != nil {
		if !errors.Is(err, ledger.ErrValidation) {
			a.notice = err.Error()
		}
		return a, nil, true
	}
	a.notice = fmt.Sprintf("Split with %s: %s (%s → %s)", f.Name,
		cli.FormatSigned(amount, a.currency()),
		cli.FormatSigned(before.Balance, a.currency()),
		cli.FormatSigned(f.Balance, a.currency()))
	a.syncSelection()
	return a, nil, true
}

func (a App) renderSplitPanel(f ledger.Friend) string {
	t := theme.Active
	s := a.split

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	focusLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	activeStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)

	label := func(field splitField, text string) string {
		text = fmt.Sprintf("%-16s", text)
		if s.focus == field {
			return focusLabelStyle.Render("▸ " + text)
		}
		return labelStyle.Render("  " + text)
	}

	friendShare := dimStyle.Render("-")
	if v, ok := s.form.FriendShare(); ok {
		friendShare = valueStyle.Render(cli.FormatMoney(v, a.currency()))
	}

	option := func(p ledger.Payer, text string) string {
		if s.form.Payer() == p {
			return activeStyle.Render(" " + text + " ")
		}
		return labelStyle.Render(" " + text + " ")
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(f.Image))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(cli.BalancePhrase(f, a.currency())))
	b.WriteString("\n\n")

	b.WriteString(label(fieldBill, "Bill value"))
	b.WriteString(s.bill.View())
	b.WriteString("\n")
	b.WriteString(label(fieldOwn, "Your expense"))
	b.WriteString(s.own.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  " + fmt.Sprintf("%-16s", truncStr(f.Name+"'s expense", 16))))
	b.WriteString(friendShare)
	b.WriteString("\n")
	b.WriteString(label(fieldPayer, "Who is paying?"))
	b.WriteString(option(ledger.PayerUser, "You"))
	b.WriteString(labelStyle.Render(" "))
	b.WriteString(option(ledger.PayerFriend, f.Name))
	b.WriteString("\n\n")

	if amount, err := s.form.Amount(); err == nil {
		after := f.Balance.Add(amount)
		preview := ledger.Friend{Name: f.Name, Balance: after}
		b.WriteString(labelStyle.Render("After split: "))
		b.WriteString(valueStyle.Render(cli.BalancePhrase(preview, a.currency())))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(strings.Join([]string{"tab next", "enter split", "esc close"}, " · ")))
	return b.String()
}

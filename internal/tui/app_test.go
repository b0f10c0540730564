package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/journal"
	"github.com/theirongolddev/eatsplit/internal/ledger"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) App {
	t.Helper()

	j, err := journal.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	l, err := ledger.New(
		ledger.WithFriends([]ledger.Friend{
			{ID: "f1", Name: "დათა", Image: "img1", Balance: decimal.NewFromInt(-7)},
			{ID: "f2", Name: "ნანა", Image: "img2", Balance: decimal.NewFromInt(20)},
		}),
		ledger.WithObserver(j),
	)
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	t.Cleanup(func() { theme.SetActive(config.DefaultConfig().Appearance.Theme) })

	a := NewApp(l, j, cfg, filepath.Join(t.TempDir(), "config.toml"))
	return press(a, tea.WindowSizeMsg{Width: 140, Height: 40})
}

func press(a App, msgs ...tea.Msg) App {
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends s one rune at a time.
func typeText(a App, s string) App {
	for _, r := range s {
		a = press(a, runes(string(r)))
	}
	return a
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	down     = tea.KeyMsg{Type: tea.KeyDown}
	right    = tea.KeyMsg{Type: tea.KeyRight}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func balance(t *testing.T, a App, id string) string {
	t.Helper()
	f, ok := a.ledger.Friend(id)
	require.True(t, ok, "friend %s", id)
	return f.Balance.String()
}

func TestSelectOpensSplitPanel(t *testing.T) {
	a := newTestApp(t)
	a = press(a, enter)

	sel, ok := a.ledger.Selected()
	require.True(t, ok)
	assert.Equal(t, "f1", sel.ID)
	assert.True(t, a.split.active())
	assert.Equal(t, fieldBill, a.split.focus)
	assert.Contains(t, a.View(), "Split a bill with დათა")

	a = press(a, esc)
	_, ok = a.ledger.Selected()
	assert.False(t, ok)
	assert.False(t, a.split.active())
}

func TestSplitUserPays(t *testing.T) {
	a := newTestApp(t)
	a = press(a, enter)
	a = typeText(a, "100")
	a = press(a, tab)
	a = typeText(a, "20")
	a = press(a, enter)

	assert.Equal(t, "73", balance(t, a, "f1"))
	_, ok := a.ledger.Selected()
	assert.False(t, ok)
	assert.False(t, a.split.active())
	assert.Contains(t, a.notice, "დათა")
}

func TestSplitFriendPays(t *testing.T) {
	a := newTestApp(t)
	a = press(a, down, enter)
	a = typeText(a, "100")
	a = press(a, tab)
	a = typeText(a, "20")
	a = press(a, tab, runes("p"))
	require.Equal(t, ledger.PayerFriend, a.split.form.Payer())
	a = press(a, enter)

	assert.Equal(t, "0", balance(t, a, "f2"))
	assert.Equal(t, "-7", balance(t, a, "f1"))
}

func TestPayerRowToggles(t *testing.T) {
	a := newTestApp(t)
	a = press(a, enter, shiftTab)
	require.Equal(t, fieldPayer, a.split.focus)

	a = press(a, right)
	assert.Equal(t, ledger.PayerFriend, a.split.form.Payer())
	assert.Equal(t, tabFriends, a.activeTab, "arrows toggle the payer instead of switching tabs")

	a = press(a, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, ledger.PayerUser, a.split.form.Payer())
}

func TestOwnShareCannotExceedBill(t *testing.T) {
	a := newTestApp(t)
	a = press(a, enter)
	a = typeText(a, "50")
	a = press(a, tab)
	a = typeText(a, "60")

	assert.Equal(t, "6", a.split.form.OwnShare())
	assert.Equal(t, "6", a.split.own.Value())
}

func TestLoweringBillClearsOwnShare(t *testing.T) {
	a := newTestApp(t)
	a = press(a, enter)
	a = typeText(a, "50")
	a = press(a, tab)
	a = typeText(a, "40")
	a = press(a, shiftTab, tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "5", a.split.form.Bill())
	assert.Equal(t, "", a.split.form.OwnShare())
	assert.Equal(t, "", a.split.own.Value())
}

func TestRejectedKeystrokeKeepsValue(t *testing.T) {
	a := newTestApp(t)
	a = press(a, enter)
	a = typeText(a, "12")
	a = typeText(a, "x-qeE+")

	assert.Equal(t, "12", a.split.form.Bill())
	assert.Equal(t, "12", a.split.bill.Value())
	assert.True(t, a.split.active(), "q inside a field does not quit")
}

func TestIncompleteSplitIsIgnored(t *testing.T) {
	a := newTestApp(t)
	a = press(a, enter)
	a = typeText(a, "100")
	a = press(a, enter)

	assert.Equal(t, "-7", balance(t, a, "f1"))
	assert.True(t, a.split.active())
	assert.Empty(t, a.notice)
}

func TestDeleteModal(t *testing.T) {
	a := newTestApp(t)
	a = press(a, runes("d"))
	require.True(t, a.modalOpen())
	assert.Contains(t, a.View(), "Really delete დათა?")

	m, cmd := a.Update(runes("q"))
	a = m.(App)
	assert.False(t, isQuit(cmd), "modal swallows q")
	a = press(a, runes("x"), down, enter)
	require.False(t, a.modalOpen(), "enter confirms")
	assert.Equal(t, 1, a.ledger.Len())

	_, ok := a.ledger.Friend("f1")
	assert.False(t, ok)
	assert.Equal(t, tabFriends, a.activeTab, "x was ignored while the modal was open")
	assert.Contains(t, a.notice, "Deleted დათა")
}

func TestDeleteModalCancel(t *testing.T) {
	a := newTestApp(t)
	a = press(a, down, runes("d"), runes("n"))

	assert.False(t, a.modalOpen())
	assert.Equal(t, 2, a.ledger.Len())

	a = press(a, runes("d"), esc)
	assert.False(t, a.modalOpen())
	assert.Equal(t, 2, a.ledger.Len())
}

func TestDeleteSelectedFriendClosesSplit(t *testing.T) {
	a := newTestApp(t)
	a = press(a, down, enter, tab, tab)
	require.Equal(t, fieldPayer, a.split.focus)

	a = press(a, runes("d"), runes("y"))
	assert.False(t, a.split.active())
	_, ok := a.ledger.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, a.cursor, "cursor clamps to the shorter list")
}

func TestCtrlCQuitsFromModal(t *testing.T) {
	a := newTestApp(t)
	a = press(a, runes("d"))
	_, cmd := a.Update(ctrlC)
	assert.True(t, isQuit(cmd))
}

func TestQuitKey(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestAddFriendForm(t *testing.T) {
	a := newTestApp(t)
	a = press(a, runes("n"))
	require.NotNil(t, a.addForm)
	assert.Equal(t, config.DefaultConfig().General.DefaultImage, a.addVals.Image)

	a = press(a, runes("q"))
	assert.NotNil(t, a.addForm, "keys go to the form")

	a = press(a, esc)
	assert.Nil(t, a.addForm)
	assert.Equal(t, 2, a.ledger.Len())
}

func TestSubmitAddFriend(t *testing.T) {
	a := newTestApp(t)

	assert.False(t, a.submitAddFriend("  ", "img"))
	assert.False(t, a.submitAddFriend("Levan", ""))
	assert.Equal(t, 2, a.ledger.Len())
	assert.Empty(t, a.notice)

	assert.True(t, a.submitAddFriend("Levan", "https://i.pravatar.cc/48"))
	assert.Equal(t, 3, a.ledger.Len())
	assert.Equal(t, "Added Levan", a.notice)

	friends := a.ledger.Friends()
	assert.Equal(t, "Levan", friends[2].Name)
	assert.True(t, friends[2].Balance.IsZero())
}

func TestTabNavigation(t *testing.T) {
	a := newTestApp(t)

	a = press(a, runes("a"))
	assert.Equal(t, tabActivity, a.activeTab)
	a = press(a, runes("x"))
	assert.Equal(t, tabSettings, a.activeTab)
	a = press(a, right)
	assert.Equal(t, tabFriends, a.activeTab)
	a = press(a, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, tabSettings, a.activeTab)
}

func TestHelpOverlay(t *testing.T) {
	a := newTestApp(t)
	a = press(a, runes("?"))
	require.True(t, a.showHelp)
	assert.Contains(t, a.View(), "Keyboard Shortcuts")

	a = press(a, runes("j"))
	assert.False(t, a.showHelp)
	assert.Equal(t, 0, a.cursor, "closing help consumes the key")
}

func TestTooNarrow(t *testing.T) {
	a := newTestApp(t)
	a = press(a, tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Contains(t, a.View(), "Terminal too narrow")
}

func TestActivityRecordsSplit(t *testing.T) {
	a := newTestApp(t)
	a = press(a, enter)
	a = typeText(a, "30")
	a = press(a, tab)
	a = typeText(a, "10")
	a = press(a, enter, runes("a"))

	require.NotEmpty(t, a.activity)
	assert.Equal(t, ledger.EventSettled, a.activity[0].Kind)
	assert.Equal(t, "20", a.activity[0].Amount.String())

	total, err := a.journal.SettledTotal(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "20", total.String())
	assert.Contains(t, a.View(), "Split with")
}

func TestSettingsSaveTheme(t *testing.T) {
	a := newTestApp(t)
	a = press(a, runes("x"), enter)
	require.True(t, a.settings.editing)

	a.settings.input.SetValue("tokyo-night")
	a = press(a, enter)
	require.NoError(t, a.settings.saveErr)
	assert.True(t, a.settings.saved)
	assert.Equal(t, "tokyo-night", theme.Active.Name)

	saved, err := config.LoadFrom(a.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", saved.Appearance.Theme)
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	a := newTestApp(t)
	a = press(a, runes("x"), enter)
	a.settings.input.SetValue("solarized")
	a = press(a, enter)

	assert.Error(t, a.settings.saveErr)
	assert.Equal(t, "flexoki-dark", a.cfg.Appearance.Theme)
}

func TestSettingsCurrencyChangesFormatting(t *testing.T) {
	a := newTestApp(t)
	a = press(a, runes("x"), down, enter)
	a.settings.input.SetValue("$")
	a = press(a, enter, runes("f"))

	assert.Equal(t, "$", a.cfg.General.Currency)
	assert.Contains(t, a.View(), "You owe დათა $7")
}

func TestViewShowsBalances(t *testing.T) {
	a := newTestApp(t)
	view := a.View()
	assert.Contains(t, view, "You owe დათა 7₾")
	assert.Contains(t, view, "ნანა owes you 20₾")
	assert.Equal(t, 40, len(strings.Split(view, "\n")))
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
	}
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newTestApp(t)
	x := components.TabVisualWidth(components.Tabs[0], true) + 2
	a = press(a, tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, tabActivity, a.activeTab)
}

// Package tui provides the interactive Bubble Tea front end for eatsplit.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/journal"
	"github.com/theirongolddev/eatsplit/internal/ledger"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabFriends = iota
	tabActivity
	tabSettings
)

const (
	minTerminalWidth = 60
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5

	activityLimit = 50
)

// App is the root Bubble Tea model. The ledger is shared by reference;
// every other field is per-frame state and is copied with the model.
type App struct {
	ledger  *ledger.Ledger
	journal *journal.Journal // nil when the journal could not be opened
	cfg     config.Config
	cfgPath string
	keys    *KeyMap
	help    help.Model

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	notice    string

	// Friends tab
	cursor int
	split  splitState

	// Add-friend form (huh)
	addForm *huh.Form
	addVals *addFriendValues

	settings settingsState
	activity []journal.Entry
}

// NewApp creates the TUI model around l. j may be nil. cfgPath is where
// settings edits are saved.
func NewApp(l *ledger.Ledger, j *journal.Journal, cfg config.Config, cfgPath string) App {
	theme.SetActive(cfg.Appearance.Theme)

	a := App{
		ledger:  l,
		journal: j,
		cfg:     cfg,
		cfgPath: cfgPath,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	if sel, ok := l.Selected(); ok {
		a.split = newSplitState(sel.ID)
	}
	a.refreshActivity()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(min(msg.Width, 60))
		}
		return a, nil

	case tea.MouseMsg:
		if a.modalOpen() || a.addForm != nil || a.showHelp {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.switchTab(tab)
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward cursor blinks and other internal messages to the active widget.
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.split.active() {
		return a.updateSplitInputs(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// The delete modal swallows every key it does not answer.
	if a.modalOpen() {
		return a.updateDeleteModal(msg)
	}

	if a.addForm != nil {
		if key.Matches(msg, a.keys.Cancel) {
			a.closeAddForm()
			return a, nil
		}
		return a.updateAddForm(msg)
	}

	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if a.activeTab == tabFriends && a.split.active() {
		if model, cmd, handled := a.updateSplit(msg); handled {
			return model, cmd
		}
	}

	if key.Matches(msg, a.keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	a.notice = ""

	switch a.activeTab {
	case tabFriends:
		if model, cmd, handled := a.updateFriends(msg); handled {
			return model, cmd
		}
	case tabSettings:
		if model, cmd, handled := a.updateSettings(msg); handled {
			return model, cmd
		}
	}

	// Tab navigation
	switch {
	case key.Matches(msg, a.keys.PrevTab):
		a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
	case key.Matches(msg, a.keys.NextTab):
		a.switchTab((a.activeTab + 1) % len(components.Tabs))
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.switchTab(idx)
		}
	}
	return a, nil
}

func (a *App) switchTab(idx int) {
	a.activeTab = idx
	a.settings.editing = false
	if idx == tabActivity {
		a.refreshActivity()
	}
}

// refreshActivity reloads the recent journal entries.
func (a *App) refreshActivity() {
	if a.journal == nil {
		return
	}
	entries, err := a.journal.Recent(context.Background(), activityLimit)
	if err != nil {
		slog.Warn("loading activity", "error", err)
		return
	}
	a.activity = entries
}

// syncSelection reconciles the split panel with the ledger's selection.
func (a *App) syncSelection() {
	sel, ok := a.ledger.Selected()
	switch {
	case !ok:
		a.split = splitState{}
	case sel.ID != a.split.friendID:
		a.split = newSplitState(sel.ID)
	}
	if n := a.ledger.Len(); a.cursor >= n {
		a.cursor = max(n-1, 0)
	}
	a.refreshActivity()
}

func (a App) currency() string {
	return a.cfg.General.Currency
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.modalOpen() {
		return a.viewDeleteModal()
	}

	if a.addForm != nil {
		return a.viewAddForm()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  eatsplit needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	h := a.help
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.FullSeparator = dimStyle

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(h.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("f a x  jump to tab    press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	totals := a.ledger.Totals()
	statusBar := components.RenderStatusBar(w, a.notice, components.StatusTotals{
		OwedToUser: cli.FormatMoney(totals.OwedToUser, a.currency()),
		UserOwes:   cli.FormatMoney(totals.UserOwes, a.currency()),
		Friends:    a.ledger.Len(),
	})

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabFriends:
		content = a.renderFriendsTab(cw)
	case tabActivity:
		content = a.renderActivityTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

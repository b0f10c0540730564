package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/tui/components"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldCurrency
	settingsFieldImage
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message until the next edit
	saveErr error // non-nil if the last save or edit failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

// updateSettings handles navigation keys on the Settings tab.
func (a App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, a.keys.Down):
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case key.Matches(msg, a.keys.Up):
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case key.Matches(msg, a.keys.Submit):
		return a.settingsStartEdit()
	}
	return a, nil, false
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd, bool) {
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldCurrency:
		ti.Placeholder = "₾, $, €"
		ti.CharLimit = 8
		ti.SetValue(a.cfg.General.Currency)
	case settingsFieldImage:
		ti.Placeholder = "https://i.pravatar.cc/48"
		ti.SetValue(a.cfg.General.DefaultImage)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd(), true
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case key.Matches(msg, a.keys.Cancel):
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited value and writes the config file.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if _, ok := theme.Lookup(val); !ok {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		cfg.Appearance.Theme = val
	case settingsFieldCurrency:
		if val == "" {
			a.settings.saveErr = fmt.Errorf("currency symbol is required")
			return
		}
		cfg.General.Currency = val
	case settingsFieldImage:
		if val == "" {
			a.settings.saveErr = fmt.Errorf("default image is required")
			return
		}
		cfg.General.DefaultImage = val
	}

	a.cfg = cfg
	theme.SetActive(cfg.Appearance.Theme)
	if a.cfgPath != "" {
		a.settings.saveErr = config.SaveTo(a.cfgPath, cfg)
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	okStyle := lipgloss.NewStyle().Foreground(t.Owed).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	fields := []struct{ label, value string }{
		{"Theme", a.cfg.Appearance.Theme},
		{"Currency", a.cfg.General.Currency},
		{"Default image", a.cfg.General.DefaultImage},
	}

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			row := markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label+":")) +
				selectedStyle.Render(f.value)
			formBody.WriteString(lipgloss.PlaceHorizontal(innerW, lipgloss.Left, row,
				lipgloss.WithWhitespaceBackground(t.SurfaceBright)))
		} else {
			formBody.WriteString(labelStyle.Render("  " + fmt.Sprintf("%-16s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(okStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	cfgPath := a.cfgPath
	if cfgPath == "" {
		cfgPath = "(not saved)"
	}
	events := "(journal unavailable)"
	if a.journal != nil {
		if n, err := a.journal.Count(context.Background()); err == nil {
			events = cli.FormatNumber(int64(n))
		}
	}

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:    ") + valueStyle.Render(truncStr(cfgPath, innerW-16)) + "\n")
	infoBody.WriteString(labelStyle.Render("Friends:        ") + valueStyle.Render(cli.FormatNumber(int64(a.ledger.Len()))) + "\n")
	infoBody.WriteString(labelStyle.Render("Session events: ") + valueStyle.Render(events))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Session", infoBody.String(), cw))

	return b.String()
}

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/ledger"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// addFriendValues is bound to the add-friend form fields.
type addFriendValues struct {
	Name  string
	Image string
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func newAddFriendForm(vals *addFriendValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Friend name").
				Value(&vals.Name).
				Validate(required("name")),
			huh.NewInput().
				Title("Image URL").
				Value(&vals.Image).
				Validate(required("image URL")),
		),
	).WithShowHelp(false)
}

// openAddForm shows a fresh add-friend form with the configured image.
func (a *App) openAddForm() tea.Cmd {
	a.addVals = &addFriendValues{Image: a.cfg.General.DefaultImage}
	if a.addVals.Image == "" {
		a.addVals.Image = ledger.DefaultImage
	}
	a.addForm = newAddFriendForm(a.addVals)
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(min(a.width, 60))
	}
	return a.addForm.Init()
}

func (a *App) closeAddForm() {
	a.addForm = nil
	a.addVals = nil
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		a.submitAddFriend(a.addVals.Name, a.addVals.Image)
		a.closeAddForm()
		return a, nil
	case huh.StateAborted:
		a.closeAddForm()
		return a, nil
	}
	return a, cmd
}

// submitAddFriend adds the friend and reports whether it was accepted.
// Rejected input leaves the ledger untouched.
func (a *App) submitAddFriend(name, image string) bool {
	f, err := a.ledger.AddFriend(name, image)
	if err != nil {
		if !errors.Is(err, ledger.ErrValidation) {
			a.notice = err.Error()
		}
		return false
	}
	a.notice = "Added " + f.Name
	a.refreshActivity()
	return true
}

func (a App) viewAddForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := titleStyle.Render("Add friend") + "\n\n" +
		a.addForm.View() + "\n" +
		dimStyle.Render("enter next · esc cancel")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

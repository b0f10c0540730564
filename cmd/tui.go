package cmd

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/ledger"
	"github.com/theirongolddev/eatsplit/internal/logging"
	"github.com/theirongolddev/eatsplit/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive bill splitter",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, cfgErr := loadConfig()

	closeLog, err := logging.SetupFile(config.LogPath(cfg), logLevel(cfg))
	if err != nil {
		infof("  Logging disabled: %v\n", err)
	} else {
		defer func() { _ = closeLog() }()
	}
	if cfgErr != nil {
		slog.Warn("config unreadable, using defaults", "path", config.Path(), "error", cfgErr)
	}

	j := openJournal()
	if j != nil {
		defer func() { _ = j.Close() }()
	}

	var observers []ledger.Observer
	if j != nil {
		observers = append(observers, j)
	}
	l, err := newLedger(cfg, observers...)
	if err != nil {
		return err
	}
	slog.Info("session started", "friends", l.Len(), "theme", cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(l, j, cfg, config.Path())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	t := l.Totals()
	slog.Info("session ended", "friends", l.Len(), "owed_to_user", t.OwedToUser, "user_owes", t.UserOwes)
	return nil
}

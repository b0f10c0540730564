package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the wizard answers.
type setupValues struct {
	Theme        string
	Currency     string
	DefaultImage string
	Seed         bool
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		infof("  Existing config unreadable, starting from defaults: %v\n", err)
	}

	vals := setupValues{
		Theme:        cfg.Appearance.Theme,
		Currency:     cfg.General.Currency,
		DefaultImage: cfg.General.DefaultImage,
		Seed:         cfg.General.Seed,
	}

	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup wizard: %w", err)
	}

	applySetup(&cfg, vals)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `eatsplit` to start splitting.")
	fmt.Println()
	return nil
}

func newSetupForm(vals *setupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to eatsplit").
				Description("Keep track of who owes whom after shared meals."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown after amounts, or before them for $ £ € ¥.").
				Value(&vals.Currency).
				Validate(notBlank("currency symbol")),
			huh.NewInput().
				Title("Default friend image").
				Value(&vals.DefaultImage).
				Validate(notBlank("default image")),
			huh.NewConfirm().
				Title("Start each session with the sample friends?").
				Value(&vals.Seed),
		),
	)
}

func applySetup(cfg *config.Config, vals setupValues) {
	cfg.Appearance.Theme = vals.Theme
	cfg.General.Currency = strings.TrimSpace(vals.Currency)
	cfg.General.DefaultImage = strings.TrimSpace(vals.DefaultImage)
	cfg.General.Seed = vals.Seed
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

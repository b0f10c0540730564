// Package cmd implements the eatsplit CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/eatsplit/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:      %s\n", cfg.General.Currency)
	fmt.Printf("    Seed friends:  %v\n", cfg.General.Seed && !flagNoSeed)
	fmt.Printf("    ID format:     %s\n", cfg.General.IDFormat)
	fmt.Printf("    Default image: %s\n", cfg.General.DefaultImage)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", logLevel(cfg))
	fmt.Printf("    File:  %s (TUI only)\n", config.LogPath(cfg))
	fmt.Println()

	fmt.Printf("  Environment overrides use the %s prefix, e.g. %sTHEME.\n", config.EnvPrefix, config.EnvPrefix)
	fmt.Println("  Run `eatsplit setup` to reconfigure.")
	return nil
}

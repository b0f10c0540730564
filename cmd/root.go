package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/journal"
	"github.com/theirongolddev/eatsplit/internal/ledger"
	"github.com/theirongolddev/eatsplit/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagQuiet    bool
	flagLogLevel string
	flagNoSeed   bool
)

var rootCmd = &cobra.Command{
	Use:   "eatsplit",
	Short: "Split restaurant bills with friends",
	Long:  "Keep a running balance with each friend and settle shared bills in the terminal.",
	RunE:  runTUI,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoSeed, "no-seed", false, "Start with an empty friend list")
	rootCmd.PersistentPreRunE = setupLogging
}

// setupLogging sends CLI logs to stderr. The TUI owns the terminal and
// logs to a file instead.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if cmd == rootCmd || cmd == tuiCmd {
		return nil
	}
	cfg, _ := loadConfig()
	logging.Setup(logLevel(cfg))
	return nil
}

// loadConfig reads the config, falling back to defaults when it is broken
// so every command can still run.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig(), err
	}
	return cfg, nil
}

func logLevel(cfg config.Config) slog.Level {
	if flagLogLevel != "" {
		return logging.ParseLevel(flagLogLevel)
	}
	return logging.ParseLevel(cfg.Log.Level)
}

// newLedger builds a fresh session ledger from cfg. Observers receive
// every ledger event.
func newLedger(cfg config.Config, observers ...ledger.Observer) (*ledger.Ledger, error) {
	ids, err := ledger.NewIDGenerator(cfg.General.IDFormat)
	if err != nil {
		return nil, fmt.Errorf("config general.id_format: %w", err)
	}

	opts := []ledger.Option{
		ledger.WithIDGenerator(ids),
		ledger.WithAvatarTagging(),
	}
	for _, o := range observers {
		opts = append(opts, ledger.WithObserver(o))
	}

	if flagNoSeed || !cfg.General.Seed {
		return ledger.New(opts...)
	}
	return ledger.Seeded(opts...)
}

// openJournal opens the session journal. A failure is logged and the
// session continues without one.
func openJournal() *journal.Journal {
	j, err := journal.Open()
	if err != nil {
		slog.Warn("activity journal unavailable", "error", err)
		return nil
	}
	return j
}

// infof prints to stderr unless --quiet is set.
func infof(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

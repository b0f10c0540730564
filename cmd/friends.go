package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List friends and balances",
	RunE:  runFriends,
}

func init() {
	rootCmd.AddCommand(friendsCmd)
}

func runFriends(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		infof("  Config unreadable, using defaults: %v\n", err)
	}
	l, err := newLedger(cfg)
	if err != nil {
		return err
	}
	printFriends(os.Stdout, l, cfg.General.Currency)
	return nil
}

const balanceBarWidth = 16

func printFriends(w io.Writer, l *ledger.Ledger, currency string) {
	friends := l.Friends()

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("FRIENDS"))
	fmt.Fprintln(w)

	if len(friends) == 0 {
		fmt.Fprintln(w, cli.RenderMuted("  No friends yet. Add some from the TUI."))
		fmt.Fprintln(w)
		return
	}

	maxAbs := decimal.Zero
	for _, f := range friends {
		if abs := f.Balance.Abs(); abs.GreaterThan(maxAbs) {
			maxAbs = abs
		}
	}

	rows := make([][]string, 0, len(friends)+4)
	for _, f := range friends {
		rows = append(rows, []string{
			f.Name,
			cli.FormatSigned(f.Balance, currency),
			cli.BalancePhrase(f, currency),
			cli.RenderBalanceBar(f.Balance, maxAbs, balanceBarWidth),
		})
	}

	t := l.Totals()
	rows = append(rows,
		[]string{"---"},
		[]string{"Owed to you", cli.FormatMoney(t.OwedToUser, currency), "", ""},
		[]string{"You owe", cli.FormatMoney(t.UserOwes, currency), "", ""},
		[]string{"Net", cli.FormatSigned(t.Net, currency), "", ""},
	)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Friend", "Balance", "", ""},
		Rows:    rows,
	}))
	fmt.Fprintln(w)
}

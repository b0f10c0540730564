package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/ledger"

	"github.com/spf13/cobra"
)

// splitOptions are the inputs of one split.
type splitOptions struct {
	Friend string // id or exact name
	Bill   string
	Mine   string
	Payer  string
}

var flagSplit splitOptions

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split one bill with a friend and show the new balance",
	Example: `  eatsplit split --friend 118836 --bill 100 --mine 20
  eatsplit split --friend ნანა --bill 45.50 --mine 15 --payer friend`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			infof("  Config unreadable, using defaults: %v\n", err)
		}
		l, err := newLedger(cfg)
		if err != nil {
			return err
		}
		return runSplit(os.Stdout, l, flagSplit, cfg.General.Currency)
	},
}

func init() {
	splitCmd.Flags().StringVar(&flagSplit.Friend, "friend", "", "Friend id or name")
	splitCmd.Flags().StringVar(&flagSplit.Bill, "bill", "", "Total bill value")
	splitCmd.Flags().StringVar(&flagSplit.Mine, "mine", "", "Your own expense")
	splitCmd.Flags().StringVar(&flagSplit.Payer, "payer", string(ledger.PayerUser), "Who pays: user or friend")
	_ = splitCmd.MarkFlagRequired("friend")
	_ = splitCmd.MarkFlagRequired("bill")
	_ = splitCmd.MarkFlagRequired("mine")
	rootCmd.AddCommand(splitCmd)
}

// runSplit settles one bill against l and prints the balance change.
func runSplit(w io.Writer, l *ledger.Ledger, opts splitOptions, currency string) error {
	f, err := findFriend(l, opts.Friend)
	if err != nil {
		return err
	}

	payer, err := ledger.ParsePayer(opts.Payer)
	if err != nil {
		return err
	}

	form := ledger.NewBillSplit()
	form.SetPayer(payer)
	if !form.SetBill(opts.Bill) {
		return fmt.Errorf("%w: bill %q is not a non-negative number", ledger.ErrValidation, opts.Bill)
	}
	if !form.SetOwnShare(opts.Mine) {
		return fmt.Errorf("%w: own share %q must be a non-negative number no larger than the bill", ledger.ErrValidation, opts.Mine)
	}
	if _, err := form.Amount(); err != nil {
		return err
	}

	if err := l.ToggleSelect(f.ID); err != nil {
		return err
	}
	after, err := form.Submit(l, f.ID)
	if err != nil {
		l.Deselect()
		return err
	}

	friendShare, _ := form.FriendShare()
	amount := after.Balance.Sub(f.Balance)

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("SPLIT WITH "+strings.ToUpper(f.Name)))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"", ""},
		Rows: [][]string{
			{"Bill", cli.FormatMoney(form.BillValue(), currency)},
			{"Your expense", cli.FormatMoney(form.OwnShareValue(), currency)},
			{f.Name + "'s expense", cli.FormatMoney(friendShare, currency)},
			{"Paid by", payerLabel(payer, f.Name)},
			{"---"},
			{"Change", cli.FormatSigned(amount, currency)},
			{"Before", cli.BalancePhrase(f, currency)},
			{"After", cli.BalancePhrase(after, currency)},
		},
	}))
	fmt.Fprintln(w)
	return nil
}

// findFriend matches ref against ids first, then names.
func findFriend(l *ledger.Ledger, ref string) (ledger.Friend, error) {
	ref = strings.TrimSpace(ref)
	if f, ok := l.Friend(ref); ok {
		return f, nil
	}
	var matches []ledger.Friend
	for _, f := range l.Friends() {
		if strings.EqualFold(f.Name, ref) {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return ledger.Friend{}, fmt.Errorf("%w: no friend with id or name %q", ledger.ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return ledger.Friend{}, fmt.Errorf("%w: %d friends are named %q, use the id", ledger.ErrValidation, len(matches), ref)
	}
}

func payerLabel(p ledger.Payer, friendName string) string {
	if p == ledger.PayerFriend {
		return friendName
	}
	return "You"
}

// Package ledger holds the friend balances and the operations that change them.
package ledger

import "github.com/shopspring/decimal"

// Friend is a party with a tracked balance against the user.
//
// A negative Balance means the user owes the friend; a positive Balance
// means the friend owes the user.
type Friend struct {
	ID      string
	Name    string
	Image   string
	Balance decimal.Decimal
}

// Standing describes which side of a balance a friend is on.
type Standing int

const (
	Even Standing = iota // nobody owes anything
	Owes                 // the user owes the friend
	Owed                 // the friend owes the user
)

func (s Standing) String() string {
	switch s {
	case Owes:
		return "owes"
	case Owed:
		return "owed"
	default:
		return "even"
	}
}

// Standing reports the direction of the friend's balance.
func (f Friend) Standing() Standing {
	switch f.Balance.Sign() {
	case -1:
		return Owes
	case 1:
		return Owed
	default:
		return Even
	}
}

// Totals summarizes balances across all friends.
type Totals struct {
	OwedToUser decimal.Decimal // sum of positive balances
	UserOwes   decimal.Decimal // sum of |negative balances|
	Net        decimal.Decimal // OwedToUser - UserOwes
}

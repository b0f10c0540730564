package ledger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Payer identifies who paid the bill being split.
type Payer string

const (
	PayerUser   Payer = "user"
	PayerFriend Payer = "friend"
)

// ParsePayer accepts "user" or "friend" (case-insensitive).
func ParsePayer(s string) (Payer, error) {
	switch Payer(strings.ToLower(strings.TrimSpace(s))) {
	case PayerUser:
		return PayerUser, nil
	case PayerFriend:
		return PayerFriend, nil
	default:
		return "", fmt.Errorf("%w: payer must be %q or %q, got %q", ErrValidation, PayerUser, PayerFriend, s)
	}
}

// SplitAmount returns the signed delta to settle against a friend's
// balance for a bill of total bill, of which own is the user's share.
//
// If the user paid, the friend now owes their share (bill - own).
// If the friend paid, the user now owes their own share, so the delta is -own.
func SplitAmount(bill, own decimal.Decimal, payer Payer) (decimal.Decimal, error) {
	if bill.IsNegative() || own.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amounts must not be negative", ErrValidation)
	}
	if own.GreaterThan(bill) {
		return decimal.Zero, fmt.Errorf("%w: own share %s exceeds bill %s", ErrValidation, own, bill)
	}
	switch payer {
	case PayerUser:
		return bill.Sub(own), nil
	case PayerFriend:
		return own.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown payer %q", ErrValidation, payer)
	}
}

// BillSplit is the state of the split-bill form. Fields hold the text as
// typed; an edit that fails validation is rejected and the field keeps
// its previous value.
//
// The own share never exceeds the bill: own-share edits above the bill
// are rejected, and a bill edit that drops below the current own share
// clears the own share.
type BillSplit struct {
	bill  string
	own   string
	payer Payer
}

// NewBillSplit returns an empty form with the user as payer.
func NewBillSplit() BillSplit {
	return BillSplit{payer: PayerUser}
}

// Bill returns the bill text.
func (b BillSplit) Bill() string { return b.bill }

// OwnShare returns the own-share text.
func (b BillSplit) OwnShare() string { return b.own }

// BillValue returns the parsed bill, zero while empty.
func (b BillSplit) BillValue() decimal.Decimal {
	v, _ := parseAmount(b.bill)
	return v
}

// OwnShareValue returns the parsed own share, zero while empty.
func (b BillSplit) OwnShareValue() decimal.Decimal {
	v, _ := parseAmount(b.own)
	return v
}

// Payer returns who pays.
func (b BillSplit) Payer() Payer {
	if b.payer == "" {
		return PayerUser
	}
	return b.payer
}

// SetPayer sets who pays. Unknown values are ignored.
func (b *BillSplit) SetPayer(p Payer) {
	if p == PayerUser || p == PayerFriend {
		b.payer = p
	}
}

// TogglePayer flips between the user and the friend.
func (b *BillSplit) TogglePayer() {
	if b.Payer() == PayerUser {
		b.payer = PayerFriend
		return
	}
	b.payer = PayerUser
}

// SetBill updates the bill text and reports whether it was accepted.
func (b *BillSplit) SetBill(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		b.bill = ""
		if own, _ := parseAmount(b.own); own.IsPositive() {
			b.own = ""
		}
		return true
	}
	v, ok := parseAmount(text)
	if !ok {
		return false
	}
	b.bill = text
	if own, _ := parseAmount(b.own); own.GreaterThan(v) {
		b.own = ""
	}
	return true
}

// SetOwnShare updates the own-share text and reports whether it was accepted.
func (b *BillSplit) SetOwnShare(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		b.own = ""
		return true
	}
	v, ok := parseAmount(text)
	if !ok {
		return false
	}
	bill, _ := parseAmount(b.bill)
	if v.GreaterThan(bill) {
		return false
	}
	b.own = text
	return true
}

// FriendShare returns bill - own share. It reports false while the bill is empty.
func (b BillSplit) FriendShare() (decimal.Decimal, bool) {
	if b.bill == "" {
		return decimal.Zero, false
	}
	bill, _ := parseAmount(b.bill)
	own, _ := parseAmount(b.own)
	return bill.Sub(own), true
}

// Amount returns the signed delta this form would settle. Both the bill
// and the own share must be present and non-zero.
func (b BillSplit) Amount() (decimal.Decimal, error) {
	bill, _ := parseAmount(b.bill)
	own, _ := parseAmount(b.own)
	if b.bill == "" || bill.IsZero() || b.own == "" || own.IsZero() {
		return decimal.Zero, ErrIncomplete
	}
	return SplitAmount(bill, own, b.Payer())
}

// Submit settles the form against friendID, which must be the ledger's
// selected friend. On error the ledger is unchanged.
func (b BillSplit) Submit(l *Ledger, friendID string) (Friend, error) {
	amount, err := b.Amount()
	if err != nil {
		return Friend{}, err
	}
	return l.SettleBill(friendID, amount)
}

// plainAmount matches digits with an optional fraction. Signs and exponents
// are rejected before they reach the decimal parser.
var plainAmount = regexp.MustCompile(`^[0-9]+(\.[0-9]*)?$`)

// parseAmount parses a non-negative decimal. A trailing "." is tolerated
// so partially typed values like "12." are accepted.
func parseAmount(text string) (decimal.Decimal, bool) {
	if !plainAmount.MatchString(text) {
		return decimal.Zero, false
	}
	s := strings.TrimSuffix(text, ".")
	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() {
		return decimal.Zero, false
	}
	return v, true
}

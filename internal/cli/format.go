// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/eatsplit/internal/ledger"
)

// prefixSymbols are written before the amount; any other symbol follows it.
var prefixSymbols = map[string]bool{"$": true, "£": true, "€": true, "¥": true}

// FormatMoney formats the absolute value of d with the currency symbol.
// Whole amounts print without decimals.
// e.g., 7 -> "7₾", 1234.5 -> "1,234.50₾", with "$": "$7"
func FormatMoney(d decimal.Decimal, symbol string) string {
	amount := formatAmount(d.Abs())
	if prefixSymbols[symbol] {
		return symbol + amount
	}
	return amount + symbol
}

// FormatSigned formats d with an explicit sign, e.g. "+60₾", "-40₾", "0₾".
func FormatSigned(d decimal.Decimal, symbol string) string {
	switch d.Sign() {
	case 1:
		return "+" + FormatMoney(d, symbol)
	case -1:
		return "-" + FormatMoney(d, symbol)
	default:
		return FormatMoney(d, symbol)
	}
}

// BalancePhrase describes a friend's balance from the user's side.
func BalancePhrase(f ledger.Friend, symbol string) string {
	switch f.Standing() {
	case ledger.Owes:
		return fmt.Sprintf("You owe %s %s", f.Name, FormatMoney(f.Balance, symbol))
	case ledger.Owed:
		return fmt.Sprintf("%s owes you %s", f.Name, FormatMoney(f.Balance, symbol))
	default:
		return fmt.Sprintf("You and %s are even", f.Name)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if digits, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + groupDigits(digits)
	}
	return groupDigits(s)
}

// groupDigits inserts a comma every three digits from the right.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// formatAmount renders a non-negative amount with separators.
func formatAmount(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	if d.Equal(d.Truncate(0)) {
		return groupDigits(whole)
	}
	return groupDigits(whole) + "." + frac
}

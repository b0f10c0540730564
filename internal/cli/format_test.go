package cli

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/eatsplit/internal/ledger"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in     string
		symbol string
		want   string
	}{
		{"7", "₾", "7₾"},
		{"-7", "₾", "7₾"},
		{"0", "₾", "0₾"},
		{"1234.5", "₾", "1,234.50₾"},
		{"20", "$", "$20"},
		{"0.125", "€", "€0.13"},
		{"9.999", "$", "$10.00"},
		{"10000000000000000000", "₾", "10,000,000,000,000,000,000₾"},
		{"-9223372036854775808", "₾", "9,223,372,036,854,775,808₾"},
		{"123456789012345678901234.5", "$", "$123,456,789,012,345,678,901,234.50"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.in), tt.symbol)
		if got != tt.want {
			t.Errorf("FormatMoney(%s, %q) = %q, want %q", tt.in, tt.symbol, got, tt.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	tests := map[string]string{
		"60":  "+60₾",
		"-40": "-40₾",
		"0":   "0₾",
	}
	for in, want := range tests {
		if got := FormatSigned(decimal.RequireFromString(in), "₾"); got != want {
			t.Errorf("FormatSigned(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestBalancePhrase(t *testing.T) {
	tests := []struct {
		balance string
		want    string
	}{
		{"-7", "You owe Nana 7₾"},
		{"20", "Nana owes you 20₾"},
		{"0", "You and Nana are even"},
	}
	for _, tt := range tests {
		f := ledger.Friend{Name: "Nana", Balance: decimal.RequireFromString(tt.balance)}
		if got := BalancePhrase(f, "₾"); got != tt.want {
			t.Errorf("BalancePhrase(%s) = %q, want %q", tt.balance, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:             "0",
		999:           "999",
		1000:          "1,000",
		-1234567:      "-1,234,567",
		math.MinInt64: "-9,223,372,036,854,775,808",
		math.MaxInt64: "9,223,372,036,854,775,807",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

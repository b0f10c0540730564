package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func TestRenderTableAlignsWideNames(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Friend", "Balance"},
		Rows: [][]string{
			{"ნანა", "+20₾"},
			{"Bob", "-7₾"},
			{"---"},
			{"Total", "+13₾"},
		},
	})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("table has %d lines, want 8:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if got := lipgloss.Width(line); got != want {
			t.Errorf("line %d width = %d, want %d: %q", i, got, want, line)
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Fatalf("empty table rendered %q", out)
	}
}

func TestRenderBalanceBar(t *testing.T) {
	maxAbs := decimal.NewFromInt(20)

	if got := lipgloss.Width(RenderBalanceBar(decimal.NewFromInt(20), maxAbs, 10)); got != 10 {
		t.Errorf("full bar width = %d, want 10", got)
	}
	if got := lipgloss.Width(RenderBalanceBar(decimal.NewFromInt(-7), maxAbs, 10)); got != 4 {
		t.Errorf("-7/20 bar width = %d, want 4", got)
	}
	if got := RenderBalanceBar(decimal.Zero, maxAbs, 10); got != "" {
		t.Errorf("zero balance bar = %q, want empty", got)
	}
	if got := lipgloss.Width(RenderBalanceBar(decimal.RequireFromString("0.01"), maxAbs, 10)); got != 1 {
		t.Errorf("tiny balance bar width = %d, want 1", got)
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"

	"github.com/mmynk/sharesplitter/internal/calculator"
	"github.com/mmynk/sharesplitter/internal/models"
)

// formatMoney formats amount in currency, rounded to the currency's minor unit.
// Unknown currency codes fall back to two decimals followed by the code.
func formatMoney(amount float64, currency string) string {
	d := decimal.NewFromFloat(amount)
	cur := money.GetCurrency(currency)
	if cur == nil {
		return d.StringFixed(2) + " " + currency
	}

	factor := decimal.New(1, int32(cur.Fraction))
	return money.New(d.Mul(factor).Round(0).IntPart(), cur.Code).Display()
}

// splitMarkdown renders a split as a markdown section.
func splitMarkdown(title string, split calculator.Split, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", title)
	fmt.Fprintf(&b, "Total: **%s**", formatMoney(split.Total, currency))
	if split.FixedPercentageTotal > 0 {
		fmt.Fprintf(&b, " · fixed percentages: %s%%", decimal.NewFromFloat(split.FixedPercentageTotal).StringFixed(2))
	}
	if split.FixedDollarTotal > 0 {
		fmt.Fprintf(&b, " · fixed amounts: %s", formatMoney(split.FixedDollarTotal, currency))
	}
	b.WriteString("\n\n")

	if len(split.Allocations) == 0 {
		b.WriteString("_Nothing to split._\n\n")
		return b.String()
	}

	b.WriteString("| Participant | Mode | Amount | Share |\n")
	b.WriteString("|---|---|---:|---:|\n")
	for _, a := range split.Allocations {
		fmt.Fprintf(&b, "| %s | %s | %s | %s%% |\n",
			escapeCell(a.Name),
			modeLabel(a.Mode, currency),
			formatMoney(a.Amount, currency),
			decimal.NewFromFloat(a.EffectivePercentage).StringFixed(2),
		)
	}
	b.WriteString("\n")

	for _, msg := range split.Warnings.Messages() {
		fmt.Fprintf(&b, "> **Warning:** %s\n\n", msg)
	}
	return b.String()
}

// breakdownMarkdown renders every bill's split followed by per-participant totals.
func breakdownMarkdown(breakdown calculator.Breakdown, currency string) string {
	var b strings.Builder

	b.WriteString("# Breakdown by bill\n\n")
	for _, bs := range breakdown.Bills {
		b.WriteString(splitMarkdown(billTitle(bs.Bill), bs.Split, currency))
	}

	b.WriteString("## Totals\n\n")
	b.WriteString("| Participant | Bills | Total |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, m := range breakdown.Members {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", escapeCell(m.Name), m.BillCount, formatMoney(m.Total, currency))
	}
	fmt.Fprintf(&b, "| **All** | %d | **%s** |\n", len(breakdown.Bills), formatMoney(breakdown.GrandTotal, currency))
	return b.String()
}

func billTitle(bill models.Bill) string {
	if bill.Description != "" {
		return fmt.Sprintf("%s (%s)", bill.Description, bill.ID)
	}
	return "Bill " + bill.ID
}

func modeLabel(mode models.AllocationMode, currency string) string {
	switch mode.Kind {
	case models.FixedPercentage:
		return "fixed " + decimal.NewFromFloat(mode.Value).String() + "%"
	case models.FixedDollar:
		return "fixed " + formatMoney(mode.Value, currency)
	default:
		return "flexible"
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderMarkdown styles md for the terminal.
func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}

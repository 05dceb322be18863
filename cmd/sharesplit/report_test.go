package main

import (
	"context"
	"strings"
	"testing"

	"github.com/mmynk/sharesplitter/internal/calculator"
	"github.com/mmynk/sharesplitter/internal/ledger"
	"github.com/mmynk/sharesplitter/internal/models"
	"github.com/mmynk/sharesplitter/internal/storage/memory"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{30, "USD", "$30.00"},
		{100.0 / 3, "USD", "$33.33"},
		{1234.5, "USD", "$1,234.50"},
		{0.005, "USD", "$0.01"},
		{12.4, "JPY", "¥12"},
		{7.25, "XXQ", "7.25 XXQ"},
	}

	for _, tt := range tests {
		t.Run(tt.currency+"/"+tt.want, func(t *testing.T) {
			if got := formatMoney(tt.amount, tt.currency); got != tt.want {
				t.Errorf("formatMoney(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}

func TestSplitMarkdown(t *testing.T) {
	participants := []models.Participant{
		{ID: "a", Name: "Alice", Mode: models.Percentage(30)},
		{ID: "b", Name: "Bob | Jr", Mode: models.FlexibleShare()},
		{ID: "c", Name: "Carol", Mode: models.FlexibleShare()},
	}
	md := splitMarkdown("Groceries", calculator.CalculateSplit(participants, 100), "USD")

	for _, want := range []string{
		"## Groceries",
		"Total: **$100.00**",
		"| Alice | fixed 30% | $30.00 | 30.00% |",
		`| Bob \| Jr | flexible | $35.00 | 35.00% |`,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report is missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Warning") {
		t.Errorf("unexpected warning in report:\n%s", md)
	}
}

func TestSplitMarkdown_Warnings(t *testing.T) {
	participants := []models.Participant{
		{ID: "a", Name: "A", Mode: models.Percentage(70)},
		{ID: "b", Name: "B", Mode: models.Percentage(50)},
		{ID: "c", Name: "C", Mode: models.FlexibleShare()},
	}
	md := splitMarkdown("Dinner", calculator.CalculateSplit(participants, 80), "USD")

	for _, want := range []string{
		"> **Warning:** fixed percentages exceed 100%",
		"> **Warning:** no amount remaining for flexible participants",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report is missing %q:\n%s", want, md)
		}
	}
}

func TestSplitMarkdown_Empty(t *testing.T) {
	md := splitMarkdown("All bills", calculator.Split{Allocations: []models.Allocation{}}, "USD")
	if !strings.Contains(md, "_Nothing to split._") {
		t.Errorf("expected an empty report, got:\n%s", md)
	}
}

func TestSplitCmdReport(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(ctx, memory.New())
	fixed := 10.0
	if _, err := l.AddParticipant(ctx, ledger.ParticipantInput{Name: "Alice", DollarAmount: &fixed}); err != nil {
		t.Fatalf("AddParticipant failed: %v", err)
	}
	if _, err := l.AddParticipant(ctx, ledger.ParticipantInput{Name: "Bob"}); err != nil {
		t.Fatalf("AddParticipant failed: %v", err)
	}
	bill, err := l.AddBill(ctx, ledger.BillInput{Amount: 30, Description: "Taxi"})
	if err != nil {
		t.Fatalf("AddBill failed: %v", err)
	}
	if _, err := l.AddBill(ctx, ledger.BillInput{Amount: 50}); err != nil {
		t.Fatalf("AddBill failed: %v", err)
	}

	t.Run("aggregate", func(t *testing.T) {
		md, err := (&splitCmd{}).report(l, "USD")
		if err != nil {
			t.Fatalf("report failed: %v", err)
		}
		if !strings.Contains(md, "| Bob | flexible | $70.00 |") {
			t.Errorf("unexpected aggregate report:\n%s", md)
		}
	})

	t.Run("single bill", func(t *testing.T) {
		md, err := (&splitCmd{bill: bill.ID}).report(l, "USD")
		if err != nil {
			t.Fatalf("report failed: %v", err)
		}
		if !strings.Contains(md, "## Taxi ("+bill.ID+")") || !strings.Contains(md, "| Bob | flexible | $20.00 |") {
			t.Errorf("unexpected bill report:\n%s", md)
		}
	})

	t.Run("breakdown", func(t *testing.T) {
		md, err := (&splitCmd{breakdown: true}).report(l, "USD")
		if err != nil {
			t.Fatalf("report failed: %v", err)
		}
		if !strings.Contains(md, "| Alice | 2 | $20.00 |") || !strings.Contains(md, "| **All** | 2 | **$80.00** |") {
			t.Errorf("unexpected breakdown:\n%s", md)
		}
	})

	t.Run("unknown bill", func(t *testing.T) {
		if _, err := (&splitCmd{bill: "missing"}).report(l, "USD"); err == nil {
			t.Error("expected an error for an unknown bill")
		}
	})
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderMarkdown("## Totals\n\n| Participant | Total |\n|---|---:|\n| Alice | $1.00 |\n")
	if err != nil {
		t.Fatalf("renderMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "Alice") {
		t.Errorf("rendered output is missing content:\n%s", out)
	}
}

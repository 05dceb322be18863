package ledger

import (
	"github.com/mmynk/sharesplitter/internal/calculator"
	"github.com/mmynk/sharesplitter/internal/models"
)

// FixedPercentageTotal is the sum of all fixed percentages. It may exceed 100.
func (l *Ledger) FixedPercentageTotal() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return calculator.FixedPercentageTotal(l.participants)
}

// FixedDollarTotal is the sum of all fixed dollar amounts.
func (l *Ledger) FixedDollarTotal() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return calculator.FixedDollarTotal(l.participants)
}

// BillsTotal is the sum of all bill totals.
func (l *Ledger) BillsTotal() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.billsTotal()
}

// BillSplit allocates bill id across the roster.
func (l *Ledger) BillSplit(id string) (calculator.Split, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.billIndex(id)
	if i < 0 {
		return calculator.Split{}, &NotFoundError{Kind: "bill", ID: id}
	}
	return calculator.CalculateSplit(l.participants, l.bills[i].TotalAmount), nil
}

// AggregateSplit allocates the sum of all bills across the roster.
// With no bills (a zero total) it returns an empty allocation list without
// running the calculation.
func (l *Ledger) AggregateSplit() calculator.Split {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := l.billsTotal()
	if total == 0 {
		return calculator.Split{Allocations: []models.Allocation{}}
	}
	return calculator.CalculateSplit(l.participants, total)
}

// Warnings reports allocation problems for the aggregate of all bills.
// With no bills only the percentage overflow check applies.
func (l *Ledger) Warnings() calculator.Warnings {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := l.billsTotal()
	if total == 0 {
		return calculator.Warnings{PercentageOverflow: calculator.FixedPercentageTotal(l.participants) > 100}
	}
	return calculator.CalculateSplit(l.participants, total).Warnings
}

// Breakdown splits each bill separately and totals the results per participant.
func (l *Ledger) Breakdown() calculator.Breakdown {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return calculator.CalculateBreakdown(l.participants, l.bills)
}

// billsTotal must be called with l.mu held.
func (l *Ledger) billsTotal() float64 {
	var total float64
	for _, b := range l.bills {
		total += b.TotalAmount
	}
	return total
}

// ParticipantCount is the number of participants in the roster.
func (l *Ledger) ParticipantCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.participants)
}

// BillCount is the number of bills.
func (l *Ledger) BillCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bills)
}

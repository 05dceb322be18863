package ledger

import (
	"context"
	"slices"
	"strings"

	"github.com/mmynk/sharesplitter/internal/models"
)

// AddBill records a new bill. The amount must be a finite number above zero.
func (l *Ledger) AddBill(ctx context.Context, in BillInput) (models.Bill, error) {
	in.Description = strings.TrimSpace(in.Description)
	if err := l.check(in); err != nil {
		return models.Bill{}, err
	}

	l.mu.Lock()
	bill := models.Bill{
		ID:          l.newID(),
		TotalAmount: in.Amount,
		Description: in.Description,
		CreatedAt:   l.now().UTC(),
	}
	l.bills = append(l.bills, bill)
	persistErr := l.saveBills(ctx)
	l.mu.Unlock()

	l.logger.Debug("Bill added", "bill_id", bill.ID, "amount", bill.TotalAmount)
	l.publish(Event{Kind: BillAdded, ID: bill.ID}, persistErr)
	return bill, nil
}

// RemoveBill deletes bill id.
// An unknown id returns a NotFoundError and leaves the ledger untouched.
func (l *Ledger) RemoveBill(ctx context.Context, id string) error {
	l.mu.Lock()
	i := l.billIndex(id)
	if i < 0 {
		l.mu.Unlock()
		return &NotFoundError{Kind: "bill", ID: id}
	}
	l.bills = slices.Delete(l.bills, i, i+1)
	persistErr := l.saveBills(ctx)
	l.mu.Unlock()

	l.logger.Debug("Bill removed", "bill_id", id)
	l.publish(Event{Kind: BillRemoved, ID: id}, persistErr)
	return nil
}

// Bills returns a copy of the bills in the order they were added.
func (l *Ledger) Bills() []models.Bill {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.bills)
}

// Bill returns bill id.
func (l *Ledger) Bill(id string) (models.Bill, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.billIndex(id)
	if i < 0 {
		return models.Bill{}, &NotFoundError{Kind: "bill", ID: id}
	}
	return l.bills[i], nil
}

// billIndex must be called with l.mu held.
func (l *Ledger) billIndex(id string) int {
	return slices.IndexFunc(l.bills, func(b models.Bill) bool { return b.ID == id })
}

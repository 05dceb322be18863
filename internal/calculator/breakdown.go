package calculator

import (
	"github.com/mmynk/sharesplitter/internal/models"
)

// BillSplit pairs a bill with its calculated split.
type BillSplit struct {
	Bill  models.Bill
	Split Split
}

// MemberTotal is one participant's running total across bill-by-bill splits.
type MemberTotal struct {
	ParticipantID string
	Name          string
	Total         float64 // Sum of this participant's amount on every bill
	BillCount     int     // Bills on which this participant owes a nonzero amount
}

// Breakdown is the bill-by-bill view of the ledger.
type Breakdown struct {
	Bills      []BillSplit
	Members    []MemberTotal
	GrandTotal float64 // Sum of all bill totals
}

// CalculateBreakdown splits every bill separately and aggregates the results
// per participant.
//
// This is not the same as splitting the sum of all bills: a fixed dollar
// amount is charged once per bill here, but only once overall in the
// aggregate split.
//
// Members preserves roster order and always contains every participant.
func CalculateBreakdown(participants []models.Participant, bills []models.Bill) Breakdown {
	// Track totals per participant
	totals := make(map[string]*MemberTotal, len(participants))
	members := make([]MemberTotal, len(participants))
	for i, p := range participants {
		members[i] = MemberTotal{ParticipantID: p.ID, Name: p.Name}
		totals[p.ID] = &members[i]
	}

	breakdown := Breakdown{
		Bills:   make([]BillSplit, 0, len(bills)),
		Members: members,
	}

	for _, bill := range bills {
		split := CalculateSplit(participants, bill.TotalAmount)
		breakdown.Bills = append(breakdown.Bills, BillSplit{Bill: bill, Split: split})
		breakdown.GrandTotal += bill.TotalAmount

		for _, alloc := range split.Allocations {
			member, exists := totals[alloc.ParticipantID]
			if !exists {
				continue
			}
			member.Total += alloc.Amount
			if alloc.Amount > 0 {
				member.BillCount++
			}
		}
	}

	return breakdown
}

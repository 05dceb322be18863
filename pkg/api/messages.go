// Package api defines the wire messages of sharesplit.v1.LedgerService and
// the Connect handler and client constructors that carry them as JSON.
package api

import "github.com/shopspring/decimal"

// Amount is a money value. Value is exact; Display is rounded to cents.
type Amount struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// NewAmount returns v with its two-decimal display form.
func NewAmount(v float64) Amount {
	return Amount{Value: v, Display: decimal.NewFromFloat(v).StringFixed(2)}
}

// Participant modes as they appear on the wire.
const (
	ModeFlexible        = "flexible"
	ModeFixedPercentage = "fixed_percentage"
	ModeFixedDollar     = "fixed_dollar"
)

type Participant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Mode         string   `json:"mode"`
	Percentage   *float64 `json:"percentage,omitempty"`
	DollarAmount *float64 `json:"dollarAmount,omitempty"`
}

type Bill struct {
	ID          string `json:"id"`
	TotalAmount Amount `json:"totalAmount"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

type Allocation struct {
	ParticipantID       string  `json:"participantId"`
	Name                string  `json:"name"`
	Mode                string  `json:"mode"`
	Amount              Amount  `json:"amount"`
	EffectivePercentage float64 `json:"effectivePercentage"`
}

type Warnings struct {
	PercentageOverflow     bool     `json:"percentageOverflow"`
	FixedExceedsTotal      bool     `json:"fixedExceedsTotal"`
	NoRemainderForFlexible bool     `json:"noRemainderForFlexible"`
	TotalNotFinite         bool     `json:"totalNotFinite"`
	Messages               []string `json:"messages"`
}

type Split struct {
	Total                Amount       `json:"total"`
	FixedPercentageTotal float64      `json:"fixedPercentageTotal"`
	FixedDollarTotal     Amount       `json:"fixedDollarTotal"`
	Remaining            Amount       `json:"remaining"`
	PerFlexible          Amount       `json:"perFlexible"`
	Allocations          []Allocation `json:"allocations"`
	Warnings             Warnings     `json:"warnings"`
}

type BillSplit struct {
	Bill  Bill  `json:"bill"`
	Split Split `json:"split"`
}

type MemberTotal struct {
	ParticipantID string `json:"participantId"`
	Name          string `json:"name"`
	Total         Amount `json:"total"`
	BillCount     int    `json:"billCount"`
}

// Participant RPCs. A percentage or dollar amount that is absent or zero
// means the participant is flexible.

type AddParticipantRequest struct {
	Name         string   `json:"name"`
	Percentage   *float64 `json:"percentage,omitempty"`
	DollarAmount *float64 `json:"dollarAmount,omitempty"`
}

type AddParticipantResponse struct {
	Participant Participant `json:"participant"`
}

type UpdateParticipantRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Percentage   *float64 `json:"percentage,omitempty"`
	DollarAmount *float64 `json:"dollarAmount,omitempty"`
}

type UpdateParticipantResponse struct {
	Participant Participant `json:"participant"`
}

type RemoveParticipantRequest struct {
	ID string `json:"id"`
}

type RemoveParticipantResponse struct{}

type ListParticipantsRequest struct{}

type ListParticipantsResponse struct {
	Participants []Participant `json:"participants"`
}

// Bill RPCs

type AddBillRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type AddBillResponse struct {
	Bill Bill `json:"bill"`
}

type RemoveBillRequest struct {
	ID string `json:"id"`
}

type RemoveBillResponse struct{}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []Bill `json:"bills"`
	Total Amount `json:"total"`
}

type ClearAllRequest struct{}

type ClearAllResponse struct{}

// Allocation RPCs

type GetBillSplitRequest struct {
	BillID string `json:"billId"`
}

type GetBillSplitResponse struct {
	Bill  Bill  `json:"bill"`
	Split Split `json:"split"`
}

type GetAggregateSplitRequest struct{}

type GetAggregateSplitResponse struct {
	Split Split `json:"split"`
}

type GetBreakdownRequest struct{}

type GetBreakdownResponse struct {
	Bills      []BillSplit   `json:"bills"`
	Members    []MemberTotal `json:"members"`
	GrandTotal Amount        `json:"grandTotal"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	ParticipantCount     int      `json:"participantCount"`
	BillCount            int      `json:"billCount"`
	FixedPercentageTotal float64  `json:"fixedPercentageTotal"`
	FixedDollarTotal     Amount   `json:"fixedDollarTotal"`
	BillsTotal           Amount   `json:"billsTotal"`
	Warnings             Warnings `json:"warnings"`
}

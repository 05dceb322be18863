package models

import "time"

// Bill represents a single recorded expense split across all participants.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// TotalAmount is the bill total. Always positive.
	TotalAmount float64

	// Description is an optional label (e.g., "Groceries", "Dinner").
	Description string

	// CreatedAt is when the bill was recorded, in UTC.
	CreatedAt time.Time
}

// Allocation is one participant's calculated share of a total.
// Allocations are derived on every query and never persisted.
type Allocation struct {
	// ParticipantID references the participant this share belongs to.
	ParticipantID string

	// Name is the participant's display name at calculation time.
	Name string

	// Mode is the participant's allocation mode at calculation time.
	Mode AllocationMode

	// Amount is what this participant owes. Exact, not rounded.
	Amount float64

	// EffectivePercentage is Amount as a percentage of the total
	// (zero when the total is zero).
	EffectivePercentage float64
}

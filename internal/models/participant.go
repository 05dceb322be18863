package models

import "fmt"

// AllocationKind classifies how a participant's share is computed.
type AllocationKind int

const (
	// Flexible participants split whatever remains after fixed shares.
	Flexible AllocationKind = iota
	// FixedPercentage participants pay a fixed percentage of the total.
	FixedPercentage
	// FixedDollar participants pay a fixed amount regardless of the total.
	FixedDollar
)

// String returns the wire name of the kind.
func (k AllocationKind) String() string {
	switch k {
	case FixedPercentage:
		return "fixed_percentage"
	case FixedDollar:
		return "fixed_dollar"
	case Flexible:
		return "flexible"
	default:
		return fmt.Sprintf("AllocationKind(%d)", int(k))
	}
}

// AllocationMode is a participant's allocation: a kind plus the value that
// goes with it. Value is a percentage (0-100) for FixedPercentage, a dollar
// amount for FixedDollar and always zero for Flexible.
//
// Build values with Percentage, Dollar or FlexibleShare.
type AllocationMode struct {
	Kind  AllocationKind
	Value float64
}

// Percentage returns a fixed-percentage allocation.
func Percentage(p float64) AllocationMode {
	return AllocationMode{Kind: FixedPercentage, Value: p}
}

// Dollar returns a fixed-dollar allocation.
func Dollar(d float64) AllocationMode {
	return AllocationMode{Kind: FixedDollar, Value: d}
}

// FlexibleShare returns the flexible allocation.
func FlexibleShare() AllocationMode {
	return AllocationMode{Kind: Flexible}
}

// Percentage returns the fixed percentage, or zero for any other kind.
func (m AllocationMode) Percentage() float64 {
	if m.Kind == FixedPercentage {
		return m.Value
	}
	return 0
}

// DollarAmount returns the fixed dollar amount, or zero for any other kind.
func (m AllocationMode) DollarAmount() float64 {
	if m.Kind == FixedDollar {
		return m.Value
	}
	return 0
}

// String renders the mode for logs and reports, e.g. "30%" or "$40.00".
func (m AllocationMode) String() string {
	switch m.Kind {
	case FixedPercentage:
		return fmt.Sprintf("%g%%", m.Value)
	case FixedDollar:
		return fmt.Sprintf("$%.2f", m.Value)
	default:
		return "flexible"
	}
}

// Participant represents a person sharing the bills.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	// Assigned at creation and never changed.
	ID string

	// Name is the display name. Never empty.
	Name string

	// Mode is how this participant's share is computed.
	Mode AllocationMode
}

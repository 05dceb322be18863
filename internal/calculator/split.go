package calculator

import (
	"math"

	"github.com/mmynk/sharesplitter/internal/models"
)

// Warnings describes allocation problems that do not stop the calculation.
type Warnings struct {
	// PercentageOverflow is set when fixed percentages add up to more than 100.
	PercentageOverflow bool
	// FixedExceedsTotal is set when fixed dollars plus the percentage amount
	// exceed the total before clamping.
	FixedExceedsTotal bool
	// NoRemainderForFlexible is set when flexible participants exist but
	// nothing is left for them.
	NoRemainderForFlexible bool
	// TotalNotFinite is set when the total is NaN or infinite. Every
	// allocation is zero in that case.
	TotalNotFinite bool
}

// Any reports whether at least one warning is set.
func (w Warnings) Any() bool {
	return w.PercentageOverflow || w.FixedExceedsTotal || w.NoRemainderForFlexible || w.TotalNotFinite
}

// Messages returns a human-readable line per warning that is set.
func (w Warnings) Messages() []string {
	var msgs []string
	if w.PercentageOverflow {
		msgs = append(msgs, "fixed percentages exceed 100%")
	}
	if w.FixedExceedsTotal {
		msgs = append(msgs, "fixed allocations exceed total")
	}
	if w.NoRemainderForFlexible {
		msgs = append(msgs, "no amount remaining for flexible participants")
	}
	if w.TotalNotFinite {
		msgs = append(msgs, "total is not a finite amount")
	}
	return msgs
}

// Split is the result of allocating a total across the participant roster.
type Split struct {
	// Total is the amount being split.
	Total float64

	// FixedPercentageTotal is the sum of all fixed percentages (not clamped).
	FixedPercentageTotal float64

	// FixedDollarTotal is the sum of all fixed dollar amounts.
	FixedDollarTotal float64

	// AmountFromPercentage is Total × FixedPercentageTotal / 100.
	AmountFromPercentage float64

	// RawRemaining is what is left for flexible participants before clamping.
	// Negative when fixed allocations exceed the total.
	RawRemaining float64

	// Remaining is RawRemaining clamped to zero.
	Remaining float64

	// PerFlexible is the share of each flexible participant.
	PerFlexible float64

	// Allocations holds one entry per participant in roster order.
	Allocations []models.Allocation

	// Warnings lists the problems found while allocating.
	Warnings Warnings
}

// FixedPercentageTotal sums the percentages of fixed-percentage participants.
func FixedPercentageTotal(participants []models.Participant) float64 {
	var sum float64
	for _, p := range participants {
		if p.Mode.Kind == models.FixedPercentage {
			sum += p.Mode.Value
		}
	}
	return sum
}

// FixedDollarTotal sums the amounts of fixed-dollar participants.
func FixedDollarTotal(participants []models.Participant) float64 {
	var sum float64
	for _, p := range participants {
		if p.Mode.Kind == models.FixedDollar {
			sum += p.Mode.Value
		}
	}
	return sum
}

// CalculateSplit allocates total across participants.
//
// Algorithm:
//   - fixed percentage p: amount = total × p / 100
//   - fixed dollar d: amount = d
//   - flexible: amount = max(0, total - Σd - total × Σp / 100) / #flexible
//
// Percentages over 100 and fixed shares over the total are reported through
// Warnings, never as errors. Amounts are exact; rounding is left to display.
// No participants yields an empty allocation list. A NaN or infinite total
// yields zero amounts and the TotalNotFinite warning.
func CalculateSplit(participants []models.Participant, total float64) Split {
	split := Split{
		Total:                total,
		FixedPercentageTotal: FixedPercentageTotal(participants),
		FixedDollarTotal:     FixedDollarTotal(participants),
		Allocations:          make([]models.Allocation, 0, len(participants)),
	}
	if len(participants) == 0 {
		return split
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		split.Total = 0
		split.Warnings.TotalNotFinite = true
		for _, p := range participants {
			split.Allocations = append(split.Allocations, models.Allocation{
				ParticipantID: p.ID,
				Name:          p.Name,
				Mode:          p.Mode,
			})
		}
		return split
	}

	flexibleCount := 0
	for _, p := range participants {
		if p.Mode.Kind == models.Flexible {
			flexibleCount++
		}
	}

	split.AmountFromPercentage = total * split.FixedPercentageTotal / 100
	split.RawRemaining = total - split.FixedDollarTotal - split.AmountFromPercentage
	split.Remaining = max(0, split.RawRemaining)
	if flexibleCount > 0 {
		split.PerFlexible = split.Remaining / float64(flexibleCount)
	}

	split.Warnings = Warnings{
		PercentageOverflow:     split.FixedPercentageTotal > 100,
		FixedExceedsTotal:      split.RawRemaining < 0,
		NoRemainderForFlexible: flexibleCount > 0 && split.Remaining <= 0,
	}

	for _, p := range participants {
		alloc := models.Allocation{
			ParticipantID: p.ID,
			Name:          p.Name,
			Mode:          p.Mode,
		}
		switch p.Mode.Kind {
		case models.FixedPercentage:
			alloc.Amount = total * p.Mode.Value / 100
			alloc.EffectivePercentage = p.Mode.Value
		case models.FixedDollar:
			alloc.Amount = p.Mode.Value
			alloc.EffectivePercentage = percentOf(p.Mode.Value, total)
		default:
			alloc.Amount = split.PerFlexible
			alloc.EffectivePercentage = percentOf(split.PerFlexible, total)
		}
		split.Allocations = append(split.Allocations, alloc)
	}

	return split
}

func percentOf(amount, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return amount / total * 100
}

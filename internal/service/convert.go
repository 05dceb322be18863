package service

import (
	"time"

	"github.com/mmynk/sharesplitter/internal/calculator"
	"github.com/mmynk/sharesplitter/internal/models"
	"github.com/mmynk/sharesplitter/pkg/api"
)

func toAPIParticipant(p models.Participant) api.Participant {
	out := api.Participant{ID: p.ID, Name: p.Name, Mode: p.Mode.Kind.String()}
	switch p.Mode.Kind {
	case models.FixedPercentage:
		v := p.Mode.Value
		out.Percentage = &v
	case models.FixedDollar:
		v := p.Mode.Value
		out.DollarAmount = &v
	}
	return out
}

func toAPIBill(b models.Bill) api.Bill {
	return api.Bill{
		ID:          b.ID,
		TotalAmount: api.NewAmount(b.TotalAmount),
		Description: b.Description,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toAPIWarnings(w calculator.Warnings) api.Warnings {
	msgs := w.Messages()
	if msgs == nil {
		msgs = []string{}
	}
	return api.Warnings{
		PercentageOverflow:     w.PercentageOverflow,
		FixedExceedsTotal:      w.FixedExceedsTotal,
		NoRemainderForFlexible: w.NoRemainderForFlexible,
		TotalNotFinite:         w.TotalNotFinite,
		Messages:               msgs,
	}
}

func toAPISplit(s calculator.Split) api.Split {
	allocations := make([]api.Allocation, len(s.Allocations))
	for i, a := range s.Allocations {
		allocations[i] = api.Allocation{
			ParticipantID:       a.ParticipantID,
			Name:                a.Name,
			Mode:                a.Mode.Kind.String(),
			Amount:              api.NewAmount(a.Amount),
			EffectivePercentage: a.EffectivePercentage,
		}
	}
	return api.Split{
		Total:                api.NewAmount(s.Total),
		FixedPercentageTotal: s.FixedPercentageTotal,
		FixedDollarTotal:     api.NewAmount(s.FixedDollarTotal),
		Remaining:            api.NewAmount(s.Remaining),
		PerFlexible:          api.NewAmount(s.PerFlexible),
		Allocations:          allocations,
		Warnings:             toAPIWarnings(s.Warnings),
	}
}

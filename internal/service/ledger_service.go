package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sharesplitter/internal/ledger"
	"github.com/mmynk/sharesplitter/pkg/api"
)

// LedgerService implements the Connect LedgerService over a single ledger.
type LedgerService struct {
	ledger *ledger.Ledger
}

var _ api.LedgerServiceHandler = (*LedgerService)(nil)

// NewLedgerService creates a LedgerService backed by l.
func NewLedgerService(l *ledger.Ledger) *LedgerService {
	return &LedgerService{ledger: l}
}

// toConnectError maps ledger errors onto Connect codes.
func toConnectError(op string, err error) error {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		slog.Warn(op+" rejected", "error", err)
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ledger.ErrNotFound):
		slog.Warn(op+" failed", "error", err)
		return connect.NewError(connect.CodeNotFound, err)
	default:
		slog.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}

// AddParticipant adds a participant to the roster.
func (s *LedgerService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	p, err := s.ledger.AddParticipant(ctx, ledger.ParticipantInput{
		Name:         req.Msg.Name,
		Percentage:   req.Msg.Percentage,
		DollarAmount: req.Msg.DollarAmount,
	})
	if err != nil {
		return nil, toConnectError("AddParticipant", err)
	}
	return connect.NewResponse(&api.AddParticipantResponse{Participant: toAPIParticipant(p)}), nil
}

// UpdateParticipant replaces a participant's name and allocation mode.
func (s *LedgerService) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	p, err := s.ledger.UpdateParticipant(ctx, req.Msg.ID, ledger.ParticipantInput{
		Name:         req.Msg.Name,
		Percentage:   req.Msg.Percentage,
		DollarAmount: req.Msg.DollarAmount,
	})
	if err != nil {
		return nil, toConnectError("UpdateParticipant", err)
	}
	return connect.NewResponse(&api.UpdateParticipantResponse{Participant: toAPIParticipant(p)}), nil
}

func (s *LedgerService) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	if err := s.ledger.RemoveParticipant(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("RemoveParticipant", err)
	}
	return connect.NewResponse(&api.RemoveParticipantResponse{}), nil
}

func (s *LedgerService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	roster := s.ledger.Participants()
	participants := make([]api.Participant, len(roster))
	for i, p := range roster {
		participants[i] = toAPIParticipant(p)
	}
	return connect.NewResponse(&api.ListParticipantsResponse{Participants: participants}), nil
}

// AddBill records a new bill.
func (s *LedgerService) AddBill(ctx context.Context, req *connect.Request[api.AddBillRequest]) (*connect.Response[api.AddBillResponse], error) {
	b, err := s.ledger.AddBill(ctx, ledger.BillInput{
		Amount:      req.Msg.Amount,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, toConnectError("AddBill", err)
	}
	return connect.NewResponse(&api.AddBillResponse{Bill: toAPIBill(b)}), nil
}

func (s *LedgerService) RemoveBill(ctx context.Context, req *connect.Request[api.RemoveBillRequest]) (*connect.Response[api.RemoveBillResponse], error) {
	if err := s.ledger.RemoveBill(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("RemoveBill", err)
	}
	return connect.NewResponse(&api.RemoveBillResponse{}), nil
}

func (s *LedgerService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	stored := s.ledger.Bills()
	bills := make([]api.Bill, len(stored))
	for i, b := range stored {
		bills[i] = toAPIBill(b)
	}
	return connect.NewResponse(&api.ListBillsResponse{
		Bills: bills,
		Total: api.NewAmount(s.ledger.BillsTotal()),
	}), nil
}

// ClearAll removes every participant and bill.
func (s *LedgerService) ClearAll(ctx context.Context, req *connect.Request[api.ClearAllRequest]) (*connect.Response[api.ClearAllResponse], error) {
	s.ledger.ClearAll(ctx)
	return connect.NewResponse(&api.ClearAllResponse{}), nil
}

// GetBillSplit allocates a single bill across the roster.
func (s *LedgerService) GetBillSplit(ctx context.Context, req *connect.Request[api.GetBillSplitRequest]) (*connect.Response[api.GetBillSplitResponse], error) {
	bill, err := s.ledger.Bill(req.Msg.BillID)
	if err != nil {
		return nil, toConnectError("GetBillSplit", err)
	}
	split, err := s.ledger.BillSplit(req.Msg.BillID)
	if err != nil {
		return nil, toConnectError("GetBillSplit", err)
	}

	slog.Debug("Bill split",
		"bill_id", bill.ID,
		"total", split.Total,
		"remaining", split.Remaining,
		"per_flexible", split.PerFlexible,
	)
	return connect.NewResponse(&api.GetBillSplitResponse{
		Bill:  toAPIBill(bill),
		Split: toAPISplit(split),
	}), nil
}

// GetAggregateSplit allocates the sum of all bills across the roster.
func (s *LedgerService) GetAggregateSplit(ctx context.Context, req *connect.Request[api.GetAggregateSplitRequest]) (*connect.Response[api.GetAggregateSplitResponse], error) {
	return connect.NewResponse(&api.GetAggregateSplitResponse{Split: toAPISplit(s.ledger.AggregateSplit())}), nil
}

// GetBreakdown splits each bill separately and totals per participant.
func (s *LedgerService) GetBreakdown(ctx context.Context, req *connect.Request[api.GetBreakdownRequest]) (*connect.Response[api.GetBreakdownResponse], error) {
	breakdown := s.ledger.Breakdown()

	bills := make([]api.BillSplit, len(breakdown.Bills))
	for i, bs := range breakdown.Bills {
		bills[i] = api.BillSplit{Bill: toAPIBill(bs.Bill), Split: toAPISplit(bs.Split)}
	}
	members := make([]api.MemberTotal, len(breakdown.Members))
	for i, m := range breakdown.Members {
		members[i] = api.MemberTotal{
			ParticipantID: m.ParticipantID,
			Name:          m.Name,
			Total:         api.NewAmount(m.Total),
			BillCount:     m.BillCount,
		}
	}

	return connect.NewResponse(&api.GetBreakdownResponse{
		Bills:      bills,
		Members:    members,
		GrandTotal: api.NewAmount(breakdown.GrandTotal),
	}), nil
}

// GetSummary reports the roster totals and aggregate warnings.
func (s *LedgerService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return connect.NewResponse(&api.GetSummaryResponse{
		ParticipantCount:     s.ledger.ParticipantCount(),
		BillCount:            s.ledger.BillCount(),
		FixedPercentageTotal: s.ledger.FixedPercentageTotal(),
		FixedDollarTotal:     api.NewAmount(s.ledger.FixedDollarTotal()),
		BillsTotal:           api.NewAmount(s.ledger.BillsTotal()),
		Warnings:             toAPIWarnings(s.ledger.Warnings()),
	}), nil
}

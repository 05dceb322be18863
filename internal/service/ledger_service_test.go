package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/sharesplitter/internal/ledger"
	"github.com/mmynk/sharesplitter/internal/middleware"
	"github.com/mmynk/sharesplitter/internal/storage/sqlite"
	"github.com/mmynk/sharesplitter/pkg/api"
)

func ptr(v float64) *float64 { return &v }

// setupTestServer creates a test server over a ledger backed by a temporary
// SQLite database.
func setupTestServer(t *testing.T) (api.LedgerServiceClient, func()) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	l := ledger.New(context.Background(), store)
	path, handler := api.NewLedgerServiceHandler(
		NewLedgerService(l),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	client := api.NewLedgerServiceClient(http.DefaultClient, server.URL)

	cleanup := func() {
		server.Close()
		store.Close()
	}
	return client, cleanup
}

func addParticipant(t *testing.T, client api.LedgerServiceClient, req *api.AddParticipantRequest) api.Participant {
	t.Helper()
	resp, err := client.AddParticipant(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("AddParticipant(%s) failed: %v", req.Name, err)
	}
	return resp.Msg.Participant
}

func addBill(t *testing.T, client api.LedgerServiceClient, amount float64, description string) api.Bill {
	t.Helper()
	resp, err := client.AddBill(context.Background(), connect.NewRequest(&api.AddBillRequest{
		Amount:      amount,
		Description: description,
	}))
	if err != nil {
		t.Fatalf("AddBill(%v) failed: %v", amount, err)
	}
	return resp.Msg.Bill
}

func allocationFor(t *testing.T, split api.Split, id string) api.Allocation {
	t.Helper()
	for _, a := range split.Allocations {
		if a.ParticipantID == id {
			return a
		}
	}
	t.Fatalf("no allocation for %s", id)
	return api.Allocation{}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("code = %v, want %v (%s)", connectErr.Code(), want, connectErr.Message())
	}
}

func TestAddParticipant(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name     string
		req      *api.AddParticipantRequest
		wantMode string
	}{
		{"flexible", &api.AddParticipantRequest{Name: "Alice"}, api.ModeFlexible},
		{"percentage", &api.AddParticipantRequest{Name: "Bob", Percentage: ptr(30)}, api.ModeFixedPercentage},
		{"dollar", &api.AddParticipantRequest{Name: "Carol", DollarAmount: ptr(15)}, api.ModeFixedDollar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := addParticipant(t, client, tt.req)
			if p.ID == "" {
				t.Error("expected an id")
			}
			if p.Mode != tt.wantMode {
				t.Errorf("mode = %s, want %s", p.Mode, tt.wantMode)
			}
		})
	}

	resp, err := client.ListParticipants(context.Background(), connect.NewRequest(&api.ListParticipantsRequest{}))
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(resp.Msg.Participants) != 3 {
		t.Fatalf("expected 3 participants, got %d", len(resp.Msg.Participants))
	}
	if bob := resp.Msg.Participants[1]; bob.Percentage == nil || *bob.Percentage != 30 || bob.DollarAmount != nil {
		t.Errorf("unexpected participant %+v", bob)
	}
}

func TestAddParticipant_InvalidArgument(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name string
		req  *api.AddParticipantRequest
	}{
		{"empty name", &api.AddParticipantRequest{Name: "  "}},
		{"both values", &api.AddParticipantRequest{Name: "A", Percentage: ptr(10), DollarAmount: ptr(5)}},
		{"percentage over 100", &api.AddParticipantRequest{Name: "A", Percentage: ptr(150)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.AddParticipant(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestUpdateAndRemoveParticipant(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	alice := addParticipant(t, client, &api.AddParticipantRequest{Name: "Alice"})

	resp, err := client.UpdateParticipant(ctx, connect.NewRequest(&api.UpdateParticipantRequest{
		ID:           alice.ID,
		Name:         "Alice",
		DollarAmount: ptr(20),
	}))
	if err != nil {
		t.Fatalf("UpdateParticipant failed: %v", err)
	}
	if resp.Msg.Participant.Mode != api.ModeFixedDollar || *resp.Msg.Participant.DollarAmount != 20 {
		t.Errorf("unexpected participant %+v", resp.Msg.Participant)
	}

	_, err = client.UpdateParticipant(ctx, connect.NewRequest(&api.UpdateParticipantRequest{ID: "missing", Name: "X"}))
	assertCode(t, err, connect.CodeNotFound)

	if _, err := client.RemoveParticipant(ctx, connect.NewRequest(&api.RemoveParticipantRequest{ID: alice.ID})); err != nil {
		t.Fatalf("RemoveParticipant failed: %v", err)
	}
	_, err = client.RemoveParticipant(ctx, connect.NewRequest(&api.RemoveParticipantRequest{ID: alice.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestBills(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	dinner := addBill(t, client, 100.0/3, "Dinner")
	if dinner.TotalAmount.Display != "33.33" || dinner.Description != "Dinner" || dinner.CreatedAt == "" {
		t.Errorf("unexpected bill %+v", dinner)
	}
	addBill(t, client, 10, "")

	_, err := client.AddBill(ctx, connect.NewRequest(&api.AddBillRequest{Amount: 0}))
	assertCode(t, err, connect.CodeInvalidArgument)
	_, err = client.AddBill(ctx, connect.NewRequest(&api.AddBillRequest{Amount: 1e308}))
	assertCode(t, err, connect.CodeInvalidArgument)

	list, err := client.ListBills(ctx, connect.NewRequest(&api.ListBillsRequest{}))
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(list.Msg.Bills) != 2 || list.Msg.Total.Display != "43.33" {
		t.Errorf("unexpected bills %+v total %+v", list.Msg.Bills, list.Msg.Total)
	}

	if _, err := client.RemoveBill(ctx, connect.NewRequest(&api.RemoveBillRequest{ID: dinner.ID})); err != nil {
		t.Fatalf("RemoveBill failed: %v", err)
	}
	_, err = client.RemoveBill(ctx, connect.NewRequest(&api.RemoveBillRequest{ID: dinner.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetAggregateSplit_LargeBills(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	addParticipant(t, client, &api.AddParticipantRequest{Name: "Alice"})
	addBill(t, client, 1e12, "Rent")
	addBill(t, client, 1e12, "Rent again")
	_, err := client.AddBill(ctx, connect.NewRequest(&api.AddBillRequest{Amount: 1e308}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err := client.GetAggregateSplit(ctx, connect.NewRequest(&api.GetAggregateSplitRequest{}))
	if err != nil {
		t.Fatalf("GetAggregateSplit failed: %v", err)
	}
	split := resp.Msg.Split
	if split.Total.Display != "2000000000000.00" {
		t.Errorf("total = %+v, want 2000000000000.00", split.Total)
	}
	if len(split.Allocations) != 1 || split.Allocations[0].Amount.Display != "2000000000000.00" {
		t.Errorf("unexpected allocations %+v", split.Allocations)
	}
}

func TestGetBillSplit(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	a := addParticipant(t, client, &api.AddParticipantRequest{Name: "A", Percentage: ptr(30)})
	b := addParticipant(t, client, &api.AddParticipantRequest{Name: "B"})
	c := addParticipant(t, client, &api.AddParticipantRequest{Name: "C"})
	bill := addBill(t, client, 100, "Groceries")

	resp, err := client.GetBillSplit(context.Background(), connect.NewRequest(&api.GetBillSplitRequest{BillID: bill.ID}))
	if err != nil {
		t.Fatalf("GetBillSplit failed: %v", err)
	}
	split := resp.Msg.Split

	if resp.Msg.Bill.ID != bill.ID {
		t.Errorf("bill id = %s, want %s", resp.Msg.Bill.ID, bill.ID)
	}
	if got := allocationFor(t, split, a.ID); got.Amount.Display != "30.00" {
		t.Errorf("A = %+v, want 30.00", got.Amount)
	}
	for _, id := range []string{b.ID, c.ID} {
		got := allocationFor(t, split, id)
		if got.Amount.Display != "35.00" || math.Abs(got.EffectivePercentage-35) > 0.01 {
			t.Errorf("flexible allocation = %+v, want 35.00 at 35%%", got)
		}
	}
	if split.Warnings.PercentageOverflow || len(split.Warnings.Messages) != 0 {
		t.Errorf("unexpected warnings %+v", split.Warnings)
	}

	_, err = client.GetBillSplit(context.Background(), connect.NewRequest(&api.GetBillSplitRequest{BillID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetBillSplit_OverAllocated(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()

	addParticipant(t, client, &api.AddParticipantRequest{Name: "A", Percentage: ptr(70)})
	addParticipant(t, client, &api.AddParticipantRequest{Name: "B", Percentage: ptr(50)})
	flex := addParticipant(t, client, &api.AddParticipantRequest{Name: "C"})
	bill := addBill(t, client, 80, "")

	resp, err := client.GetBillSplit(context.Background(), connect.NewRequest(&api.GetBillSplitRequest{BillID: bill.ID}))
	if err != nil {
		t.Fatalf("GetBillSplit failed: %v", err)
	}
	split := resp.Msg.Split
	if split.Remaining.Value != 0 {
		t.Errorf("remaining = %v, want 0", split.Remaining.Value)
	}
	if got := allocationFor(t, split, flex.ID); got.Amount.Value != 0 {
		t.Errorf("flexible amount = %v, want 0", got.Amount.Value)
	}
	if !split.Warnings.PercentageOverflow || !split.Warnings.NoRemainderForFlexible {
		t.Errorf("expected overflow warnings, got %+v", split.Warnings)
	}
}

func TestGetAggregateSplitAndSummary(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	agg, err := client.GetAggregateSplit(ctx, connect.NewRequest(&api.GetAggregateSplitRequest{}))
	if err != nil {
		t.Fatalf("GetAggregateSplit failed: %v", err)
	}
	if len(agg.Msg.Split.Allocations) != 0 {
		t.Errorf("expected no allocations without bills, got %+v", agg.Msg.Split.Allocations)
	}

	a := addParticipant(t, client, &api.AddParticipantRequest{Name: "A", DollarAmount: ptr(40)})
	b := addParticipant(t, client, &api.AddParticipantRequest{Name: "B"})
	addBill(t, client, 60, "")
	addBill(t, client, 40, "")

	agg, err = client.GetAggregateSplit(ctx, connect.NewRequest(&api.GetAggregateSplitRequest{}))
	if err != nil {
		t.Fatalf("GetAggregateSplit failed: %v", err)
	}
	if got := allocationFor(t, agg.Msg.Split, a.ID); got.Amount.Value != 40 {
		t.Errorf("A aggregate = %v, want 40", got.Amount.Value)
	}
	if got := allocationFor(t, agg.Msg.Split, b.ID); math.Abs(got.Amount.Value-60) > 0.01 {
		t.Errorf("B aggregate = %v, want 60", got.Amount.Value)
	}

	breakdown, err := client.GetBreakdown(ctx, connect.NewRequest(&api.GetBreakdownRequest{}))
	if err != nil {
		t.Fatalf("GetBreakdown failed: %v", err)
	}
	if len(breakdown.Msg.Bills) != 2 || breakdown.Msg.GrandTotal.Value != 100 {
		t.Errorf("unexpected breakdown %+v", breakdown.Msg)
	}
	// A fixed dollar amount applies once per bill
	if got := breakdown.Msg.Members[0]; got.ParticipantID != a.ID || got.Total.Value != 80 || got.BillCount != 2 {
		t.Errorf("A member total = %+v, want 80 over 2 bills", got)
	}

	summary, err := client.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Msg.ParticipantCount != 2 || summary.Msg.BillCount != 2 {
		t.Errorf("unexpected counts %+v", summary.Msg)
	}
	if summary.Msg.FixedDollarTotal.Value != 40 || summary.Msg.BillsTotal.Display != "100.00" {
		t.Errorf("unexpected totals %+v", summary.Msg)
	}
}

func TestClearAll(t *testing.T) {
	client, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	addParticipant(t, client, &api.AddParticipantRequest{Name: "A"})
	addBill(t, client, 12, "")

	if _, err := client.ClearAll(ctx, connect.NewRequest(&api.ClearAllRequest{})); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	summary, err := client.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Msg.ParticipantCount != 0 || summary.Msg.BillCount != 0 {
		t.Errorf("expected an empty ledger, got %+v", summary.Msg)
	}
}

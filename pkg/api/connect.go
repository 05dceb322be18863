package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// LedgerServiceName is the fully-qualified name of the ledger service.
const LedgerServiceName = "sharesplit.v1.LedgerService"

// Procedure paths of LedgerService.
const (
	LedgerServiceAddParticipantProcedure    = "/" + LedgerServiceName + "/AddParticipant"
	LedgerServiceUpdateParticipantProcedure = "/" + LedgerServiceName + "/UpdateParticipant"
	LedgerServiceRemoveParticipantProcedure = "/" + LedgerServiceName + "/RemoveParticipant"
	LedgerServiceListParticipantsProcedure  = "/" + LedgerServiceName + "/ListParticipants"
	LedgerServiceAddBillProcedure           = "/" + LedgerServiceName + "/AddBill"
	LedgerServiceRemoveBillProcedure        = "/" + LedgerServiceName + "/RemoveBill"
	LedgerServiceListBillsProcedure         = "/" + LedgerServiceName + "/ListBills"
	LedgerServiceClearAllProcedure          = "/" + LedgerServiceName + "/ClearAll"
	LedgerServiceGetBillSplitProcedure      = "/" + LedgerServiceName + "/GetBillSplit"
	LedgerServiceGetAggregateSplitProcedure = "/" + LedgerServiceName + "/GetAggregateSplit"
	LedgerServiceGetBreakdownProcedure      = "/" + LedgerServiceName + "/GetBreakdown"
	LedgerServiceGetSummaryProcedure        = "/" + LedgerServiceName + "/GetSummary"
)

// LedgerServiceHandler is implemented by the server side of LedgerService.
type LedgerServiceHandler interface {
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	UpdateParticipant(context.Context, *connect.Request[UpdateParticipantRequest]) (*connect.Response[UpdateParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[RemoveParticipantRequest]) (*connect.Response[RemoveParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[ListParticipantsRequest]) (*connect.Response[ListParticipantsResponse], error)
	AddBill(context.Context, *connect.Request[AddBillRequest]) (*connect.Response[AddBillResponse], error)
	RemoveBill(context.Context, *connect.Request[RemoveBillRequest]) (*connect.Response[RemoveBillResponse], error)
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	ClearAll(context.Context, *connect.Request[ClearAllRequest]) (*connect.Response[ClearAllResponse], error)
	GetBillSplit(context.Context, *connect.Request[GetBillSplitRequest]) (*connect.Response[GetBillSplitResponse], error)
	GetAggregateSplit(context.Context, *connect.Request[GetAggregateSplitRequest]) (*connect.Response[GetAggregateSplitResponse], error)
	GetBreakdown(context.Context, *connect.Request[GetBreakdownRequest]) (*connect.Response[GetBreakdownResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler serving every LedgerService
// procedure. It returns the path prefix to mount it on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	handlers := map[string]http.Handler{
		LedgerServiceAddParticipantProcedure:    connect.NewUnaryHandler(LedgerServiceAddParticipantProcedure, svc.AddParticipant, opts...),
		LedgerServiceUpdateParticipantProcedure: connect.NewUnaryHandler(LedgerServiceUpdateParticipantProcedure, svc.UpdateParticipant, opts...),
		LedgerServiceRemoveParticipantProcedure: connect.NewUnaryHandler(LedgerServiceRemoveParticipantProcedure, svc.RemoveParticipant, opts...),
		LedgerServiceListParticipantsProcedure:  connect.NewUnaryHandler(LedgerServiceListParticipantsProcedure, svc.ListParticipants, opts...),
		LedgerServiceAddBillProcedure:           connect.NewUnaryHandler(LedgerServiceAddBillProcedure, svc.AddBill, opts...),
		LedgerServiceRemoveBillProcedure:        connect.NewUnaryHandler(LedgerServiceRemoveBillProcedure, svc.RemoveBill, opts...),
		LedgerServiceListBillsProcedure:         connect.NewUnaryHandler(LedgerServiceListBillsProcedure, svc.ListBills, opts...),
		LedgerServiceClearAllProcedure:          connect.NewUnaryHandler(LedgerServiceClearAllProcedure, svc.ClearAll, opts...),
		LedgerServiceGetBillSplitProcedure:      connect.NewUnaryHandler(LedgerServiceGetBillSplitProcedure, svc.GetBillSplit, opts...),
		LedgerServiceGetAggregateSplitProcedure: connect.NewUnaryHandler(LedgerServiceGetAggregateSplitProcedure, svc.GetAggregateSplit, opts...),
		LedgerServiceGetBreakdownProcedure:      connect.NewUnaryHandler(LedgerServiceGetBreakdownProcedure, svc.GetBreakdown, opts...),
		LedgerServiceGetSummaryProcedure:        connect.NewUnaryHandler(LedgerServiceGetSummaryProcedure, svc.GetSummary, opts...),
	}

	prefix := "/" + LedgerServiceName + "/"
	return prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, prefix) {
			http.NotFound(w, r)
			return
		}
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// LedgerServiceClient is a client for LedgerService.
type LedgerServiceClient interface {
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	UpdateParticipant(context.Context, *connect.Request[UpdateParticipantRequest]) (*connect.Response[UpdateParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[RemoveParticipantRequest]) (*connect.Response[RemoveParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[ListParticipantsRequest]) (*connect.Response[ListParticipantsResponse], error)
	AddBill(context.Context, *connect.Request[AddBillRequest]) (*connect.Response[AddBillResponse], error)
	RemoveBill(context.Context, *connect.Request[RemoveBillRequest]) (*connect.Response[RemoveBillResponse], error)
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	ClearAll(context.Context, *connect.Request[ClearAllRequest]) (*connect.Response[ClearAllResponse], error)
	GetBillSplit(context.Context, *connect.Request[GetBillSplitRequest]) (*connect.Response[GetBillSplitResponse], error)
	GetAggregateSplit(context.Context, *connect.Request[GetAggregateSplitRequest]) (*connect.Response[GetAggregateSplitResponse], error)
	GetBreakdown(context.Context, *connect.Request[GetBreakdownRequest]) (*connect.Response[GetBreakdownResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
}

type ledgerServiceClient struct {
	addParticipant    *connect.Client[AddParticipantRequest, AddParticipantResponse]
	updateParticipant *connect.Client[UpdateParticipantRequest, UpdateParticipantResponse]
	removeParticipant *connect.Client[RemoveParticipantRequest, RemoveParticipantResponse]
	listParticipants  *connect.Client[ListParticipantsRequest, ListParticipantsResponse]
	addBill           *connect.Client[AddBillRequest, AddBillResponse]
	removeBill        *connect.Client[RemoveBillRequest, RemoveBillResponse]
	listBills         *connect.Client[ListBillsRequest, ListBillsResponse]
	clearAll          *connect.Client[ClearAllRequest, ClearAllResponse]
	getBillSplit      *connect.Client[GetBillSplitRequest, GetBillSplitResponse]
	getAggregateSplit *connect.Client[GetAggregateSplitRequest, GetAggregateSplitResponse]
	getBreakdown      *connect.Client[GetBreakdownRequest, GetBreakdownResponse]
	getSummary        *connect.Client[GetSummaryRequest, GetSummaryResponse]
}

// NewLedgerServiceClient returns a client for the LedgerService served at
// baseURL, e.g. http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &ledgerServiceClient{
		addParticipant:    connect.NewClient[AddParticipantRequest, AddParticipantResponse](httpClient, baseURL+LedgerServiceAddParticipantProcedure, opts...),
		updateParticipant: connect.NewClient[UpdateParticipantRequest, UpdateParticipantResponse](httpClient, baseURL+LedgerServiceUpdateParticipantProcedure, opts...),
		removeParticipant: connect.NewClient[RemoveParticipantRequest, RemoveParticipantResponse](httpClient, baseURL+LedgerServiceRemoveParticipantProcedure, opts...),
		listParticipants:  connect.NewClient[ListParticipantsRequest, ListParticipantsResponse](httpClient, baseURL+LedgerServiceListParticipantsProcedure, opts...),
		addBill:           connect.NewClient[AddBillRequest, AddBillResponse](httpClient, baseURL+LedgerServiceAddBillProcedure, opts...),
		removeBill:        connect.NewClient[RemoveBillRequest, RemoveBillResponse](httpClient, baseURL+LedgerServiceRemoveBillProcedure, opts...),
		listBills:         connect.NewClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL+LedgerServiceListBillsProcedure, opts...),
		clearAll:          connect.NewClient[ClearAllRequest, ClearAllResponse](httpClient, baseURL+LedgerServiceClearAllProcedure, opts...),
		getBillSplit:      connect.NewClient[GetBillSplitRequest, GetBillSplitResponse](httpClient, baseURL+LedgerServiceGetBillSplitProcedure, opts...),
		getAggregateSplit: connect.NewClient[GetAggregateSplitRequest, GetAggregateSplitResponse](httpClient, baseURL+LedgerServiceGetAggregateSplitProcedure, opts...),
		getBreakdown:      connect.NewClient[GetBreakdownRequest, GetBreakdownResponse](httpClient, baseURL+LedgerServiceGetBreakdownProcedure, opts...),
		getSummary:        connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+LedgerServiceGetSummaryProcedure, opts...),
	}
}

func (c *ledgerServiceClient) AddParticipant(ctx context.Context, req *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateParticipant(ctx context.Context, req *connect.Request[UpdateParticipantRequest]) (*connect.Response[UpdateParticipantResponse], error) {
	return c.updateParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RemoveParticipant(ctx context.Context, req *connect.Request[RemoveParticipantRequest]) (*connect.Response[RemoveParticipantResponse], error) {
	return c.removeParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListParticipants(ctx context.Context, req *connect.Request[ListParticipantsRequest]) (*connect.Response[ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddBill(ctx context.Context, req *connect.Request[AddBillRequest]) (*connect.Response[AddBillResponse], error) {
	return c.addBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RemoveBill(ctx context.Context, req *connect.Request[RemoveBillRequest]) (*connect.Response[RemoveBillResponse], error) {
	return c.removeBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ClearAll(ctx context.Context, req *connect.Request[ClearAllRequest]) (*connect.Response[ClearAllResponse], error) {
	return c.clearAll.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBillSplit(ctx context.Context, req *connect.Request[GetBillSplitRequest]) (*connect.Response[GetBillSplitResponse], error) {
	return c.getBillSplit.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetAggregateSplit(ctx context.Context, req *connect.Request[GetAggregateSplitRequest]) (*connect.Response[GetAggregateSplitResponse], error) {
	return c.getAggregateSplit.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBreakdown(ctx context.Context, req *connect.Request[GetBreakdownRequest]) (*connect.Response[GetBreakdownResponse], error) {
	return c.getBreakdown.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions. All
// filters are optional; the date bounds are inclusive.
type ListTransactionsInput struct {
	Account   string `query:"account" doc:"Restrict to transactions naming this account on either leg"`
	StartDate string `query:"startDate" doc:"Inclusive lower date bound, YYYY-MM-DD"`
	EndDate   string `query:"endDate" doc:"Inclusive upper date bound, YYYY-MM-DD"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions in insertion order"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter *service.TransactionFilter) ([]ledger.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns transactions in the order the store received them, optionally filtered by account or date window.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionFilter, error) {
	filter := &service.TransactionFilter{Account: input.Account}

	if input.StartDate != "" {
		start, err := time.Parse(dateLayout, input.StartDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		filter.StartDate = &start
	}
	if input.EndDate != "" {
		end, err := time.Parse(dateLayout, input.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		filter.EndDate = &end
	}

	return filter, nil
}

func legToAPI(leg ledger.EntryLeg) EntryLeg {
	return EntryLeg{
		Account:   leg.Account,
		Amount:    leg.Amount.String(),
		Expenses:  leg.Expenses.String(),
		Narration: leg.Narration,
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			ID:        tx.ID.String(),
			Date:      tx.Date.Format(dateLayout),
			VoucherNo: tx.VoucherNo,
			Credit:    legToAPI(tx.Credit),
			Debit:     legToAPI(tx.Debit),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}

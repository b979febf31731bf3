package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
)

// TrialBalanceInput is the Huma input for the trial balance report.
type TrialBalanceInput struct{}

// TrialBalanceResponseBody is the response body for the trial balance
// report.
type TrialBalanceResponseBody struct {
	CreditorRows   []TrialBalanceRow `json:"creditorRows"`
	DebtorRows     []TrialBalanceRow `json:"debtorRows"`
	TotalCredit    string            `json:"totalCredit"`
	TotalDebit     string            `json:"totalDebit"`
	CreditExpenses string            `json:"creditExpenses"`
	DebitExpenses  string            `json:"debitExpenses"`
}

// TrialBalanceOutput is the Huma output for the trial balance report.
type TrialBalanceOutput struct {
	Body TrialBalanceResponseBody
}

// TrialBalanceHandler handles GET /v1/reports/trial-balance.
type TrialBalanceHandler struct {
	Service trialBalancer
}

// NewTrialBalanceHandler creates a new TrialBalanceHandler.
func NewTrialBalanceHandler(svc trialBalancer) *TrialBalanceHandler {
	return &TrialBalanceHandler{Service: svc}
}

// Register registers the trial balance endpoint with the Huma API.
func (h *TrialBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-trial-balance",
		Method:      http.MethodGet,
		Path:        "/v1/reports/trial-balance",
		Summary:     "Get the trial balance",
		Description: "Returns every account's computed balance, split by category, with totals.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *TrialBalanceHandler) handle(ctx context.Context, input *TrialBalanceInput) (*TrialBalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("trialBalanceMs")
	}
	tb, err := h.Service.GetTrialBalance(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build trial balance", err)
	}

	return &TrialBalanceOutput{
		Body: TrialBalanceResponseBody{
			CreditorRows:   trialBalanceRowsToAPI(tb.CreditorRows),
			DebtorRows:     trialBalanceRowsToAPI(tb.DebtorRows),
			TotalCredit:    tb.TotalCredit.String(),
			TotalDebit:     tb.TotalDebit.String(),
			CreditExpenses: tb.CreditExpenses.String(),
			DebitExpenses:  tb.DebitExpenses.String(),
		},
	}, nil
}

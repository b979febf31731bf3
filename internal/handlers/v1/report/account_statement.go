package report

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// AccountStatementInput is the Huma input for the account statement report.
type AccountStatementInput struct {
	Name string `query:"name" required:"true" minLength:"1" doc:"Exact account name"`
}

// AccountStatementResponseBody is the response body for the account
// statement report.
type AccountStatementResponseBody struct {
	Account        string           `json:"account"`
	Category       string           `json:"category"`
	OpeningBalance string           `json:"openingBalance"`
	Entries        []StatementEntry `json:"entries"`
	TotalCredit    string           `json:"totalCredit"`
	TotalDebit     string           `json:"totalDebit"`
	ClosingBalance string           `json:"closingBalance"`
}

// AccountStatementOutput is the Huma output for the account statement
// report.
type AccountStatementOutput struct {
	Body AccountStatementResponseBody
}

// AccountStatementHandler handles GET /v1/reports/account-statement.
type AccountStatementHandler struct {
	Service statementer
}

// NewAccountStatementHandler creates a new AccountStatementHandler.
func NewAccountStatementHandler(svc statementer) *AccountStatementHandler {
	return &AccountStatementHandler{Service: svc}
}

// Register registers the account statement endpoint with the Huma API.
func (h *AccountStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-statement",
		Method:      http.MethodGet,
		Path:        "/v1/reports/account-statement",
		Summary:     "Get an account statement",
		Description: "Returns the reconciliation view for one account, looked up by exact name.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *AccountStatementHandler) handle(ctx context.Context, input *AccountStatementInput) (*AccountStatementOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("accountStatementMs")
	}
	statement, err := h.Service.GetAccountStatement(ctx, input.Name)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		var notFound *ledger.NotFoundError
		if errors.As(err, &notFound) {
			return nil, huma.NewError(http.StatusNotFound, notFound.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build account statement", err)
	}

	entries := make([]StatementEntry, len(statement.Entries))
	for i, entry := range statement.Entries {
		entries[i] = statementEntryToAPI(entry)
	}

	return &AccountStatementOutput{
		Body: AccountStatementResponseBody{
			Account:        statement.Account,
			Category:       string(statement.Category),
			OpeningBalance: statement.OpeningBalance.String(),
			Entries:        entries,
			TotalCredit:    statement.TotalCredit.String(),
			TotalDebit:     statement.TotalDebit.String(),
			ClosingBalance: statement.ClosingBalance.String(),
		},
	}, nil
}

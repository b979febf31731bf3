package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateEntryLegBody is one leg of a new transaction. Only the amount is
// required; account and narration default to "N/A".
type CreateEntryLegBody struct {
	Account   string `json:"account,omitempty" doc:"Account name"`
	Amount    string `json:"amount" minLength:"1" doc:"Decimal amount, required"`
	Expenses  string `json:"expenses,omitempty" doc:"Decimal expenses, defaults to 0"`
	Narration string `json:"narration,omitempty" doc:"Free-text note"`
}

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Date   string             `json:"date" minLength:"1" doc:"Entry date, YYYY-MM-DD"`
	Credit CreateEntryLegBody `json:"creditEntry" doc:"Money received"`
	Debit  CreateEntryLegBody `json:"debitEntry" doc:"Money paid; any operator-entered amount is accepted"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID        string `json:"id" doc:"Created transaction UUID"`
	VoucherNo int64  `json:"voucherNo" doc:"Assigned voucher number"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records a paired credit/debit entry and assigns the next voucher number.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseEntryLeg(body CreateEntryLegBody, side string) (ledger.EntryLeg, error) {
	if body.Amount == "" {
		return ledger.EntryLeg{}, huma.NewError(http.StatusBadRequest, side+" amount is required")
	}
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return ledger.EntryLeg{}, huma.NewError(http.StatusBadRequest, "invalid "+side+" amount", err)
	}

	expenses := decimal.Zero
	if body.Expenses != "" {
		expenses, err = decimal.NewFromString(body.Expenses)
		if err != nil {
			return ledger.EntryLeg{}, huma.NewError(http.StatusBadRequest, "invalid "+side+" expenses", err)
		}
	}

	return ledger.EntryLeg{
		Account:   body.Account,
		Amount:    amount,
		Expenses:  expenses,
		Narration: body.Narration,
	}, nil
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	date, err := time.Parse(dateLayout, input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	credit, err := parseEntryLeg(input.Body.Credit, "credit")
	if err != nil {
		return nil, err
	}
	debit, err := parseEntryLeg(input.Body.Debit, "debit")
	if err != nil {
		return nil, err
	}

	return &actions.CreateTransaction{
		Date:   date,
		Credit: credit,
		Debit:  debit,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		var valErr *ledger.ValidationError
		if errors.As(err, &valErr) {
			return nil, huma.NewError(http.StatusBadRequest, valErr.Msg)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", action.ID.String())
		logData.AddData("voucherNo", action.VoucherNo)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponse{
			ID:        action.ID.String(),
			VoucherNo: action.VoucherNo,
		},
	}, nil
}

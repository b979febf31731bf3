package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name          string `json:"name" minLength:"1" doc:"Account name"`
	Category      string `json:"category" enum:"creditor,debtor" doc:"Balance sign convention"`
	Group         string `json:"group" enum:"cash-in-hand,liabilities,assets,bank" doc:"Descriptive grouping"`
	OpeningAmount string `json:"openingAmount,omitempty" doc:"Decimal opening balance (e.g. '0' or '1234.56'), defaults to 0"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// actionProcessor is the interface for submitting mutations to the
// operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new ledger account. The name must be unique regardless of letter case.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (*actions.CreateAccount, error) {
	category, err := ledger.ParseCategory(input.Body.Category)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category", err)
	}
	group, err := ledger.ParseGroup(input.Body.Group)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid group", err)
	}

	openingStr := input.Body.OpeningAmount
	if openingStr == "" {
		openingStr = "0"
	}
	openingAmount, err := decimal.NewFromString(openingStr)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid openingAmount", err)
	}

	return &actions.CreateAccount{
		Name:          input.Body.Name,
		Category:      category,
		Group:         group,
		OpeningAmount: openingAmount,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		var dupErr *ledger.DuplicateAccountError
		if errors.As(err, &dupErr) {
			return nil, huma.NewError(http.StatusConflict, dupErr.Error())
		}
		var valErr *ledger.ValidationError
		if errors.As(err, &valErr) {
			return nil, huma.NewError(http.StatusBadRequest, valErr.Msg)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", action.ID.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: action.ID.String()},
	}, nil
}

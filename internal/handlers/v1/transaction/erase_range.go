package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// EraseRangeBody is the request body for erasing a date range.
type EraseRangeBody struct {
	StartDate string `json:"startDate" minLength:"1" doc:"Inclusive lower bound, YYYY-MM-DD"`
	EndDate   string `json:"endDate" minLength:"1" doc:"Inclusive upper bound, YYYY-MM-DD"`
}

// EraseRangeInput is the Huma input for erasing a date range.
type EraseRangeInput struct {
	Body EraseRangeBody
}

// EraseRangeResponseBody is the response body for erasing a date range.
type EraseRangeResponseBody struct {
	Deleted int64 `json:"deleted" doc:"How many transactions were removed"`
}

// EraseRangeOutput is the Huma output for erasing a date range.
type EraseRangeOutput struct {
	Body EraseRangeResponseBody
}

// EraseRangeHandler handles POST /v1/transactions/erase.
type EraseRangeHandler struct {
	Operator actionProcessor
}

// NewEraseRangeHandler creates a new EraseRangeHandler.
func NewEraseRangeHandler(op actionProcessor) *EraseRangeHandler {
	return &EraseRangeHandler{Operator: op}
}

// Register registers the erase range endpoint with the Huma API.
func (h *EraseRangeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "erase-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/erase",
		Summary:     "Erase a date range",
		Description: "Removes every transaction whose date falls inside the inclusive window.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseEraseRangeInput(input *EraseRangeInput) (*actions.EraseDateRange, error) {
	start, err := time.Parse(dateLayout, input.Body.StartDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}
	end, err := time.Parse(dateLayout, input.Body.EndDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
	}
	return &actions.EraseDateRange{Start: start, End: end}, nil
}

func (h *EraseRangeHandler) handle(ctx context.Context, input *EraseRangeInput) (*EraseRangeOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseEraseRangeInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		var valErr *ledger.ValidationError
		if errors.As(err, &valErr) {
			return nil, huma.NewError(http.StatusBadRequest, valErr.Msg)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to erase transactions", err)
	}

	if logData != nil {
		logData.AddData("deletedCount", action.Deleted)
	}

	return &EraseRangeOutput{
		Body: EraseRangeResponseBody{Deleted: action.Deleted},
	}, nil
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeleteTransactionsBody is the request body for batch deletion.
type DeleteTransactionsBody struct {
	IDs []string `json:"ids" minItems:"1" doc:"Transaction UUIDs to remove; unmatched ids are ignored"`
}

// DeleteTransactionsInput is the Huma input for batch deletion.
type DeleteTransactionsInput struct {
	Body DeleteTransactionsBody
}

// DeleteTransactionsResponseBody is the response body for batch deletion.
type DeleteTransactionsResponseBody struct {
	Deleted int64 `json:"deleted" doc:"How many transactions were removed"`
}

// DeleteTransactionsOutput is the Huma output for batch deletion.
type DeleteTransactionsOutput struct {
	Body DeleteTransactionsResponseBody
}

// DeleteTransactionsHandler handles POST /v1/transactions/delete.
type DeleteTransactionsHandler struct {
	Operator actionProcessor
}

// NewDeleteTransactionsHandler creates a new DeleteTransactionsHandler.
func NewDeleteTransactionsHandler(op actionProcessor) *DeleteTransactionsHandler {
	return &DeleteTransactionsHandler{Operator: op}
}

// Register registers the delete transactions endpoint with the Huma API.
func (h *DeleteTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/delete",
		Summary:     "Delete transactions",
		Description: "Removes the transactions whose ids are in the set. Unmatched ids are silently ignored.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionsHandler) handle(ctx context.Context, input *DeleteTransactionsInput) (*DeleteTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	ids := make([]uuid.UUID, len(input.Body.IDs))
	for i, raw := range input.Body.IDs {
		id, err := uuid.FromString(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
		}
		ids[i] = id
	}

	action := &actions.DeleteTransactions{IDs: ids}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transactions", err)
	}

	if logData != nil {
		logData.AddData("deletedCount", action.Deleted)
	}

	return &DeleteTransactionsOutput{
		Body: DeleteTransactionsResponseBody{Deleted: action.Deleted},
	}, nil
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// NextVoucherInput is the Huma input for the next voucher number.
type NextVoucherInput struct{}

// NextVoucherResponseBody is the response body for the next voucher number.
type NextVoucherResponseBody struct {
	VoucherNo int64 `json:"voucherNo" doc:"The number the next recorded transaction will receive"`
}

// NextVoucherOutput is the Huma output for the next voucher number.
type NextVoucherOutput struct {
	Body NextVoucherResponseBody
}

// voucherNumberer is the interface for computing the next voucher number.
type voucherNumberer interface {
	NextVoucherNumber(ctx context.Context) (int64, error)
}

// NextVoucherHandler handles GET /v1/transactions/next-voucher.
type NextVoucherHandler struct {
	TransactionService voucherNumberer
}

// NewNextVoucherHandler creates a new NextVoucherHandler.
func NewNextVoucherHandler(svc voucherNumberer) *NextVoucherHandler {
	return &NextVoucherHandler{TransactionService: svc}
}

// Register registers the next voucher endpoint with the Huma API.
func (h *NextVoucherHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "next-voucher",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/next-voucher",
		Summary:     "Next voucher number",
		Description: "Recomputes max(voucherNo)+1 from the current ledger, for display on the entry form.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *NextVoucherHandler) handle(ctx context.Context, input *NextVoucherInput) (*NextVoucherOutput, error) {
	voucherNo, err := h.TransactionService.NextVoucherNumber(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute next voucher number", err)
	}
	return &NextVoucherOutput{Body: NextVoucherResponseBody{VoucherNo: voucherNo}}, nil
}

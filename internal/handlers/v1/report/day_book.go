package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
)

// DayBookInput is the Huma input for the day book report.
type DayBookInput struct{}

// DayBookResponseBody is the response body for the day book report.
type DayBookResponseBody struct {
	Rows   []DayBookRow  `json:"rows"`
	Totals DayBookTotals `json:"totals"`
}

// DayBookOutput is the Huma output for the day book report.
type DayBookOutput struct {
	Body DayBookResponseBody
}

// DayBookHandler handles GET /v1/reports/day-book.
type DayBookHandler struct {
	Service dayBooker
}

// NewDayBookHandler creates a new DayBookHandler.
func NewDayBookHandler(svc dayBooker) *DayBookHandler {
	return &DayBookHandler{Service: svc}
}

// Register registers the day book endpoint with the Huma API.
func (h *DayBookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-day-book",
		Method:      http.MethodGet,
		Path:        "/v1/reports/day-book",
		Summary:     "Get the day book",
		Description: "Returns every voucher flattened to a single row, with credit and debit totals.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *DayBookHandler) handle(ctx context.Context, input *DayBookInput) (*DayBookOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dayBookMs")
	}
	dayBook, err := h.Service.GetDayBook(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build day book", err)
	}

	rows := make([]DayBookRow, len(dayBook.Rows))
	for i, row := range dayBook.Rows {
		rows[i] = dayBookRowToAPI(row)
	}

	return &DayBookOutput{
		Body: DayBookResponseBody{
			Rows: rows,
			Totals: DayBookTotals{
				TotalEntries:   dayBook.Totals.TotalEntries,
				TotalCredit:    dayBook.Totals.TotalCredit.String(),
				TotalDebit:     dayBook.Totals.TotalDebit.String(),
				CreditExpenses: dayBook.Totals.CreditExpenses.String(),
				DebitExpenses:  dayBook.Totals.DebitExpenses.String(),
			},
		},
	}, nil
}

package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/export"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// ExportDayBookInput is the Huma input for the day book export.
type ExportDayBookInput struct{}

// ExportDayBookOutput is the Huma output for the day book export. The body
// is a raw xlsx workbook.
type ExportDayBookOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ExportDayBookHandler handles GET /v1/reports/day-book/export.
type ExportDayBookHandler struct {
	Service dayBooker
}

// NewExportDayBookHandler creates a new ExportDayBookHandler.
func NewExportDayBookHandler(svc dayBooker) *ExportDayBookHandler {
	return &ExportDayBookHandler{Service: svc}
}

// Register registers the day book export endpoint with the Huma API.
func (h *ExportDayBookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-day-book",
		Method:      http.MethodGet,
		Path:        "/v1/reports/day-book/export",
		Summary:     "Export the day book",
		Description: "Returns the day book as an xlsx workbook.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *ExportDayBookHandler) handle(ctx context.Context, input *ExportDayBookInput) (*ExportDayBookOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("exportDayBookMs")
	}
	dayBook, err := h.Service.GetDayBook(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build day book", err)
	}

	workbook, err := export.DayBookWorkbook(dayBook)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to render workbook", err)
	}
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to write workbook", err)
	}

	return &ExportDayBookOutput{
		ContentType:        export.ContentTypeXLSX,
		ContentDisposition: `attachment; filename="day-book.xlsx"`,
		Body:               buf.Bytes(),
	}, nil
}

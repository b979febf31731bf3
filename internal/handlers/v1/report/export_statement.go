package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/export"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// ExportStatementInput is the Huma input for the account statement export.
type ExportStatementInput struct {
	Name string `query:"name" required:"true" minLength:"1" doc:"Exact account name"`
}

// ExportStatementOutput is the Huma output for the account statement
// export. The body is a raw xlsx workbook.
type ExportStatementOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ExportStatementHandler handles GET /v1/reports/account-statement/export.
type ExportStatementHandler struct {
	Service statementer
}

// NewExportStatementHandler creates a new ExportStatementHandler.
func NewExportStatementHandler(svc statementer) *ExportStatementHandler {
	return &ExportStatementHandler{Service: svc}
}

// Register registers the account statement export endpoint with the Huma
// API.
func (h *ExportStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-account-statement",
		Method:      http.MethodGet,
		Path:        "/v1/reports/account-statement/export",
		Summary:     "Export an account statement",
		Description: "Returns one account's statement as an xlsx workbook.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *ExportStatementHandler) handle(ctx context.Context, input *ExportStatementInput) (*ExportStatementOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("exportStatementMs")
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

	workbook, err := export.StatementWorkbook(statement)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to render workbook", err)
	}
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to write workbook", err)
	}

	return &ExportStatementOutput{
		ContentType:        export.ContentTypeXLSX,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", statement.Account+"-statement.xlsx"),
		Body:               buf.Bytes(),
	}, nil
}

package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// mockReportService is a mock for the report service interfaces.
type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) GetDayBook(ctx context.Context) (ledger.DayBook, error) {
	args := m.Called(ctx)
	return args.Get(0).(ledger.DayBook), args.Error(1)
}

func (m *mockReportService) GetAccountStatement(ctx context.Context, accountName string) (ledger.Statement, error) {
	args := m.Called(ctx, accountName)
	return args.Get(0).(ledger.Statement), args.Error(1)
}

func (m *mockReportService) GetTrialBalance(ctx context.Context) (ledger.TrialBalance, error) {
	args := m.Called(ctx)
	return args.Get(0).(ledger.TrialBalance), args.Error(1)
}

func sampleDayBook() ledger.DayBook {
	return ledger.DayBook{
		Rows: []ledger.DayBookRow{
			{
				Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				VoucherNo:    1,
				ReceivedFrom: "Customer A",
				PaidTo:       "City Bank",
				Amount:       decimal.RequireFromString("100"),
				Expenses:     decimal.RequireFromString("5"),
				Narration:    "Invoice 42",
			},
		},
		Totals: ledger.DayBookTotals{
			TotalEntries:   1,
			TotalCredit:    decimal.RequireFromString("100"),
			TotalDebit:     decimal.RequireFromString("100"),
			CreditExpenses: decimal.RequireFromString("5"),
			DebitExpenses:  decimal.RequireFromString("5"),
		},
	}
}

func TestHTTP_DayBook_Success(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("GetDayBook", mock.Anything).Return(sampleDayBook(), nil)

	_, api := humatest.New(t)
	NewDayBookHandler(mockSvc).Register(api)
	resp := api.Get("/v1/reports/day-book")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DayBookResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Rows, 1)
	assert.Equal(t, "2025-03-10", body.Rows[0].Date)
	assert.Equal(t, "Customer A", body.Rows[0].ReceivedFrom)
	assert.Equal(t, "City Bank", body.Rows[0].PaidTo)
	assert.Equal(t, body.Totals.TotalCredit, body.Totals.TotalDebit)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DayBook_ServiceError(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("GetDayBook", mock.Anything).Return(ledger.DayBook{}, errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewDayBookHandler(mockSvc).Register(api)
	resp := api.Get("/v1/reports/day-book")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_AccountStatement_Success(t *testing.T) {
	statement := ledger.Statement{
		Account:        "City Bank",
		Category:       ledger.CategoryDebtor,
		OpeningBalance: decimal.RequireFromString("100"),
		Entries: []ledger.StatementEntry{
			{
				Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				VoucherNo:      1,
				Side:           ledger.SideDebit,
				CounterAccount: "Customer A",
				Amount:         decimal.RequireFromString("80"),
				Expenses:       decimal.Zero,
				Narration:      "N/A",
			},
		},
		TotalCredit:    decimal.RequireFromString("30"),
		TotalDebit:     decimal.RequireFromString("80"),
		ClosingBalance: decimal.RequireFromString("150"),
	}

	mockSvc := new(mockReportService)
	mockSvc.On("GetAccountStatement", mock.Anything, "City Bank").Return(statement, nil)

	_, api := humatest.New(t)
	NewAccountStatementHandler(mockSvc).Register(api)
	resp := api.Get("/v1/reports/account-statement?name=City+Bank")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AccountStatementResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "City Bank", body.Account)
	assert.Equal(t, "debtor", body.Category)
	assert.Equal(t, "150", body.ClosingBalance)
	assert.Len(t, body.Entries, 1)
	assert.Equal(t, "debit", body.Entries[0].Side)
	assert.Equal(t, "Customer A", body.Entries[0].CounterAccount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_AccountStatement_UnknownAccount(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("GetAccountStatement", mock.Anything, "Nobody").
		Return(ledger.Statement{}, &ledger.NotFoundError{Resource: "account", Key: "Nobody"})

	_, api := humatest.New(t)
	NewAccountStatementHandler(mockSvc).Register(api)
	resp := api.Get("/v1/reports/account-statement?name=Nobody")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_AccountStatement_MissingName(t *testing.T) {
	mockSvc := new(mockReportService)

	_, api := humatest.New(t)
	NewAccountStatementHandler(mockSvc).Register(api)
	resp := api.Get("/v1/reports/account-statement")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAccountStatement")
}

func TestHTTP_TrialBalance_Success(t *testing.T) {
	tb := ledger.TrialBalance{
		CreditorRows: []ledger.TrialBalanceRow{
			{AccountID: uuid.Must(uuid.NewV4()), Name: "Vendor B", Balance: decimal.RequireFromString("90")},
		},
		DebtorRows: []ledger.TrialBalanceRow{
			{AccountID: uuid.Must(uuid.NewV4()), Name: "City Bank", Balance: decimal.RequireFromString("140")},
		},
		TotalCredit:    decimal.RequireFromString("90"),
		TotalDebit:     decimal.RequireFromString("140"),
		CreditExpenses: decimal.Zero,
		DebitExpenses:  decimal.Zero,
	}

	mockSvc := new(mockReportService)
	mockSvc.On("GetTrialBalance", mock.Anything).Return(tb, nil)

	_, api := humatest.New(t)
	NewTrialBalanceHandler(mockSvc).Register(api)
	resp := api.Get("/v1/reports/trial-balance")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body TrialBalanceResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.CreditorRows, 1)
	assert.Len(t, body.DebtorRows, 1)
	assert.Equal(t, "90", body.TotalCredit)
	assert.Equal(t, "140", body.TotalDebit)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ExportDayBook_Success(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("GetDayBook", mock.Anything).Return(sampleDayBook(), nil)

	_, api := humatest.New(t)
	NewExportDayBookHandler(mockSvc).Register(api)
	resp := api.Get("/v1/reports/day-book/export")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "day-book.xlsx")
	assert.NotEmpty(t, resp.Body.Bytes())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ExportStatement_UnknownAccount(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("GetAccountStatement", mock.Anything, "Nobody").
		Return(ledger.Statement{}, &ledger.NotFoundError{Resource: "account", Key: "Nobody"})

	_, api := humatest.New(t)
	NewExportStatementHandler(mockSvc).Register(api)
	resp := api.Get("/v1/reports/account-statement/export?name=Nobody")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func txnRow(voucherNo int64, creditAccount, debitAccount, amount string) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		EntryDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		VoucherNo:       voucherNo,
		CreditAccount:   creditAccount,
		CreditAmount:    decimal.RequireFromString(amount),
		CreditExpenses:  decimal.Zero,
		CreditNarration: "N/A",
		DebitAccount:    debitAccount,
		DebitAmount:     decimal.RequireFromString(amount),
		DebitExpenses:   decimal.Zero,
		DebitNarration:  "N/A",
	}
}

func TestGetDayBook_TotalsBalance(t *testing.T) {
	mockTxn := new(mockTransactionTable)
	mockTxn.On("List", mock.Anything, (*sqlconfig.TransactionFilter)(nil)).
		Return([]*sqlconfig.Transaction{
			txnRow(1, "Customer A", "City Bank", "100"),
			txnRow(2, "Customer B", "City Bank", "250"),
		}, nil)

	svc := NewReportService(&storage.Storage{Transactions: mockTxn})
	dayBook, err := svc.GetDayBook(context.Background())

	assert.NoError(t, err)
	assert.Len(t, dayBook.Rows, 2)
	assert.Equal(t, 2, dayBook.Totals.TotalEntries)
	assert.True(t, dayBook.Totals.TotalCredit.Equal(decimal.RequireFromString("350")))
	assert.True(t, dayBook.Totals.TotalDebit.Equal(dayBook.Totals.TotalCredit))
	mockTxn.AssertExpectations(t)
}

func TestGetAccountStatement_DebtorClosingBalance(t *testing.T) {
	mockAcct := new(mockAccountTable)
	mockAcct.On("List", mock.Anything).Return([]*sqlconfig.Account{
		{
			ID:            uuid.Must(uuid.NewV4()),
			Name:          "City Bank",
			Category:      "debtor",
			Group:         "bank",
			OpeningAmount: decimal.RequireFromString("100"),
		},
	}, nil)

	mockTxn := new(mockTransactionTable)
	mockTxn.On("List", mock.Anything, (*sqlconfig.TransactionFilter)(nil)).
		Return([]*sqlconfig.Transaction{
			txnRow(1, "Customer A", "City Bank", "80"),
			txnRow(2, "City Bank", "Vendor B", "30"),
			txnRow(3, "Customer A", "Vendor B", "999"),
		}, nil)

	svc := NewReportService(&storage.Storage{Accounts: mockAcct, Transactions: mockTxn})
	statement, err := svc.GetAccountStatement(context.Background(), "City Bank")

	assert.NoError(t, err)
	assert.Equal(t, "City Bank", statement.Account)
	assert.Len(t, statement.Entries, 2)
	assert.Equal(t, ledger.SideDebit, statement.Entries[0].Side)
	assert.Equal(t, "Customer A", statement.Entries[0].CounterAccount)
	assert.Equal(t, ledger.SideCredit, statement.Entries[1].Side)
	// debtor: 100 + 80 debit - 30 credit = 150
	assert.True(t, statement.ClosingBalance.Equal(decimal.RequireFromString("150")))
	mockAcct.AssertExpectations(t)
	mockTxn.AssertExpectations(t)
}

func TestGetAccountStatement_NameMatchIsCaseSensitive(t *testing.T) {
	mockAcct := new(mockAccountTable)
	mockAcct.On("List", mock.Anything).Return([]*sqlconfig.Account{
		{ID: uuid.Must(uuid.NewV4()), Name: "City Bank", Category: "debtor", Group: "bank"},
	}, nil)

	svc := NewReportService(&storage.Storage{Accounts: mockAcct})
	_, err := svc.GetAccountStatement(context.Background(), "city bank")

	var notFound *ledger.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetAccountStatement_UnknownAccount(t *testing.T) {
	mockAcct := new(mockAccountTable)
	mockAcct.On("List", mock.Anything).Return([]*sqlconfig.Account{}, nil)

	svc := NewReportService(&storage.Storage{Accounts: mockAcct})
	_, err := svc.GetAccountStatement(context.Background(), "Nobody")

	var notFound *ledger.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Nobody", notFound.Key)
}

func TestGetTrialBalance_UsesComputedBalances(t *testing.T) {
	mockAcct := new(mockAccountTable)
	mockAcct.On("List", mock.Anything).Return([]*sqlconfig.Account{
		{
			ID:            uuid.Must(uuid.NewV4()),
			Name:          "City Bank",
			Category:      "debtor",
			Group:         "bank",
			OpeningAmount: decimal.RequireFromString("100"),
		},
		{
			ID:            uuid.Must(uuid.NewV4()),
			Name:          "Vendor B",
			Category:      "creditor",
			Group:         "liabilities",
			OpeningAmount: decimal.RequireFromString("50"),
		},
	}, nil)

	mockTxn := new(mockTransactionTable)
	mockTxn.On("List", mock.Anything, (*sqlconfig.TransactionFilter)(nil)).
		Return([]*sqlconfig.Transaction{
			txnRow(1, "Vendor B", "City Bank", "40"),
		}, nil)

	svc := NewReportService(&storage.Storage{Accounts: mockAcct, Transactions: mockTxn})
	tb, err := svc.GetTrialBalance(context.Background())

	assert.NoError(t, err)
	assert.Len(t, tb.DebtorRows, 1)
	assert.Len(t, tb.CreditorRows, 1)
	// debtor: 100 + 40 debit = 140; creditor: 50 + 40 credit = 90
	assert.True(t, tb.DebtorRows[0].Balance.Equal(decimal.RequireFromString("140")))
	assert.True(t, tb.CreditorRows[0].Balance.Equal(decimal.RequireFromString("90")))
	assert.True(t, tb.TotalDebit.Equal(decimal.RequireFromString("140")))
	assert.True(t, tb.TotalCredit.Equal(decimal.RequireFromString("90")))
}

func TestGetDayBook_StorageError(t *testing.T) {
	mockTxn := new(mockTransactionTable)
	mockTxn.On("List", mock.Anything, (*sqlconfig.TransactionFilter)(nil)).
		Return(nil, errors.New("database unavailable"))

	svc := NewReportService(&storage.Storage{Transactions: mockTxn})
	_, err := svc.GetDayBook(context.Background())

	assert.Error(t, err)
}

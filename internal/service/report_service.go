package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// ReportService composes storage reads with the balance engine. Every
// report fetches a fresh snapshot; nothing is cached between calls.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// GetDayBook returns the combined per-voucher view of the whole ledger.
func (s *ReportService) GetDayBook(ctx context.Context) (ledger.DayBook, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return ledger.DayBook{}, err
	}
	return ledger.BuildDayBook(transactionsFromRows(rows)), nil
}

// GetAccountStatement returns the reconciliation view for one account,
// looked up by exact name. Unknown names are a NotFoundError.
func (s *ReportService) GetAccountStatement(ctx context.Context, accountName string) (ledger.Statement, error) {
	accountRows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return ledger.Statement{}, err
	}

	var account *ledger.Account
	for _, row := range accountRows {
		if row.Name == accountName {
			acct := accountFromRow(row)
			account = &acct
			break
		}
	}
	if account == nil {
		return ledger.Statement{}, &ledger.NotFoundError{Resource: "account", Key: accountName}
	}

	txnRows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return ledger.Statement{}, err
	}
	return ledger.BuildStatement(*account, transactionsFromRows(txnRows)), nil
}

// GetTrialBalance returns the categorized balance summary over the full
// registry and ledger.
func (s *ReportService) GetTrialBalance(ctx context.Context) (ledger.TrialBalance, error) {
	accountRows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return ledger.TrialBalance{}, err
	}
	txnRows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return ledger.TrialBalance{}, err
	}

	accounts := make([]ledger.Account, len(accountRows))
	for i, row := range accountRows {
		accounts[i] = accountFromRow(row)
	}
	return ledger.BuildTrialBalance(accounts, transactionsFromRows(txnRows)), nil
}

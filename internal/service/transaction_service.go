package service

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// TransactionFilter narrows a listing by account name or an inclusive date
// window. The zero value lists the whole ledger.
type TransactionFilter struct {
	Account   string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionService handles transaction reads.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns transactions in insertion order, optionally
// filtered.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionFilter) ([]ledger.Transaction, error) {
	var storageFilter *sqlconfig.TransactionFilter
	if filter != nil {
		storageFilter = &sqlconfig.TransactionFilter{
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
		}
		if filter.Account != "" {
			storageFilter.Account = &filter.Account
		}
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}
	return transactionsFromRows(rows), nil
}

// NextVoucherNumber recomputes the upcoming voucher number from the current
// ledger state, as the entry form displays it. The authoritative assignment
// still happens inside the create-transaction write.
func (s *TransactionService) NextVoucherNumber(ctx context.Context) (int64, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return 0, err
	}
	return ledger.NextVoucherNumber(transactionsFromRows(rows)), nil
}

package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// AccountService handles account reads.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// ListAccounts returns the full registry ordered by name.
func (s *AccountService) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]ledger.Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromRow(row)
	}
	return accounts, nil
}

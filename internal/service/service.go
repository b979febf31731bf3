package service

import (
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all read-side services. Mutations flow through the
// operator, not through here.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Report      *ReportService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
		Report:      NewReportService(store),
	}
}

package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Writer bundles the table gateways over one open transaction.
type Writer struct {
	tx           bob.Tx
	Accounts     sqlconfig.IAccountTable
	Transactions sqlconfig.ITransactionTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     sqlconfig.NewAccountsTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

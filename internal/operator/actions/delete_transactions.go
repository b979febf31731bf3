package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteTransactions removes a batch of transactions by id. Unmatched ids
// are silently ignored.
type DeleteTransactions struct {
	IDs []uuid.UUID

	// Deleted is set on success.
	Deleted int64

	IAction
}

func (d *DeleteTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.DeleteByIDs(ctx, d.IDs)
	if err != nil {
		return err
	}
	d.Deleted = deleted
	return nil
}

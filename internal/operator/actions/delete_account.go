package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteAccount removes an account by id. An absent id is a no-op, and
// historic transaction legs referencing the account by name are untouched.
type DeleteAccount struct {
	ID uuid.UUID

	IAction
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.Accounts.DeleteByID(ctx, d.ID)
	return err
}

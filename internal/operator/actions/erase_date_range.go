package actions

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// EraseDateRange removes every transaction whose date falls in
// [Start, End] inclusive.
type EraseDateRange struct {
	Start time.Time
	End   time.Time

	// Deleted is set on success.
	Deleted int64

	IAction
}

func (e *EraseDateRange) Perform(ctx context.Context, writer *storage.Writer) error {
	if e.Start.IsZero() || e.End.IsZero() {
		return &ledger.ValidationError{Msg: "both start and end dates are required"}
	}
	if e.End.Before(e.Start) {
		return &ledger.ValidationError{Msg: "end date must not precede start date"}
	}

	deleted, err := writer.Transactions.DeleteByDateRange(ctx, e.Start, e.End)
	if err != nil {
		return err
	}
	e.Deleted = deleted
	return nil
}

package actions

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Date   time.Time
	Credit ledger.EntryLeg
	Debit  ledger.EntryLeg

	// ID and VoucherNo are set on success.
	ID        uuid.UUID
	VoucherNo int64

	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.Date.IsZero() {
		return &ledger.ValidationError{Msg: "date is required"}
	}
	if t.Credit.Amount.IsNegative() || t.Debit.Amount.IsNegative() {
		return &ledger.ValidationError{Msg: "amount must not be negative"}
	}
	if t.Credit.Expenses.IsNegative() || t.Debit.Expenses.IsNegative() {
		return &ledger.ValidationError{Msg: "expenses must not be negative"}
	}

	credit := normalizeLeg(t.Credit)
	debit := normalizeLeg(t.Debit)

	// Voucher assignment happens inside the write transaction, and writes
	// are serialized by the operator queue, so two clients cannot compute
	// the same number.
	max, err := writer.Transactions.MaxVoucherNo(ctx)
	if err != nil {
		return err
	}
	voucherNo := max + 1

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		EntryDate:       t.Date,
		VoucherNo:       voucherNo,
		CreditAccount:   credit.Account,
		CreditAmount:    credit.Amount,
		CreditExpenses:  credit.Expenses,
		CreditNarration: credit.Narration,
		DebitAccount:    debit.Account,
		DebitAmount:     debit.Amount,
		DebitExpenses:   debit.Expenses,
		DebitNarration:  debit.Narration,
	})
	if err != nil {
		return err
	}

	t.ID = id
	t.VoucherNo = voucherNo
	return nil
}

// normalizeLeg defaults blank account and narration to "N/A". Only the
// amounts are required.
func normalizeLeg(leg ledger.EntryLeg) ledger.EntryLeg {
	leg.Account = strings.TrimSpace(leg.Account)
	if leg.Account == "" {
		leg.Account = "N/A"
	}
	leg.Narration = strings.TrimSpace(leg.Narration)
	if leg.Narration == "" {
		leg.Narration = "N/A"
	}
	return leg
}

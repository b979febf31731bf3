package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Transaction represents a paired credit/debit record. Both legs live on
// one row so they are written atomically.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	EntryDate       time.Time       `db:"entry_date"`
	VoucherNo       int64           `db:"voucher_no"`
	CreditAccount   string          `db:"credit_account"`
	CreditAmount    decimal.Decimal `db:"credit_amount"`
	CreditExpenses  decimal.Decimal `db:"credit_expenses"`
	CreditNarration string          `db:"credit_narration"`
	DebitAccount    string          `db:"debit_account"`
	DebitAmount     decimal.Decimal `db:"debit_amount"`
	DebitExpenses   decimal.Decimal `db:"debit_expenses"`
	DebitNarration  string          `db:"debit_narration"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	EntryDate       time.Time
	VoucherNo       int64
	CreditAccount   string
	CreditAmount    decimal.Decimal
	CreditExpenses  decimal.Decimal
	CreditNarration string
	DebitAccount    string
	DebitAmount     decimal.Decimal
	DebitExpenses   decimal.Decimal
	DebitNarration  string
}

// TransactionFilter specifies filters for listing transactions.
// Account matches either leg; the date bounds are inclusive.
type TransactionFilter struct {
	Account   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	MaxVoucherNo(ctx context.Context) (int64, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteByDateRange(ctx context.Context, start, end time.Time) (int64, error)
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable over the given executor.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

var transactionColumns = []any{
	"id", "entry_date", "voucher_no",
	"credit_account", "credit_amount", "credit_expenses", "credit_narration",
	"debit_account", "debit_amount", "debit_expenses", "debit_narration",
	"created_at",
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("transactions",
			"entry_date", "voucher_no",
			"credit_account", "credit_amount", "credit_expenses", "credit_narration",
			"debit_account", "debit_amount", "debit_expenses", "debit_narration",
		),
		im.Values(psql.Arg(
			create.EntryDate, create.VoucherNo,
			create.CreditAccount, create.CreditAmount, create.CreditExpenses, create.CreditNarration,
			create.DebitAccount, create.DebitAmount, create.DebitExpenses, create.DebitNarration,
		)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter in insertion order. Nil
// filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
	}
	if filter != nil {
		if filter.Account != nil {
			queryMods = append(queryMods, psql.WhereOr(
				sm.Where(psql.Quote("credit_account").EQ(psql.Arg(*filter.Account))),
				sm.Where(psql.Quote("debit_account").EQ(psql.Arg(*filter.Account))),
			))
		}
		if filter.StartDate != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("entry_date").GTE(psql.Arg(*filter.StartDate))))
		}
		if filter.EndDate != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("entry_date").LTE(psql.Arg(*filter.EndDate))))
		}
	}
	// Insertion order, not date order: the day book presents rows as the
	// store received them.
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// MaxVoucherNo returns the highest assigned voucher number, 0 on an empty
// ledger.
func (t *TransactionsTable) MaxVoucherNo(ctx context.Context) (int64, error) {
	q := psql.RawQuery("SELECT COALESCE(MAX(voucher_no), 0) FROM transactions")
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// DeleteByIDs removes all transactions whose id is in the set and reports
// the count. Unmatched ids are silently ignored.
func (t *TransactionsTable) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").In(psql.Arg(args...))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByDateRange removes transactions with entry_date in [start, end]
// inclusive and reports the count.
func (t *TransactionsTable) DeleteByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("entry_date").GTE(psql.Arg(start))),
		dm.Where(psql.Quote("entry_date").LTE(psql.Arg(end))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Account represents an account record.
type Account struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	Category      string          `db:"category"`
	Group         string          `db:"grp"`
	OpeningAmount decimal.Decimal `db:"opening_amount"`
	CreatedAt     time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name          string
	Category      string
	Group         string
	OpeningAmount decimal.Decimal
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IAccountTable interface {
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Account, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable over the given executor, which
// may be a database handle or an open transaction.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

var accountColumns = []any{"id", "name", "category", "grp", "opening_amount", "created_at"}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("accounts", "name", "category", "grp", "opening_amount"),
		im.Values(psql.Arg(create.Name, create.Category, create.Group, create.OpeningAmount)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns every account ordered by name.
func (t *AccountsTable) List(ctx context.Context) ([]*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Account]())
}

// DeleteByID removes an account and reports how many rows matched. Absent
// ids delete nothing and return 0.
func (t *AccountsTable) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Storage is the read-side view of the ledger store. Mutations go through
// Write, which opens a transaction-scoped Writer.
type Storage struct {
	DB           bob.DB
	Accounts     sqlconfig.IAccountTable
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           bobDB,
		Accounts:     sqlconfig.NewAccountsTable(bobDB),
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
	}
}

// Write begins a database transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

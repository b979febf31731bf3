package actions

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type CreateAccount struct {
	Name          string
	Category      ledger.Category
	Group         ledger.Group
	OpeningAmount decimal.Decimal

	// ID is set on success.
	ID uuid.UUID

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return &ledger.ValidationError{Msg: "account name is required"}
	}

	// Duplicate detection is by name alone, case-insensitively. Category
	// and group play no part in it.
	existing, err := writer.Accounts.List(ctx)
	if err != nil {
		return err
	}
	for _, acct := range existing {
		if strings.EqualFold(acct.Name, name) {
			return &ledger.DuplicateAccountError{Name: name}
		}
	}

	id, err := writer.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		Name:          name,
		Category:      string(c.Category),
		Group:         string(c.Group),
		OpeningAmount: c.OpeningAmount,
	})
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}

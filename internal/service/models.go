package service

import (
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func accountFromRow(row *sqlconfig.Account) ledger.Account {
	return ledger.Account{
		ID:            row.ID,
		Name:          row.Name,
		Category:      ledger.Category(row.Category),
		Group:         ledger.Group(row.Group),
		OpeningAmount: row.OpeningAmount,
		CreatedAt:     row.CreatedAt,
	}
}

func transactionFromRow(row *sqlconfig.Transaction) ledger.Transaction {
	return ledger.Transaction{
		ID:        row.ID,
		Date:      row.EntryDate,
		VoucherNo: row.VoucherNo,
		Credit: ledger.EntryLeg{
			Account:   row.CreditAccount,
			Amount:    row.CreditAmount,
			Expenses:  row.CreditExpenses,
			Narration: row.CreditNarration,
		},
		Debit: ledger.EntryLeg{
			Account:   row.DebitAccount,
			Amount:    row.DebitAmount,
			Expenses:  row.DebitExpenses,
			Narration: row.DebitNarration,
		},
		CreatedAt: row.CreatedAt,
	}
}

func transactionsFromRows(rows []*sqlconfig.Transaction) []ledger.Transaction {
	txns := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		txns[i] = transactionFromRow(row)
	}
	return txns
}

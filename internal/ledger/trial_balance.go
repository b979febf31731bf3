package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account with its computed running balance.
type TrialBalanceRow struct {
	AccountID uuid.UUID
	Name      string
	Balance   decimal.Decimal
}

// TrialBalance splits accounts by category. Rows and totals both use
// computed running balances, not raw opening amounts.
type TrialBalance struct {
	CreditorRows   []TrialBalanceRow
	DebtorRows     []TrialBalanceRow
	TotalCredit    decimal.Decimal
	TotalDebit     decimal.Decimal
	CreditExpenses decimal.Decimal
	DebitExpenses  decimal.Decimal
}

// BuildTrialBalance computes every account's running balance against the
// transaction snapshot and aggregates per category.
func BuildTrialBalance(accounts []Account, txns []Transaction) TrialBalance {
	tb := TrialBalance{}
	for _, acct := range accounts {
		creditTotal, debitTotal := CreditDebitTotals(txns, acct.Name)
		row := TrialBalanceRow{
			AccountID: acct.ID,
			Name:      acct.Name,
			Balance:   Balance(acct, creditTotal, debitTotal),
		}
		if acct.Category == CategoryCreditor {
			tb.CreditorRows = append(tb.CreditorRows, row)
			tb.TotalCredit = tb.TotalCredit.Add(row.Balance)
		} else {
			tb.DebtorRows = append(tb.DebtorRows, row)
			tb.TotalDebit = tb.TotalDebit.Add(row.Balance)
		}
	}
	tb.CreditExpenses, tb.DebitExpenses = ExpenseTotals(txns)
	return tb
}

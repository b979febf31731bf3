package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide marks which leg of a transaction belongs to the statement's
// account.
type EntrySide string

const (
	SideCredit EntrySide = "credit"
	SideDebit  EntrySide = "debit"
)

// StatementEntry is one transaction as seen from a single account: the leg
// naming the account, plus the account on the other side.
type StatementEntry struct {
	Date           time.Time
	VoucherNo      int64
	Side           EntrySide
	CounterAccount string
	Amount         decimal.Decimal
	Expenses       decimal.Decimal
	Narration      string
}

// Statement is the reconciliation view for one account. There is no
// per-row running balance, only a single closing balance over the filtered
// set.
type Statement struct {
	Account        string
	Category       Category
	OpeningBalance decimal.Decimal
	Entries        []StatementEntry
	TotalCredit    decimal.Decimal
	TotalDebit     decimal.Decimal
	ClosingBalance decimal.Decimal
}

// BuildStatement filters the snapshot to the account's transactions and
// derives totals and the closing balance. When both legs name the account,
// the credit leg is treated as the entry.
func BuildStatement(account Account, txns []Transaction) Statement {
	matched := AccountTransactions(txns, account.Name)
	creditTotal, debitTotal := CreditDebitTotals(matched, account.Name)

	entries := make([]StatementEntry, len(matched))
	for i, t := range matched {
		entry := StatementEntry{Date: t.Date, VoucherNo: t.VoucherNo}
		if t.Credit.Account == account.Name {
			entry.Side = SideCredit
			entry.CounterAccount = t.Debit.Account
			entry.Amount = t.Credit.Amount
			entry.Expenses = t.Credit.Expenses
			entry.Narration = t.Credit.Narration
		} else {
			entry.Side = SideDebit
			entry.CounterAccount = t.Credit.Account
			entry.Amount = t.Debit.Amount
			entry.Expenses = t.Debit.Expenses
			entry.Narration = t.Debit.Narration
		}
		entries[i] = entry
	}

	return Statement{
		Account:        account.Name,
		Category:       account.Category,
		OpeningBalance: account.OpeningAmount,
		Entries:        entries,
		TotalCredit:    creditTotal,
		TotalDebit:     debitTotal,
		ClosingBalance: Balance(account, creditTotal, debitTotal),
	}
}

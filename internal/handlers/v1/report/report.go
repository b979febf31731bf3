// Package report exposes the derived read-only views: day book, account
// statements, and the trial balance, as JSON and as xlsx downloads.
package report

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const dateLayout = "2006-01-02"

// dayBooker fetches the combined per-voucher view.
type dayBooker interface {
	GetDayBook(ctx context.Context) (ledger.DayBook, error)
}

// statementer fetches a single account's reconciliation view.
type statementer interface {
	GetAccountStatement(ctx context.Context, accountName string) (ledger.Statement, error)
}

// trialBalancer fetches the categorized balance summary.
type trialBalancer interface {
	GetTrialBalance(ctx context.Context) (ledger.TrialBalance, error)
}

// DayBookRow is the API model for one day book row.
type DayBookRow struct {
	Date         string `json:"date" doc:"Entry date, YYYY-MM-DD"`
	VoucherNo    int64  `json:"voucherNo"`
	ReceivedFrom string `json:"receivedFrom" doc:"Credit leg account"`
	PaidTo       string `json:"paidTo" doc:"Debit leg account"`
	Amount       string `json:"amount"`
	Expenses     string `json:"expenses"`
	Narration    string `json:"narration"`
}

// DayBookTotals is the API model for the day book footer.
type DayBookTotals struct {
	TotalEntries   int    `json:"totalEntries"`
	TotalCredit    string `json:"totalCredit"`
	TotalDebit     string `json:"totalDebit"`
	CreditExpenses string `json:"creditExpenses"`
	DebitExpenses  string `json:"debitExpenses"`
}

// StatementEntry is the API model for one statement row.
type StatementEntry struct {
	Date           string `json:"date" doc:"Entry date, YYYY-MM-DD"`
	VoucherNo      int64  `json:"voucherNo"`
	Side           string `json:"side" enum:"credit,debit" doc:"Which leg named the account"`
	CounterAccount string `json:"counterAccount"`
	Amount         string `json:"amount"`
	Expenses       string `json:"expenses"`
	Narration      string `json:"narration"`
}

// TrialBalanceRow is the API model for one trial balance row.
type TrialBalanceRow struct {
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Balance   string `json:"balance" doc:"Computed running balance"`
}

func dayBookRowToAPI(row ledger.DayBookRow) DayBookRow {
	return DayBookRow{
		Date:         row.Date.Format(dateLayout),
		VoucherNo:    row.VoucherNo,
		ReceivedFrom: row.ReceivedFrom,
		PaidTo:       row.PaidTo,
		Amount:       row.Amount.String(),
		Expenses:     row.Expenses.String(),
		Narration:    row.Narration,
	}
}

func statementEntryToAPI(entry ledger.StatementEntry) StatementEntry {
	return StatementEntry{
		Date:           entry.Date.Format(dateLayout),
		VoucherNo:      entry.VoucherNo,
		Side:           string(entry.Side),
		CounterAccount: entry.CounterAccount,
		Amount:         entry.Amount.String(),
		Expenses:       entry.Expenses.String(),
		Narration:      entry.Narration,
	}
}

func trialBalanceRowsToAPI(rows []ledger.TrialBalanceRow) []TrialBalanceRow {
	out := make([]TrialBalanceRow, len(rows))
	for i, row := range rows {
		out[i] = TrialBalanceRow{
			AccountID: row.AccountID.String(),
			Name:      row.Name,
			Balance:   row.Balance.String(),
		}
	}
	return out
}

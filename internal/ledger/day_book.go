package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayBookRow is one transaction pair flattened for the day book: the credit
// leg is the canonical side, so its amount, expenses, and narration carry
// the row.
type DayBookRow struct {
	Date         time.Time
	VoucherNo    int64
	ReceivedFrom string
	PaidTo       string
	Amount       decimal.Decimal
	Expenses     decimal.Decimal
	Narration    string
}

// DayBookTotals aggregates the day book. TotalDebit equals TotalCredit by
// construction, both being sums over the credit leg; likewise the expense
// totals.
type DayBookTotals struct {
	TotalEntries   int
	TotalCredit    decimal.Decimal
	TotalDebit     decimal.Decimal
	CreditExpenses decimal.Decimal
	DebitExpenses  decimal.Decimal
}

// DayBook is the combined per-voucher view of the whole ledger.
type DayBook struct {
	Rows   []DayBookRow
	Totals DayBookTotals
}

// BuildDayBook produces one row per transaction in snapshot order.
func BuildDayBook(txns []Transaction) DayBook {
	rows := make([]DayBookRow, len(txns))
	var amountTotal, expenseTotal decimal.Decimal
	for i, t := range txns {
		rows[i] = DayBookRow{
			Date:         t.Date,
			VoucherNo:    t.VoucherNo,
			ReceivedFrom: t.Credit.Account,
			PaidTo:       t.Debit.Account,
			Amount:       t.Credit.Amount,
			Expenses:     t.Credit.Expenses,
			Narration:    t.Credit.Narration,
		}
		amountTotal = amountTotal.Add(t.Credit.Amount)
		expenseTotal = expenseTotal.Add(t.Credit.Expenses)
	}
	return DayBook{
		Rows: rows,
		Totals: DayBookTotals{
			TotalEntries:   len(txns),
			TotalCredit:    amountTotal,
			TotalDebit:     amountTotal,
			CreditExpenses: expenseTotal,
			DebitExpenses:  expenseTotal,
		},
	}
}

// Package ledger holds the domain model and the balance computations for the
// double-entry day book. Everything here is pure: functions take a snapshot of
// accounts and transactions and derive views from it, with no I/O.
package ledger

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Category determines the sign convention for an account's balance.
// Debtors grow when debited, creditors grow when credited.
type Category string

const (
	CategoryCreditor Category = "creditor"
	CategoryDebtor   Category = "debtor"
)

// ParseCategory validates a wire-format category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryCreditor, CategoryDebtor:
		return Category(s), nil
	}
	return "", &ValidationError{Msg: fmt.Sprintf("unknown category %q", s)}
}

// Group is a descriptive tag on an account. It never participates in
// balance math.
type Group string

const (
	GroupCashInHand  Group = "cash-in-hand"
	GroupLiabilities Group = "liabilities"
	GroupAssets      Group = "assets"
	GroupBank        Group = "bank"
)

// ParseGroup validates a wire-format group string.
func ParseGroup(s string) (Group, error) {
	switch Group(s) {
	case GroupCashInHand, GroupLiabilities, GroupAssets, GroupBank:
		return Group(s), nil
	}
	return "", &ValidationError{Msg: fmt.Sprintf("unknown group %q", s)}
}

// Account is a ledger account with its opening balance.
type Account struct {
	ID            uuid.UUID
	Name          string
	Category      Category
	Group         Group
	OpeningAmount decimal.Decimal
	CreatedAt     time.Time
}

// EntryLeg is one half of a transaction. Account is a soft reference by
// name, not a foreign key: renaming or deleting an account does not touch
// historic legs, and matching is by exact name equality.
type EntryLeg struct {
	Account   string
	Amount    decimal.Decimal
	Expenses  decimal.Decimal
	Narration string
}

// Transaction is a paired credit/debit entry sharing a date and voucher
// number. The model does not require the debit amount to balance the credit
// amount net of expenses; the operator may enter any figure.
type Transaction struct {
	ID        uuid.UUID
	Date      time.Time
	VoucherNo int64
	Credit    EntryLeg
	Debit     EntryLeg
	CreatedAt time.Time
}

// NextVoucherNumber returns max(voucherNo)+1 over the given snapshot, or 1
// when the ledger is empty. Gaps left by deletions are never reused except
// that the next number always exceeds the current maximum.
func NextVoucherNumber(txns []Transaction) int64 {
	var max int64
	for _, t := range txns {
		if t.VoucherNo > max {
			max = t.VoucherNo
		}
	}
	return max + 1
}

// AccountTransactions filters to transactions naming the account on either
// leg.
func AccountTransactions(txns []Transaction, accountName string) []Transaction {
	var matched []Transaction
	for _, t := range txns {
		if t.Credit.Account == accountName || t.Debit.Account == accountName {
			matched = append(matched, t)
		}
	}
	return matched
}

// CreditDebitTotals sums the credit leg amounts and debit leg amounts
// attributed to the named account.
func CreditDebitTotals(txns []Transaction, accountName string) (creditTotal, debitTotal decimal.Decimal) {
	for _, t := range txns {
		if t.Credit.Account == accountName {
			creditTotal = creditTotal.Add(t.Credit.Amount)
		}
		if t.Debit.Account == accountName {
			debitTotal = debitTotal.Add(t.Debit.Amount)
		}
	}
	return creditTotal, debitTotal
}

// Balance applies the category sign convention: a debtor owes more when
// debited, a creditor is owed more when credited.
func Balance(account Account, creditTotal, debitTotal decimal.Decimal) decimal.Decimal {
	if account.Category == CategoryDebtor {
		return account.OpeningAmount.Add(debitTotal).Sub(creditTotal)
	}
	return account.OpeningAmount.Add(creditTotal).Sub(debitTotal)
}

// ExpenseTotals sums expenses across all transactions, per leg, independent
// of account.
func ExpenseTotals(txns []Transaction) (creditExpenses, debitExpenses decimal.Decimal) {
	for _, t := range txns {
		creditExpenses = creditExpenses.Add(t.Credit.Expenses)
		debitExpenses = debitExpenses.Add(t.Debit.Expenses)
	}
	return creditExpenses, debitExpenses
}

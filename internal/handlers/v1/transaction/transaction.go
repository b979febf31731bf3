package transaction

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// dateLayout is the wire format for ledger dates.
const dateLayout = "2006-01-02"

// actionProcessor is the interface for submitting mutations to the
// operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// EntryLeg is the API model for one half of a transaction.
type EntryLeg struct {
	Account   string `json:"account" doc:"Account name, 'N/A' when left blank"`
	Amount    string `json:"amount" doc:"Decimal amount"`
	Expenses  string `json:"expenses" doc:"Decimal expenses, '0' when left blank"`
	Narration string `json:"narration" doc:"Free-text note, 'N/A' when left blank"`
}

// Transaction is the API response model for a transaction pair.
type Transaction struct {
	ID        string   `json:"id" doc:"Transaction UUID"`
	Date      string   `json:"date" doc:"Entry date, YYYY-MM-DD"`
	VoucherNo int64    `json:"voucherNo" doc:"Sequential voucher number"`
	Credit    EntryLeg `json:"creditEntry" doc:"Money received"`
	Debit     EntryLeg `json:"debitEntry" doc:"Money paid"`
}

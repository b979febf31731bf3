package account

// Account is the API response model for an account.
type Account struct {
	ID            string `json:"id" doc:"Account UUID"`
	Name          string `json:"name" doc:"Account name, unique case-insensitively"`
	Category      string `json:"category" doc:"creditor or debtor"`
	Group         string `json:"group" doc:"cash-in-hand, liabilities, assets, or bank"`
	OpeningAmount string `json:"openingAmount" doc:"Decimal opening balance"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

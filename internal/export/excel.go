// Package export renders ledger reports as xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

const dateFormat = "2006-01-02"

// ContentTypeXLSX is the MIME type for xlsx downloads.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DayBookWorkbook renders the day book as a single-sheet workbook: one row
// per voucher followed by a totals row.
func DayBookWorkbook(dayBook ledger.DayBook) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Day Book"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Voucher No", "Received From", "Paid To", "Amount", "Expenses", "Narration"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for idx, r := range dayBook.Rows {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Date.Format(dateFormat))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.VoucherNo)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.ReceivedFrom)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.PaidTo)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Amount.String())
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Expenses.String())
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.Narration)
	}

	totalsRow := len(dayBook.Rows) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow), "Totals")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalsRow), dayBook.Totals.TotalEntries)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalsRow), dayBook.Totals.TotalCredit.String())
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalsRow), dayBook.Totals.CreditExpenses.String())

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "C", "D", 22)
	f.SetColWidth(sheetName, "G", "G", 30)

	return f, nil
}

// StatementWorkbook renders one account's statement: opening balance, one
// row per matched voucher, then totals and the closing balance.
func StatementWorkbook(statement ledger.Statement) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Statement"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", "Account")
	f.SetCellValue(sheetName, "B1", statement.Account)
	f.SetCellValue(sheetName, "A2", "Category")
	f.SetCellValue(sheetName, "B2", string(statement.Category))
	f.SetCellValue(sheetName, "A3", "Opening Balance")
	f.SetCellValue(sheetName, "B3", statement.OpeningBalance.String())

	headers := []string{"Date", "Voucher No", "Side", "Counter Account", "Amount", "Expenses", "Narration"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c5", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for idx, e := range statement.Entries {
		row := idx + 6
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.Date.Format(dateFormat))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.VoucherNo)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), string(e.Side))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.CounterAccount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.Amount.String())
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), e.Expenses.String())
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), e.Narration)
	}

	footerRow := len(statement.Entries) + 7
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", footerRow), "Total Credit")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", footerRow), statement.TotalCredit.String())
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", footerRow+1), "Total Debit")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", footerRow+1), statement.TotalDebit.String())
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", footerRow+2), "Closing Balance")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", footerRow+2), statement.ClosingBalance.String())

	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "D", "D", 22)
	f.SetColWidth(sheetName, "G", "G", 30)

	return f, nil
}

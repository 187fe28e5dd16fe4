package expense

import (
	"github.com/gocarina/gocsv"
)

// csvRow mirrors the column layout of the CSV ledger kept by earlier versions
// of the app, so exports stay compatible with existing spreadsheets.
type csvRow struct {
	Date            string  `csv:"Date"`
	Category        string  `csv:"Category"`
	Amount          float64 `csv:"Amount"`
	Note            string  `csv:"Note"`
	PercentOfSalary float64 `csv:"% of Salary Spent"`
}

func renderCSV(expenses []Expense) (string, error) {
	rows := make([]csvRow, 0, len(expenses))
	for _, expense := range expenses {
		rows = append(rows, csvRow{
			Date:            expense.Date,
			Category:        expense.Category,
			Amount:          expense.Amount,
			Note:            expense.Note,
			PercentOfSalary: expense.PercentOfSalary,
		})
	}
	return gocsv.MarshalString(&rows)
}

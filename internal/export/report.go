// Package export renders a static HTML report from a filtered
// transaction view and the account list. Excel and most spreadsheet
// tools open the table markup directly.
package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/codezxmax/finanzas/internal/domain"
)

// AccountRow is a display-ready account line.
type AccountRow struct {
	Name    string
	Balance string
}

// TransactionRow is a display-ready transaction line.
type TransactionRow struct {
	Date     string
	Account  string
	Category string
	Type     string
	Amount   string
}

// Report holds everything the template needs.
type Report struct {
	Accounts     []AccountRow
	Transactions []TransactionRow
}

var reportTemplate = template.Must(template.New("report").Parse(`<html><head><meta charset="utf-8"></head><body>
<h2>Resumen de Cuentas</h2>
<table border="1" cellspacing="0" cellpadding="5">
<tr><th>Cuenta</th><th>Saldo</th></tr>
{{range .Accounts}}<tr><td>{{.Name}}</td><td>{{.Balance}}</td></tr>
{{end}}</table>
<h2>Transacciones</h2>
<table border="1" cellspacing="0" cellpadding="5">
<tr><th>Fecha</th><th>Cuenta</th><th>Categoría</th><th>Tipo</th><th>Monto</th></tr>
{{range .Transactions}}<tr><td>{{.Date}}</td><td>{{.Account}}</td><td>{{.Category}}</td><td>{{.Type}}</td><td>{{.Amount}}</td></tr>
{{end}}</table>
</body></html>
`))

// BuildReport converts the account list and a filtered transaction
// view into display rows. Transactions referencing a deleted account
// show "N/A" for the account name.
func BuildReport(accounts []*domain.Account, txs []*domain.Transaction) Report {
	names := make(map[string]string, len(accounts))
	accountRows := make([]AccountRow, len(accounts))
	for i, a := range accounts {
		names[a.ID] = a.Name
		accountRows[i] = AccountRow{
			Name:    a.Name,
			Balance: domain.FormatCurrency(a.Balance),
		}
	}

	txRows := make([]TransactionRow, len(txs))
	for i, t := range txs {
		name, ok := names[t.AccountID]
		if !ok {
			name = "N/A"
		}
		txRows[i] = TransactionRow{
			Date:     t.Date,
			Account:  name,
			Category: t.Category,
			Type:     typeDisplay(t.Type),
			Amount:   domain.FormatSignedCurrency(t.Type, t.Amount),
		}
	}

	return Report{Accounts: accountRows, Transactions: txRows}
}

// Render writes the HTML report.
func Render(w io.Writer, r Report) error {
	if err := reportTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func typeDisplay(t domain.TransactionType) string {
	if t == domain.TypeIncome {
		return "Ingreso"
	}
	return "Gasto"
}

package views

import (
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account, currency string) error {
	headers := []string{"Account", "Agency", "Holder", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balanceWithCurrency := fmt.Sprintf("%s %s", acc.Balance(), currency)

		// Negative balances in red, everything else green
		coloredBalance := pterm.Green(balanceWithCurrency)
		if acc.Balance().IsNegative() {
			coloredBalance = pterm.Red(balanceWithCurrency)
		}

		tableData = append(tableData, []string{
			acc.Number(),
			pterm.Gray(acc.AgencyNumber),
			acc.Holder.FullName(),
			coloredBalance,
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}

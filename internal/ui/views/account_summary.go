package views

import (
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/pterm/pterm"
)

func RenderAccountSummary(acc *model.Account, currency string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account"), acc.Number()},
		{pterm.Blue("Agency"), acc.AgencyNumber},
		{pterm.Blue("Holder"), acc.Holder.FullName()},
		{pterm.Blue("CPF"), model.FormatIdentifier(acc.Holder.Identifier())},
		{pterm.Blue("Balance"), fmt.Sprintf("%s %s", acc.Balance(), currency)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(acc *model.Account) error {
	if err := pterm.DefaultTable.WithData(pterm.TableData{
		{pterm.Blue("Agency"), acc.AgencyNumber},
		{pterm.Blue("Account"), acc.Number()},
	}).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account opened successfully!\n")

	return nil
}

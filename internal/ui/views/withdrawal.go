package views

import (
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/pterm/pterm"
)

// RenderOptions prints the banknote option lines as they come from Money.
func RenderOptions(amount string, options []string) {
	pterm.Println()
	ui.PrintL2Title("Banknote options for %s", amount)

	if len(options) == 0 {
		pterm.Warning.Println("No banknote combination available for this amount")
		return
	}

	for _, line := range options {
		pterm.Println(line)
	}
}

func RenderBreakdown(amount string, b model.Breakdown) error {
	tableData := pterm.TableData{{"Note", "Count", "Subtotal"}}

	for _, nc := range b {
		subtotal := model.MustMoney(nc.Count.Mul(model.MustMoney(nc.Note).Value()))
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", nc.Note),
			nc.Count.String(),
			subtotal.String(),
		})
	}

	pterm.DefaultSection.Printf("Breakdown of %s", amount)
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render()
}

func RenderWithdrawal(amount, balance model.Money, currency string, options []string) {
	pterm.Success.Printf("Withdrew %s %s\n", amount, currency)
	pterm.Info.Printf("New balance: %s %s\n", balance, currency)
	RenderOptions(amount.String(), options)
}

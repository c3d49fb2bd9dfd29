package money

import (
	"github.com/hance08/teller/internal/app"
	"github.com/spf13/cobra"
)

func NewMoneyCmd(a *app.App) *cobra.Command {
	moneyCmd := &cobra.Command{
		Use:   "money",
		Short: "Format amounts, do arithmetic and split them into banknotes.",
		Long: `Format amounts, do arithmetic and split them into banknotes.

Amounts are rounded up to two decimal places.`,
	}

	moneyCmd.AddCommand(NewFormatCmd(a))
	moneyCmd.AddCommand(NewOptionsCmd(a))
	moneyCmd.AddCommand(NewBreakdownCmd(a))
	moneyCmd.AddCommand(NewCalcCmd(a))

	return moneyCmd
}

package money

import (
	"github.com/hance08/teller/internal/app"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewFormatCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "format <amount>",
		Short:   "Print an amount with thousands separators and two decimals",
		Example: `  teller money format 1234567.891`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.Service.Cash.Format(args[0])
			if err != nil {
				return err
			}
			pterm.Println(out)
			return nil
		},
	}
}

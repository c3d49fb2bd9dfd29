package money

import (
	"github.com/hance08/teller/internal/app"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewCalcCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <a> <add|sub|mul> <b>",
		Short: "Add, subtract or multiply two amounts",
		Example: `  teller money calc 10.005 add 0.001
  teller money calc 1500 mul 1.5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Service.Cash.Calculate(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			pterm.Println(result.String())
			return nil
		},
	}
}

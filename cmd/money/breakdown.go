package money

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewBreakdownCmd(a *app.App) *cobra.Command {
	var from int64

	cmd := &cobra.Command{
		Use:   "breakdown <amount>",
		Short: "Show one banknote decomposition as a table",
		Example: `  teller money breakdown 186
  teller money breakdown 186 --from 50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Service.Cash.Breakdown(args[0], from)
			if err != nil {
				return err
			}

			formatted, err := a.Service.Cash.Format(args[0])
			if err != nil {
				return err
			}
			return views.RenderBreakdown(formatted, b)
		},
	}

	cmd.Flags().Int64VarP(&from, "from", "f", 0, "Largest banknote to use (2, 5, 10, 20, 50 or 100)")

	return cmd
}

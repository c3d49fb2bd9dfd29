package money

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type optionsRunner struct {
	app   *app.App
	limit int
}

func NewOptionsCmd(a *app.App) *cobra.Command {
	runner := &optionsRunner{app: a}

	cmd := &cobra.Command{
		Use:   "options <amount>",
		Short: "List banknote combinations that pay an amount",
		Long: `List banknote combinations that pay an amount.

Each option starts from a different banknote, largest first.`,
		Example: `  teller money options 186
  teller money options 1000 --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(args[0])
		},
	}

	cmd.Flags().IntVarP(&runner.limit, "limit", "l", 0, "Maximum number of options (default from config)")

	return cmd
}

func (r *optionsRunner) Run(amount string) error {
	opts, err := r.app.Service.Cash.Options(amount, r.limit)
	if err != nil {
		return err
	}

	formatted, err := r.app.Service.Cash.Format(amount)
	if err != nil {
		return err
	}

	views.RenderOptions(formatted, opts)
	return nil
}

package account

import (
	"github.com/hance08/teller/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Open bank accounts.",
		Long: `Open bank accounts.

Accounts live in memory for the duration of the command. Use
'teller session' to work with several accounts at once.`,
	}

	accountCmd.AddCommand(NewOpenCmd(a))

	return accountCmd
}

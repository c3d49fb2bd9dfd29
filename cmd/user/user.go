package user

import (
	"github.com/hance08/teller/internal/app"
	"github.com/spf13/cobra"
)

func NewUserCmd(a *app.App) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Validate account holders.",
	}

	userCmd.AddCommand(NewCheckCmd(a))

	return userCmd
}

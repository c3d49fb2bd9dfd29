package user

import (
	"strings"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	Name       string
	Identifier string
	Age        int
}

type checkRunner struct {
	app   *app.App
	flags *checkFlags
	cmd   *cobra.Command
}

func NewCheckCmd(a *app.App) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a user and show the formatted CPF",
		Long: `Validate a user and show the formatted CPF.

Missing fields are asked interactively.`,
		Example: `  # Interactive mode
  teller user check

  # Quick mode with flags
  teller user check -n "Maria Silva" -i 12345678901 -a 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &checkRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Full name")
	cmd.Flags().StringVarP(&flags.Identifier, "cpf", "i", "", "CPF, 11 digits")
	cmd.Flags().IntVarP(&flags.Age, "age", "a", -1, "Age in years")

	return cmd
}

func (r *checkRunner) Run() error {
	in, err := prompts.PromptUser(prompts.UserInput{
		FullName:   r.flags.Name,
		Identifier: r.flags.Identifier,
		Age:        r.flags.Age,
	}, false)
	if err != nil {
		return err
	}

	// Flag values skip the prompt validators
	if err := validation.ValidateUser(in.FullName, in.Identifier, in.Age); err != nil {
		return err
	}

	u, err := model.NewUser(strings.TrimSpace(in.FullName), strings.TrimSpace(in.Identifier), in.Age, "")
	if err != nil {
		return err
	}

	if err := views.RenderUserSummary(u); err != nil {
		return err
	}
	pterm.Success.Println("User is valid")
	return nil
}

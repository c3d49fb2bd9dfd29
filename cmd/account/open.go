package account

import (
	"strings"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

type openFlags struct {
	Name       string
	Identifier string
	Age        int
	Agency     string
	Balance    string
}

type openRunner struct {
	app   *app.App
	flags *openFlags
	cmd   *cobra.Command
}

func NewOpenCmd(a *app.App) *cobra.Command {
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account",
		Long: `Open a new account and print its summary.

The password is always asked interactively. Without flags every
field is asked, including agency and initial balance.`,
		Example: `  # Interactive mode
  teller account open

  # Quick mode with flags
  teller account open -n "Maria Silva" -i 12345678901 -a 30 -b 1500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &openRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Holder full name")
	cmd.Flags().StringVarP(&flags.Identifier, "cpf", "i", "", "Holder CPF, 11 digits")
	cmd.Flags().IntVarP(&flags.Age, "age", "a", -1, "Holder age")
	cmd.Flags().StringVarP(&flags.Agency, "agency", "g", "", "Agency number (default from config)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Initial balance, e.g. 1500 or 99.90")

	return cmd
}

func (r *openRunner) Run() error {
	hasFlags := r.cmd.Flags().Changed("name") ||
		r.cmd.Flags().Changed("cpf") ||
		r.cmd.Flags().Changed("age")

	req := OpenRequest{
		User: prompts.UserInput{
			FullName:   r.flags.Name,
			Identifier: r.flags.Identifier,
			Age:        r.flags.Age,
		},
		Agency:  r.flags.Agency,
		Balance: r.flags.Balance,
	}

	acc, err := Open(r.app.Service, req, !hasFlags)
	if err != nil {
		return err
	}

	if err := views.RenderAccountSummary(acc, r.app.Service.Config.Currency); err != nil {
		return err
	}
	return views.RenderAccountSuccess(acc)
}

// OpenRequest holds whatever is already known about the account to open.
type OpenRequest struct {
	User    prompts.UserInput
	Agency  string
	Balance string
}

// Open fills the missing holder fields and password through prompts and
// opens the account in svc. With askAll, agency and initial balance are
// asked as well when not given.
func Open(svc *service.Service, req OpenRequest, askAll bool) (*model.Account, error) {
	in, err := prompts.PromptUser(req.User, true)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateUser(in.FullName, in.Identifier, in.Age); err != nil {
		return nil, err
	}

	agency := req.Agency
	if agency == "" && askAll {
		agency, err = prompts.PromptAgency(svc.Config.Agency)
		if err != nil {
			return nil, err
		}
	}
	if err := validation.ValidateAgency(agency); err != nil {
		return nil, err
	}

	balance := req.Balance
	if balance == "" && askAll {
		balance, err = prompts.PromptInitialBalance()
		if err != nil {
			return nil, err
		}
	}
	if balance == "" {
		balance = "0"
	}

	holder, err := model.NewUser(
		strings.TrimSpace(in.FullName),
		strings.TrimSpace(in.Identifier),
		in.Age,
		in.Password,
	)
	if err != nil {
		return nil, err
	}

	return svc.Account.OpenAccount(holder, strings.TrimSpace(agency), balance)
}

package cmd

import (
	"fmt"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type sessionRunner struct {
	app *app.App
}

func NewSessionCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Run an interactive teller session",
		Long: `Run an interactive teller session over one in-memory bank.

Open accounts, deposit, withdraw and list accounts until you quit.
Nothing is kept after the session ends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{app: a}
			return runner.Run()
		},
	}
}

func (r *sessionRunner) Run() error {
	ui.PrintL1Title("teller session")

	for {
		hasAccounts := len(r.app.Service.Account.GetAllAccounts()) > 0

		action, err := prompts.PromptSessionAction(hasAccounts)
		if err != nil {
			return err
		}
		if action == prompts.ActionQuit {
			pterm.Info.Println("Session closed")
			return nil
		}

		if err := r.dispatch(action); err != nil {
			if errhandler.IsInterrupt(err) {
				return err
			}
			logger.Error("session action failed", err, map[string]any{"action": action})
			// Domain errors don't end the session
			errhandler.HandleError(err)
		}
		pterm.Println()
	}
}

func (r *sessionRunner) dispatch(action string) error {
	switch action {
	case prompts.ActionOpen:
		return r.open()
	case prompts.ActionDeposit:
		return r.deposit()
	case prompts.ActionWithdraw:
		return r.withdraw()
	case prompts.ActionShow:
		return r.show()
	case prompts.ActionList:
		return views.NewAccountListView().Render(r.app.Service.Account.GetAllAccounts(), r.currency())
	}
	return nil
}

func (r *sessionRunner) open() error {
	req := account.OpenRequest{User: prompts.UserInput{Age: -1}}

	acc, err := account.Open(r.app.Service, req, true)
	if err != nil {
		return err
	}
	return views.RenderAccountSuccess(acc)
}

func (r *sessionRunner) deposit() error {
	acc, err := r.pickAccount()
	if err != nil {
		return err
	}

	amount, err := prompts.PromptDeposit()
	if err != nil {
		return err
	}

	balance, err := r.app.Service.Account.Deposit(acc.Number(), amount)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Deposited %s %s\n", model.MustMoney(amount), r.currency())
	pterm.Info.Printf("New balance: %s %s\n", balance, r.currency())
	return nil
}

func (r *sessionRunner) withdraw() error {
	acc, err := r.pickAccount()
	if err != nil {
		return err
	}

	amount, err := prompts.PromptWithdrawal()
	if err != nil {
		return err
	}

	ok, err := prompts.PromptConfirm(
		fmt.Sprintf("Withdraw %s %s from account %s?", model.MustMoney(amount), r.currency(), acc.Number()),
		true,
	)
	if err != nil {
		return err
	}
	if !ok {
		pterm.Info.Println("Withdrawal cancelled")
		return nil
	}

	w, err := r.app.Service.Account.Withdraw(acc.Number(), amount)
	if err != nil {
		return err
	}

	views.RenderWithdrawal(w.Amount, w.Balance, r.currency(), w.Options)
	return nil
}

func (r *sessionRunner) show() error {
	acc, err := r.pickAccount()
	if err != nil {
		return err
	}
	return views.RenderAccountSummary(acc, r.currency())
}

func (r *sessionRunner) pickAccount() (*model.Account, error) {
	return prompts.PromptAccount(r.app.Service.Account.GetAllAccounts())
}

func (r *sessionRunner) currency() string {
	return r.app.Service.Config.Currency
}

package prompts

const (
	ActionOpen     = "Open an account"
	ActionDeposit  = "Deposit"
	ActionWithdraw = "Withdraw"
	ActionShow     = "Show account"
	ActionList     = "List accounts"
	ActionQuit     = "Quit"
)

// SessionActions lists the menu entries; account operations only show up
// once an account exists.
func SessionActions(hasAccounts bool) []string {
	if !hasAccounts {
		return []string{ActionOpen, ActionQuit}
	}
	return []string{ActionOpen, ActionDeposit, ActionWithdraw, ActionShow, ActionList, ActionQuit}
}

// PromptSessionAction shows the session menu
func PromptSessionAction(hasAccounts bool) (string, error) {
	selection := ActionOpen
	if hasAccounts {
		selection = ActionWithdraw
	}

	return PromptSelect("What do you want to do?", SessionActions(hasAccounts), selection)
}

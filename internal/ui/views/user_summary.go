package views

import (
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/pterm/pterm"
)

func RenderUserSummary(u *model.User) error {
	ui.PrintL2Title("User")

	tableData := pterm.TableData{
		{pterm.Blue("Name"), u.FullName()},
		{pterm.Blue("CPF"), u.Identifier()},
		{pterm.Blue("Formatted"), u.FormattedIdentifier()},
		{pterm.Blue("Age"), fmt.Sprintf("%d", u.Age())},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

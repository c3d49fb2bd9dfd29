package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath         string
	AppDataDir         string
	Agency             string
	MaxOptions         int
	FirstAccountNumber int64
	Currency           string
	LogLevel           string
	Banknotes          []int64
}

func RenderSystemInfo(data SystemInfoItem) error {
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"AppData Directory", data.AppDataDir},
		{"Default Agency", data.Agency},
		{"Withdrawal Options", fmt.Sprintf("%d", data.MaxOptions)},
		{"First Account Number", fmt.Sprintf("%d", data.FirstAccountNumber)},
		{"Currency", data.Currency},
		{"Log Level", data.LogLevel},
		{"Banknotes", pterm.Green(fmt.Sprint(data.Banknotes))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

package cmd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the current configuration, config file path and banknotes in use.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:         configPath,
		AppDataDir:         getAppDataDirOrUnknown(),
		Agency:             cfg.Bank.Agency,
		MaxOptions:         cfg.Bank.MaxOptions,
		FirstAccountNumber: cfg.Bank.FirstAccountNumber,
		Currency:           cfg.Defaults.Currency,
		LogLevel:           cfg.Log.Level,
		Banknotes:          constants.Banknotes,
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

package cmd

import (
	"os"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/cmd/money"
	"github.com/hance08/teller/cmd/user"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// Filled in by PersistentPreRunE once flags are parsed
	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is a CLI bank teller: money, users, accounts and banknotes",
		Long: `teller is a CLI bank teller.

It formats money, validates account holders, opens accounts in an
in-memory bank and works out which banknotes pay a withdrawal.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Logged once the logger is configured
			envErr := config.LoadDotEnv()

			cfg, err := initConfig()
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}

			a, c, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			*application = *a
			cleanup = c

			if envErr != nil {
				logger.Warn("ignoring .env file", map[string]any{"error": envErr.Error()})
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")

	rootCmd.AddCommand(money.NewMoneyCmd(application))
	rootCmd.AddCommand(user.NewUserCmd(application))
	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(NewSessionCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

// initConfig loads --config when given. Otherwise it makes sure a default
// config.yaml exists in the app data dir and reads it from there.
func initConfig() (*config.Config, error) {
	if cfgFile == "" {
		if _, err := config.WriteDefault(); err != nil {
			// A read-only home still works with built-in defaults
			pterm.Warning.Printf("Could not create default config: %v\n", err)
		}
	}

	return config.Load(cfgFile)
}

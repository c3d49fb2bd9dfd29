package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Bank       BankConfig     `mapstructure:"bank"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type BankConfig struct {
	Agency             string `mapstructure:"agency"`
	MaxOptions         int    `mapstructure:"max_options"`
	FirstAccountNumber int64  `mapstructure:"first_account_number"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		Bank: BankConfig{
			Agency:             constants.DefaultAgency,
			MaxOptions:         constants.DefaultMaxOptions,
			FirstAccountNumber: 0,
		},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: "warn", Format: "text"},
	}
}

// LoadDotEnv copies a .env file in the working directory into the process
// environment without overriding variables already set. A missing file is
// not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load reads the config file at path, or config.yaml in the app data dir when
// path is empty. A missing default file is not an error. Environment
// variables prefixed with TELLER_ override file values; call LoadDotEnv first
// to take them from a .env file too.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		appDir, err := AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}
		v.AddConfigPath(appDir)
		v.SetConfigName(constants.ConfigName)
		v.SetConfigType(constants.ConfigType)
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := NewDefault()
	v.SetDefault("bank.agency", d.Bank.Agency)
	v.SetDefault("bank.max_options", d.Bank.MaxOptions)
	v.SetDefault("bank.first_account_number", d.Bank.FirstAccountNumber)
	v.SetDefault("defaults.currency", d.Defaults.Currency)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

func (c *Config) Validate() error {
	if c.Bank.MaxOptions < 1 {
		return fmt.Errorf("bank.max_options must be at least 1, got %d", c.Bank.MaxOptions)
	}
	if c.Bank.FirstAccountNumber < 0 || c.Bank.FirstAccountNumber > constants.MaxAccountNumber {
		return fmt.Errorf("bank.first_account_number must be between 0 and %d", constants.MaxAccountNumber)
	}
	return nil
}

// WriteDefault creates config.yaml with default values in the app data dir
// unless it already exists.
func WriteDefault() (string, error) {
	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, constants.ConfigName+"."+constants.ConfigType)
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	v := viper.New()
	setDefaults(v)
	if err := v.WriteConfigAs(configPath); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configPath, nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, constants.AppDirFallback), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

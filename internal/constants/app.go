package constants

const (
	MaxNameLen = 100
	MaxAge     = 150
)

const (
	AppName        = "teller"
	ConfigName     = "config"
	ConfigType     = "yaml"
	EnvPrefix      = "TELLER"
	AppDirFallback = ".teller"
)

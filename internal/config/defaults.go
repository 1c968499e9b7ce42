package config

import (
	"os"
	"path/filepath"
)

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults. Path fields
// are resolved lazily during normalize so Default itself stays pure.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultDataDir() string {
	dir, err := platformConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "cratedig")
	}
	return dir
}

func defaultLogDir() string {
	return filepath.Join(defaultDataDir(), "logs")
}

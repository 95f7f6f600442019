package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names for the durable medium.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

type Config interface {
	BasePath() string
	Backend() string
}

// LoadConfig resolves store configuration from a .daypack file or DAYPACK_*
// environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daypack.db")
	viper.SetDefault("backend", BackendDiskv)
	viper.SetConfigName(".daypack") // .yaml is implicit
	viper.SetEnvPrefix("DAYPACK")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYPACK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path, Driver: viper.GetString("backend")}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Driver string `json:"backend"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.Driver
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configType   = "toml"
	configDir    = ".scdc"
	envPrefix    = "SCDC"
	defaultStore = "store.toml"

	StorePathKey = "store.path"
	LogLevelKey  = "log.level"
)

type Config struct {
	StorePath string
	LogLevel  string
}

// Load reads ~/.scdc/config.toml when present and applies SCDC_* environment
// overrides. cfg is left populated so adapters can read their own keys.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(StorePathKey, filepath.Join(homeDir, configDir, defaultStore))
	cfg.SetDefault(LogLevelKey, "info")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	storePath := cfg.GetString(StorePathKey)
	if strings.TrimSpace(storePath) == "" {
		return Config{}, errors.New("store path is empty")
	}
	storePath, err = filepath.Abs(expandHome(storePath, homeDir))
	if err != nil {
		return Config{}, fmt.Errorf("resolve store path: %w", err)
	}
	cfg.Set(StorePathKey, storePath)

	return Config{
		StorePath: filepath.Clean(storePath),
		LogLevel:  cfg.GetString(LogLevelKey),
	}, nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

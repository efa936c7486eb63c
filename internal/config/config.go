// Package config resolves runtime settings from .addressit.yaml, ADDRESSIT_*
// environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/toolstack/addressit/internal/i18n"
)

const EnvPrefix = "ADDRESSIT"

type StorageConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
}

type NamespaceConfig struct {
	AppID      string `mapstructure:"app_id"`
	Version    string `mapstructure:"version"`
	ProfileKey string `mapstructure:"profile_key"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type UIConfig struct {
	ReportWidth  int `mapstructure:"report_width"`
	ReportHeight int `mapstructure:"report_height"`
}

type Config struct {
	DataDir      string          `mapstructure:"data_dir"`
	Storage      StorageConfig   `mapstructure:"storage"`
	Namespace    NamespaceConfig `mapstructure:"namespace"`
	Locale       string          `mapstructure:"locale"`
	ImportDir    string          `mapstructure:"import_dir"`
	WatchImports bool            `mapstructure:"watch_imports"`
	ExportDir    string          `mapstructure:"export_dir"`
	UI           UIConfig        `mapstructure:"ui"`
	Log          LogConfig       `mapstructure:"log"`
}

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// SetDefaults registers every key so AutomaticEnv can resolve nested keys
// such as ADDRESSIT_STORAGE_DRIVER.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.redis_addr", "127.0.0.1:6379")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("namespace.app_id", "addressit")
	v.SetDefault("namespace.version", "v1")
	v.SetDefault("namespace.profile_key", "toolstack.profile.v1")
	v.SetDefault("locale", "")
	v.SetDefault("import_dir", "")
	v.SetDefault("watch_imports", true)
	v.SetDefault("export_dir", ".")
	v.SetDefault("ui.report_width", 96)
	v.SetDefault("ui.report_height", 24)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
}

// BindEnv wires ADDRESSIT_* variables, mapping dots in keys to underscores.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads v into a Config, filling paths that derive from data_dir and
// the locale from the environment when they are not set.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		return Config{}, fmt.Errorf("config: unknown storage driver %q", cfg.Storage.Driver)
	}
	if strings.TrimSpace(cfg.Namespace.AppID) == "" || strings.TrimSpace(cfg.Namespace.Version) == "" {
		return Config{}, fmt.Errorf("config: namespace app_id and version are required")
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(cfg.DataDir, "addressit.db")
	}
	if cfg.ImportDir == "" {
		cfg.ImportDir = filepath.Join(cfg.DataDir, "inbox")
	}
	if strings.TrimSpace(cfg.ExportDir) == "" {
		cfg.ExportDir = "."
	}
	if cfg.UI.ReportWidth <= 0 || cfg.UI.ReportHeight <= 0 {
		return Config{}, fmt.Errorf("config: ui report size must be positive")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.DataDir, "addressit.log")
	}
	if strings.TrimSpace(cfg.Locale) == "" {
		cfg.Locale = i18n.EnvLocale()
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".addressit"
	}
	return filepath.Join(home, ".addressit")
}

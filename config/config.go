package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Chart     ChartConfig     `mapstructure:"chart"`
	Export    ExportConfig    `mapstructure:"export"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// DiscoveryConfig.Limit caps how many files a year-only report reads. 0 means all of them.
type DiscoveryConfig struct {
	Limit int `mapstructure:"limit"`
}

type ChartConfig struct {
	Color bool `mapstructure:"color"`
}

// ExportConfig.ExcelDir enables workbook export when not empty.
type ExportConfig struct {
	ExcelDir string `mapstructure:"excel_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "weatherman")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "warn")
	v.SetDefault("discovery.limit", 0)
	v.SetDefault("chart.color", true)
	v.SetDefault("export.excel_dir", "")
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/weatherman/")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if level := os.Getenv("WEATHERMAN_LOG_LEVEL"); level != "" {
		v.Set("app.log_level", level)
	}

	if env := os.Getenv("WEATHERMAN_ENV"); env != "" {
		v.Set("app.env", env)
	}

	if limit := os.Getenv("WEATHERMAN_DISCOVERY_LIMIT"); limit != "" {
		n, err := strconv.Atoi(strings.TrimSpace(limit))
		if err != nil {
			return nil, fmt.Errorf("invalid WEATHERMAN_DISCOVERY_LIMIT %q: %w", limit, err)
		}
		v.Set("discovery.limit", n)
	}

	if color := os.Getenv("WEATHERMAN_COLOR"); color != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(color))
		if err != nil {
			return nil, fmt.Errorf("invalid WEATHERMAN_COLOR %q: %w", color, err)
		}
		v.Set("chart.color", b)
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		v.Set("chart.color", false)
	}

	if dir := os.Getenv("WEATHERMAN_EXPORT_DIR"); dir != "" {
		v.Set("export.excel_dir", dir)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Discovery.Limit < 0 {
		return fmt.Errorf("discovery limit cannot be negative")
	}

	if cfg.Export.ExcelDir != "" {
		info, err := os.Stat(cfg.Export.ExcelDir)
		if err != nil {
			return fmt.Errorf("export directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("export directory %s is not a directory", cfg.Export.ExcelDir)
		}
	}

	return nil
}

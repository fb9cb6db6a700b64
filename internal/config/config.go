package config

import (
	"fmt"
	"os"
	"time"

	"github.com/yukimo/studytrack.git/pkg/validator"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig     `mapstructure:"api" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	UI      UIConfig      `mapstructure:"ui"`
	Env     string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type StorageConfig struct {
	DataDir string `mapstructure:"data_dir" validate:"required"`
	File    string `mapstructure:"file" validate:"required"`
}

type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("api.base_url", "STUDYTRACK_API_BASE"); err != nil {
		return nil, fmt.Errorf("failed to bind STUDYTRACK_API_BASE: %w", err)
	}
	if err := v.BindEnv("storage.data_dir", "STUDYTRACK_DATA_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind STUDYTRACK_DATA_DIR: %w", err)
	}
	if err := v.BindEnv("ui.theme", "STUDYTRACK_THEME"); err != nil {
		return nil, fmt.Errorf("failed to bind STUDYTRACK_THEME: %w", err)
	}
	if err := v.BindEnv("env", "STUDYTRACK_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind STUDYTRACK_ENV: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

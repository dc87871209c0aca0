package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Workers  int            `mapstructure:"workers" validate:"min=0"`
	Services ServicesConfig `mapstructure:"services"`
}

type ServicesConfig struct {
	GeocodingURL   string `mapstructure:"geocoding_url" validate:"required,url"`
	WeatherURL     string `mapstructure:"weather_url" validate:"required,url"`
	FXURL          string `mapstructure:"fx_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
}

// Timeout is the per-request timeout shared by all three lookup services.
func (s ServicesConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/enricher")
	}

	v.SetDefault("workers", 0)
	v.SetDefault("services.geocoding_url", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("services.weather_url", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("services.fx_url", "https://api.exchangerate.host/convert")
	v.SetDefault("services.timeout_seconds", 10)

	// Service URLs can be redirected through environment variables, so that
	// operators and tests can point the enricher at substitute endpoints.
	if err := v.BindEnv("services.geocoding_url", "ENRICHER_GEOCODING_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind ENRICHER_GEOCODING_URL environment variable: %w", err)
	}
	if err := v.BindEnv("services.weather_url", "ENRICHER_WEATHER_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind ENRICHER_WEATHER_URL environment variable: %w", err)
	}
	if err := v.BindEnv("services.fx_url", "ENRICHER_FX_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind ENRICHER_FX_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

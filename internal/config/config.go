package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	DBAdminSource string `mapstructure:"DB_ADMIN_SOURCE"`
	DBName        string `mapstructure:"DB_NAME"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`

	GoogleMapsAPIKey string  `mapstructure:"GOOGLE_MAPS_API_KEY"`
	MapCenterLat     float64 `mapstructure:"MAP_CENTER_LAT"`
	MapCenterLon     float64 `mapstructure:"MAP_CENTER_LON"`
	MapDefaultZoom   int     `mapstructure:"MAP_DEFAULT_ZOOM"`
	MapFocusZoom     int     `mapstructure:"MAP_FOCUS_ZOOM"`
	MapDefaultLimit  int     `mapstructure:"MAP_DEFAULT_LIMIT"`
	MapMaxLimit      int     `mapstructure:"MAP_MAX_LIMIT"`

	OperatorPassword string        `mapstructure:"OPERATOR_PASSWORD"`
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	TokenTTL         time.Duration `mapstructure:"TOKEN_TTL"`

	MaxUploadMB int64 `mapstructure:"MAX_UPLOAD_MB"`
}

var defaults = map[string]any{
	"DB_SOURCE":           "",
	"DB_ADMIN_SOURCE":     "",
	"DB_NAME":             "clientes_db",
	"SERVER_ADDRESS":      "0.0.0.0:8080",
	"LOG_LEVEL":           "info",
	"LOG_PRETTY":          false,
	"GOOGLE_MAPS_API_KEY": "",
	"MAP_CENTER_LAT":      -3.7489894,
	"MAP_CENTER_LON":      -73.2570029,
	"MAP_DEFAULT_ZOOM":    11,
	"MAP_FOCUS_ZOOM":      15,
	"MAP_DEFAULT_LIMIT":   50,
	"MAP_MAX_LIMIT":       100,
	"OPERATOR_PASSWORD":   "",
	"JWT_SECRET":          "",
	"TOKEN_TTL":           "12h",
	"MAX_UPLOAD_MB":       20,
}

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
// A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unmarshal: %w", err)
	}

	err = config.Validate()
	return config, err
}

// Validate checks values that would make the service misbehave at runtime.
func (c Config) Validate() error {
	if c.MapDefaultZoom <= 0 || c.MapFocusZoom <= 0 {
		return errors.New("config: map zoom levels must be positive")
	}
	if c.MapMaxLimit < 1 {
		return errors.New("config: MAP_MAX_LIMIT must be at least 1")
	}
	if c.MapDefaultLimit < 1 || c.MapDefaultLimit > c.MapMaxLimit {
		return fmt.Errorf("config: MAP_DEFAULT_LIMIT must be between 1 and %d", c.MapMaxLimit)
	}
	if c.MapCenterLat < -90 || c.MapCenterLat > 90 || c.MapCenterLon < -180 || c.MapCenterLon > 180 {
		return errors.New("config: map center out of range")
	}
	if c.OperatorPassword != "" && c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required when OPERATOR_PASSWORD is set")
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("config: MAX_UPLOAD_MB must be positive")
	}
	return nil
}

// AuthEnabled reports whether the API requires an operator token.
func (c Config) AuthEnabled() bool {
	return c.OperatorPassword != ""
}

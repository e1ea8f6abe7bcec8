package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Decoder DecoderConfig  `mapstructure:"decoder"`
	Sources []SourceConfig `mapstructure:"sources"`
	Web     WebConfig      `mapstructure:"web"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging LoggingConfig  `mapstructure:"logging"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig holds process identification.
type ServerConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// DecoderConfig holds defaults applied to every Decoder constructed by the
// service layer.
type DecoderConfig struct {
	RingBufferBytes   int  `mapstructure:"ring_buffer_bytes"`
	VerifyParity      bool `mapstructure:"verify_parity"`
}

// SourceKind names the transport a SourceConfig connects over.
type SourceKind string

const (
	SourceFile   SourceKind = "file"
	SourceTCP    SourceKind = "tcp"
	SourceSerial SourceKind = "serial"
)

// PaddingMode names the byte-symbol alignment a source's front-end applies,
// matching gps.PaddingMode's three variants by name.
type PaddingMode string

const (
	PaddingFull      PaddingMode = "full"
	PaddingMsbPadded PaddingMode = "msb_padded"
	PaddingLsbPadded PaddingMode = "lsb_padded"
)

// SourceConfig names one byte-stream source to feed into a Decoder. Each
// source is assumed to carry the downlink of a single SV: the codec has no
// way to recover the SV id from the navigation message content alone (that
// is settled upstream, by whatever PRN correlation tuned the front-end to
// this channel), so the operator names it here.
type SourceConfig struct {
	Name    string      `mapstructure:"name"`
	Kind    SourceKind  `mapstructure:"kind"`
	Enabled bool        `mapstructure:"enabled"`
	Padding PaddingMode `mapstructure:"padding"`
	SVID    uint8       `mapstructure:"svid"`

	// file
	Path string `mapstructure:"path"`

	// tcp
	Address string `mapstructure:"address"`

	// serial
	Device   string `mapstructure:"device"`
	BaudRate int    `mapstructure:"baud_rate"`
}

// WebConfig holds the WebSocket/REST dashboard configuration.
type WebConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	AuthRequired bool   `mapstructure:"auth_required"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
}

// DatabaseConfig holds the SQLite persistence configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled    bool             `mapstructure:"enabled"`
	Prometheus PrometheusConfig `mapstructure:"prometheus"`
}

// PrometheusConfig holds Prometheus metrics configuration.
type PrometheusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port"`
	Path    string `mapstructure:"path"`
}

// Load loads configuration from file and environment variables.
func Load(configFile string) (*Config, error) {
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/gps-navdata")
	}

	viper.SetEnvPrefix("GPSNAV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found is OK, use defaults.
		} else if os.IsNotExist(err) {
			// File explicitly specified but doesn't exist - that's also OK.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.name", "gps-navdata")
	viper.SetDefault("server.description", "GPS L1 C/A navigation data decoder")

	// Decoder defaults: 1024 bytes holds approximately 27 frames.
	viper.SetDefault("decoder.ring_buffer_bytes", 1024)
	viper.SetDefault("decoder.verify_parity", true)

	// Web defaults
	viper.SetDefault("web.enabled", true)
	viper.SetDefault("web.host", "0.0.0.0")
	viper.SetDefault("web.port", 8080)
	viper.SetDefault("web.auth_required", false)

	// Database defaults
	viper.SetDefault("database.path", "gps-navdata.db")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age", 7)

	// Metrics defaults
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.prometheus.enabled", true)
	viper.SetDefault("metrics.prometheus.port", 9090)
	viper.SetDefault("metrics.prometheus.path", "/metrics")
}

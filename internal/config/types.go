package config

import (
	"time"
)

// Config represents the application configuration
type Config struct {
	Environment  string             `mapstructure:"environment" yaml:"environment"`
	Server       ServerConfig       `mapstructure:"server" yaml:"server"`
	Database     DatabaseConfig     `mapstructure:"database" yaml:"database"`
	Redis        RedisConfig        `mapstructure:"redis" yaml:"redis"`
	Logging      LoggingConfig      `mapstructure:"logging" yaml:"logging"`
	Auth         AuthConfig         `mapstructure:"auth" yaml:"auth"`
	Notification NotificationConfig `mapstructure:"notification" yaml:"notification"`
}

// AuthConfig represents authentication configuration settings
type AuthConfig struct {
	JWT struct {
		Secret         string        `mapstructure:"secret"`
		AccessTokenTTL time.Duration `mapstructure:"accessTokenTTL"`
		Issuer         string        `mapstructure:"issuer"`
	} `mapstructure:"jwt"`
}

// ServerConfig represents server configuration settings
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// DatabaseConfig represents database configuration settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	Port     int    `mapstructure:"port"`
	Sslmode  string `mapstructure:"sslmode"`
	Timezone string `mapstructure:"timezone"`
	Pool     struct {
		MaxOpen int `mapstructure:"maxOpen"`
		MaxIdle int `mapstructure:"maxIdle"`
	} `mapstructure:"pool"`
	AutoMigrate bool          `mapstructure:"autoMigrate"`
	SlowQuery   time.Duration `mapstructure:"slowQuery"`
}

// RedisConfig represents Redis configuration settings
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LikesTTL time.Duration `mapstructure:"likesTTL"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	Output      string `mapstructure:"output" yaml:"output"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// NotificationConfig holds the pulsar settings for comment info events
type NotificationConfig struct {
	Enabled           bool          `mapstructure:"enabled" yaml:"enabled"`
	PulsarURL         string        `mapstructure:"pulsar_url" yaml:"pulsar_url"`
	Topic             string        `mapstructure:"topic" yaml:"topic"`
	OperationTimeout  time.Duration `mapstructure:"operation_timeout" yaml:"operation_timeout"`
	ConnectionTimeout time.Duration `mapstructure:"connection_timeout" yaml:"connection_timeout"`
	ClientLogLevel    string        `mapstructure:"client_log_level" yaml:"client_log_level"`
}

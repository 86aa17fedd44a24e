package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config - корневая структура конфигурации сервиса
// yaml и validate теги для парсинга и валидации

type Config struct {
	Logger LoggerConfig `yaml:"logger" validate:"required"`
	Server ServerConfig `yaml:"http-server" validate:"required"`
	Limits LimitsConfig `yaml:"limits" validate:"required"`
}

type ServerConfig struct {
	Port              int           `yaml:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" validate:"required"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" validate:"required"`
}

// LimitsConfig bounds the input accepted at the HTTP boundary. The engines
// themselves accept any length.
type LimitsConfig struct {
	MaxSequenceLen int   `yaml:"max_sequence_len" validate:"required,min=1"`
	MaxUploadBytes int64 `yaml:"max_upload_bytes" validate:"required,min=1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// Env variables that override the file config.
const (
	EnvPort     = "ALGOTRACE_PORT"
	EnvLogLevel = "ALGOTRACE_LOG_LEVEL"
	EnvLogJSON  = "ALGOTRACE_LOG_JSON"
)

// Default returns a baseline development config.
func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level: "INFO",
			JSON:  false,
		},
		Server: ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Limits: LimitsConfig{
			MaxSequenceLen: 10_000,
			MaxUploadBytes: 1 << 20,
		},
	}
}

// ApplyEnv overrides fields from environment variables looked up with lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logger.Level = v
	}
	if v, ok := lookup(EnvLogJSON); ok && v != "" {
		asJSON, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogJSON, err)
		}
		c.Logger.JSON = asJSON
	}
	return nil
}

// Validate checks the constraints declared in the validate tags.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToUpper(c.Logger.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("logger.level: unknown level %q", c.Logger.Level))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("http-server.port: %d out of range", c.Server.Port))
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		errs = append(errs, errors.New("http-server.read_header_timeout: must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http-server.shutdown_timeout: must be positive"))
	}
	if c.Limits.MaxSequenceLen < 1 {
		errs = append(errs, errors.New("limits.max_sequence_len: must be at least 1"))
	}
	if c.Limits.MaxUploadBytes < 1 {
		errs = append(errs, errors.New("limits.max_upload_bytes: must be at least 1"))
	}

	return errors.Join(errs...)
}

package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/pacscore/dicom-registry/pkg/enums"
	"github.com/pacscore/dicom-registry/pkg/errors"
)

type Environment string

const (
	EnvLocal      Environment = "LOCAL"
	EnvDev        Environment = "DEV"
	EnvProduction Environment = "PROD"
)

type LoggingConfig struct {
	Level  string
	Format string
}

type Config struct {
	Env     Environment
	Logging LoggingConfig

	// DefaultEncoding is the character set assumed for DICOM datasets
	// that carry no Specific Character Set attribute.
	DefaultEncoding enums.Encoding
}

func LoadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "INFO"),
		Format: getEnv("LOG_FORMAT", "json"),
	}
}

// LoadConfig reads the environment (optionally seeded from a .env
// file) and publishes the default DICOM encoding to the registry. It
// may be called again on a configuration-reload signal.
func LoadConfig(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using environment variables")
	}

	env := Environment(getEnv("APP_ENV", "LOCAL"))
	loggingConfig := LoadLoggingConfig()

	if _, err := enums.ParseLogLevel(loggingConfig.Level); err != nil {
		return nil, errors.WrapBadParameterType(err, "invalid LOG_LEVEL")
	}

	encodingName := getEnv("DEFAULT_DICOM_ENCODING", "Latin1")
	encoding, err := enums.ParseEncoding(encodingName)
	if err != nil {
		return nil, errors.WrapBadParameterType(err, "invalid DEFAULT_DICOM_ENCODING")
	}
	enums.SetDefaultDicomEncoding(encoding)

	return &Config{
		Env:             env,
		Logging:         loggingConfig,
		DefaultEncoding: encoding,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

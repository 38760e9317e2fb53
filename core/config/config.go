package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/josephkirk/Auto-Talent-Evaluation/core/db"
)

type Config struct {
	OTel        OTelConfig
	Ollama      OllamaConfig
	Report      ReportConfig
	HTTP        HTTPConfig
	Env         string
	Port        string
	SnowflakeID int64
	DB          db.Config
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type OllamaConfig struct {
	BaseURL string
	Model   string
	// Timeout bounds a single HTTP exchange with the service. Zero leaves the
	// call bounded only by the request context.
	Timeout time.Duration
}

type ReportConfig struct {
	// Timeout is applied by the HTTP layer to each report generation.
	Timeout time.Duration
}

type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
)

// Load loads configuration from environment variables.
// In development it first loads .env.<service> and falls back to .env.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("TALENT_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:         getEnv("TALENT_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		SnowflakeID: int64(getEnvInt("SNOWFLAKE_NODE_ID", 1)),
		DB: db.Config{
			DSN:      getEnv("DATABASE_URL", ""),
			MaxConns: getEnvInt32("DB_MAX_CONNS", 10),
			MinConns: getEnvInt32("DB_MIN_CONNS", 2),
		},
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "talent-evaluation"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Ollama: OllamaConfig{
			BaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:   getEnv("OLLAMA_MODEL", "gemma3:12b-it-qat"),
			Timeout: getEnvDuration("OLLAMA_TIMEOUT", 0),
		},
		Report: ReportConfig{
			Timeout: getEnvDuration("REPORT_TIMEOUT", 5*time.Minute),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 6*time.Minute),
			IdleTimeout:  getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		},
	}

	if cfg.Ollama.BaseURL == "" {
		return Config{}, fmt.Errorf("OLLAMA_BASE_URL must not be empty")
	}
	if cfg.Ollama.Model == "" {
		return Config{}, fmt.Errorf("OLLAMA_MODEL must not be empty")
	}
	if cfg.SnowflakeID < 0 || cfg.SnowflakeID > 1023 {
		return Config{}, fmt.Errorf("SNOWFLAKE_NODE_ID must be between 0 and 1023, got %d", cfg.SnowflakeID)
	}
	// A write timeout shorter than the report timeout would cut generations off mid-flight.
	if cfg.HTTP.WriteTimeout > 0 && cfg.Report.Timeout > 0 && cfg.HTTP.WriteTimeout <= cfg.Report.Timeout {
		return Config{}, fmt.Errorf("HTTP_WRITE_TIMEOUT (%s) must exceed REPORT_TIMEOUT (%s)", cfg.HTTP.WriteTimeout, cfg.Report.Timeout)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt32(key string, fallback int32) int32 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

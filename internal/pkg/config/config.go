package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type ObservabilityConfig struct {
	ServiceName  string
	OTLPEndpoint string
	MetricsAddr  string
	PprofAddr    string
	LogLevel     string
}

type CacheConfig struct {
	PackingTTL time.Duration
}

type Config struct {
	Repositories  RepositoriesConfig
	Observability ObservabilityConfig
	Cache         CacheConfig
	ServerPort    string
}

func Load() (*Config, error) {
	enabled, err := getEnvBool("POSTGRES_ENABLED", false)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt32("POSTGRES_MAX_CONNS", 30)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt32("POSTGRES_MIN_CONNS", 5)
	if err != nil {
		return nil, err
	}
	packingTTL, err := getEnvDuration("PACKING_CACHE_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Enabled:  enabled,
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5454"),
				DB:       getEnvOrDefault("POSTGRES_DB", "loci_travelkit"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: maxConns,
				MinConns: minConns,
			},
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("SERVICE_NAME", "loci-travelkit"),
			OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
			LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			PackingTTL: packingTTL,
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
	}

	if cfg.Repositories.Postgres.Enabled && cfg.Repositories.Postgres.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required when POSTGRES_ENABLED is set")
	}
	if cfg.Repositories.Postgres.MinConns > cfg.Repositories.Postgres.MaxConns {
		return nil, fmt.Errorf("POSTGRES_MIN_CONNS (%d) exceeds POSTGRES_MAX_CONNS (%d)",
			cfg.Repositories.Postgres.MinConns, cfg.Repositories.Postgres.MaxConns)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

func getEnvInt32(key string, defaultValue int32) (int32, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return int32(n), nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return d, nil
}

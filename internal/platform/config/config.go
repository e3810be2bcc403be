package config

import (
	"os"
	"strconv"
	"time"
)

// Config aggregates all configuration for the gateway process.
type Config struct {
	Server   Server
	Database Database
	Redis    Redis
	Kafka    Kafka
	Vendors  Vendors
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	Environment   string
	JWTSigningKey string
}

// Database configures the PostgreSQL tenant store. Empty URL disables it
// (the in-memory store is used instead).
type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Redis configures the tenant-config cache. Empty URL disables caching.
type Redis struct {
	URL      string
	CacheTTL time.Duration
}

// Kafka configures the downstream resource queue. Empty Brokers disables
// publishing (a noop sink is used instead).
type Kafka struct {
	Brokers         string
	Topic           string
	DeliveryTimeout time.Duration
}

// Vendors configures the outbound EHR vendor clients.
type Vendors struct {
	EpicBaseURL   string
	CernerBaseURL string
	Timeout       time.Duration
}

// FromEnv builds the process config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:          envOr("MEDGATE_ADDR", ":8080"),
			Environment:   envOr("MEDGATE_ENV", "development"),
			JWTSigningKey: envOr("MEDGATE_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		},
		Database: Database{
			URL:             os.Getenv("MEDGATE_DATABASE_URL"),
			MaxOpenConns:    envInt("MEDGATE_DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("MEDGATE_DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("MEDGATE_DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: Redis{
			URL:      os.Getenv("MEDGATE_REDIS_URL"),
			CacheTTL: envDuration("MEDGATE_TENANT_CACHE_TTL", 5*time.Minute),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("MEDGATE_KAFKA_BROKERS"),
			Topic:           envOr("MEDGATE_KAFKA_TOPIC", "medgate.resources"),
			DeliveryTimeout: envDuration("MEDGATE_KAFKA_DELIVERY_TIMEOUT", 10*time.Second),
		},
		Vendors: Vendors{
			EpicBaseURL:   os.Getenv("MEDGATE_EPIC_BASE_URL"),
			CernerBaseURL: os.Getenv("MEDGATE_CERNER_BASE_URL"),
			Timeout:       envDuration("MEDGATE_VENDOR_TIMEOUT", 30*time.Second),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

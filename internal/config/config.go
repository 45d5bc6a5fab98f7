package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Places   PlacesConfig
	Resolver ResolverConfig
	Worker   WorkerConfig
	DB       DatabaseConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type PlacesConfig struct {
	Enabled bool
	URL     string
	APIKey  string
	Timeout time.Duration
}

type ResolverConfig struct {
	RadiusKM     float64
	LiveTTL      time.Duration
	LocalTTL     time.Duration
	LiveTimeout  time.Duration
	LocalTimeout time.Duration
	MaxResults   int
}

type WorkerConfig struct {
	Count      int
	BufferSize int
}

type DatabaseConfig struct {
	Path     string
	SeedPath string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Places: PlacesConfig{
			Enabled: getEnvBool("PLACES_ENABLED", false),
			URL:     getEnv("PLACES_URL", "https://maps.googleapis.com/maps/api/place/nearbysearch/json"),
			APIKey:  getEnv("PLACES_API_KEY", ""),
			Timeout: getEnvDuration("PLACES_TIMEOUT", 5*time.Second),
		},
		Resolver: ResolverConfig{
			RadiusKM:     getEnvFloat("RESOLVER_RADIUS_KM", 10),
			LiveTTL:      getEnvDuration("RESOLVER_LIVE_TTL", time.Hour),
			LocalTTL:     getEnvDuration("RESOLVER_LOCAL_TTL", 6*time.Hour),
			LiveTimeout:  getEnvDuration("RESOLVER_LIVE_TIMEOUT", 5*time.Second),
			LocalTimeout: getEnvDuration("RESOLVER_LOCAL_TIMEOUT", 2*time.Second),
			MaxResults:   getEnvInt("RESOLVER_MAX_RESULTS", 10),
		},
		Worker: WorkerConfig{
			Count:      getEnvInt("WORKER_COUNT", 2),
			BufferSize: getEnvInt("WORKER_BUFFER_SIZE", 20),
		},
		DB: DatabaseConfig{
			Path:     getEnv("DB_PATH", "./data/emergency-dispatch.db"),
			SeedPath: getEnv("SEED_PATH", "./data/facilities.json"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Places.Enabled && c.Places.APIKey == "" {
		return fmt.Errorf("PLACES_API_KEY is required when the live tier is enabled")
	}

	if c.Resolver.RadiusKM <= 0 {
		return fmt.Errorf("resolver radius must be positive: %v", c.Resolver.RadiusKM)
	}
	if c.Resolver.MaxResults < 1 {
		return fmt.Errorf("resolver max results must be at least 1: %d", c.Resolver.MaxResults)
	}

	if c.Worker.Count < 1 {
		return fmt.Errorf("worker count must be at least 1: %d", c.Worker.Count)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

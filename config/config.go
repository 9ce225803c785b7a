package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	Environment    string
	APIBaseURL     string
	MediaBaseURL   string
	JWTSecret      string
	SessionFile    string
	RedisConfig    RedisConfig
	TracingConfig  TracingConfig
	FallbackConfig FallbackConfig
}

type RedisConfig struct {
	Addr     string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

// FallbackConfig holds the development credentials accepted when the remote
// auth endpoint is unreachable.
type FallbackConfig struct {
	AdminEmail    string
	AdminPassword string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:  getEnv("SERVICE_PORT", "8080"),
		MetricsPort:  getEnv("METRICS_PORT", "9090"),
		Environment:  os.Getenv("ENVIRONMENT"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:5000/api"),
		MediaBaseURL: getEnv("MEDIA_BASE_URL", "https://api.sayalloimmo.com"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		SessionFile:  getEnv("SESSION_FILE", ".session.json"),
		RedisConfig: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		FallbackConfig: FallbackConfig{
			AdminEmail:    getEnv("FALLBACK_ADMIN_EMAIL", "admin@sayallo.com"),
			AdminPassword: getEnv("FALLBACK_ADMIN_PASSWORD", "admin123"),
		},
	}

	return &conf
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

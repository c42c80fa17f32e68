package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName      string
	ServerPort       string
	LogLevel         string
	RecordsURL       string
	PageSize         int
	FetchTimeout     time.Duration
	PlacesBaseURL    string
	PlacesAPIKey     string
	MaxViews         int
	KafkaBrokers     []string
	KafkaTopic       string
	ReadinessTimeout time.Duration
	OTLPEndpoint     string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		ServiceName:      getEnv("SERVICE_NAME", "robot-carousel"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RecordsURL:       getEnv("RECORDS_URL", "https://jsonplaceholder.typicode.com/posts"),
		PageSize:         getIntEnv("PAGE_SIZE", 5),
		FetchTimeout:     getDurationEnv("FETCH_TIMEOUT", 0),
		PlacesBaseURL:    strings.TrimRight(getEnv("PLACES_BASE_URL", "https://maps.googleapis.com"), "/"),
		PlacesAPIKey:     getEnv("PLACES_API_KEY", ""),
		MaxViews:         getIntEnv("MAX_VIEWS", 1000),
		KafkaBrokers:     getListEnv("KAFKA_BROKERS"),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "carousel_events"),
		ReadinessTimeout: getDurationEnv("READINESS_TIMEOUT", 30*time.Second),
		OTLPEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

// EventsEnabled reports whether view events go to Kafka.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		// Try parsing as duration string (e.g. "1m", "60s")
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Try parsing as integer seconds
		if i, err := strconv.Atoi(value); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}

// getListEnv splits a comma-separated value, dropping blanks.
func getListEnv(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

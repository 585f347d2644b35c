package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Search    SearchConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SearchConfig tunes the fuzzy index and the search/suggestion endpoints.
type SearchConfig struct {
	// SimilarityThreshold is the minimum token similarity (0..1) the fuzzy
	// index accepts for a near-match.
	SimilarityThreshold float64
	// MinQueryLength is the shortest query the fuzzy index will scan for.
	MinQueryLength int
	// SuggestionLimit caps the number of search suggestions returned.
	SuggestionLimit int
	DefaultPageSize int
	MaxPageSize     int
}

type SchedulerConfig struct {
	// CertExpiryCron is a cron spec for the certification-expiry sweep.
	CertExpiryCron string
	// CertExpiryWindowDays is how far ahead the sweep looks.
	CertExpiryWindowDays int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Search: SearchConfig{
			SimilarityThreshold: parseFloat(getEnv("SEARCH_SIMILARITY_THRESHOLD", "0.7"), 0.7),
			MinQueryLength:      parseInt(getEnv("SEARCH_MIN_QUERY_LENGTH", "2"), 2),
			SuggestionLimit:     parseInt(getEnv("SEARCH_SUGGESTION_LIMIT", "5"), 5),
			DefaultPageSize:     parseInt(getEnv("SEARCH_DEFAULT_PAGE_SIZE", "10"), 10),
			MaxPageSize:         parseInt(getEnv("SEARCH_MAX_PAGE_SIZE", "100"), 100),
		},
		Scheduler: SchedulerConfig{
			CertExpiryCron:       getEnv("CERT_EXPIRY_CRON", "0 9 * * *"),
			CertExpiryWindowDays: parseInt(getEnv("CERT_EXPIRY_WINDOW_DAYS", "30"), 30),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string, defaultValue int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %q, using default %d", s, defaultValue)
		return defaultValue
	}
	return v
}

func parseFloat(s string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Invalid float %q, using default %v", s, defaultValue)
		return defaultValue
	}
	return v
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Sheets  SheetsConfig
	Session SessionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type SheetsConfig struct {
	SpreadsheetID string
	APIKey        string
	BaseURL       string

	// A1 ranges, one per logical dataset. The tab name selects the dataset.
	CompareRange      string
	UsersRange        string
	CardsRange        string
	DescriptionsRange string

	CacheTTL time.Duration
}

type SessionConfig struct {
	IdleTimeout    time.Duration
	NoticeDuration time.Duration
	CompareLimit   int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:     getEnv("SHEETS_SPREADSHEET_ID", ""),
			APIKey:            getEnv("SHEETS_API_KEY", ""),
			BaseURL:           getEnv("SHEETS_BASE_URL", "https://sheets.googleapis.com"),
			CompareRange:      getEnv("SHEETS_COMPARE_RANGE", "Sheet1!A1:ZZ1000"),
			UsersRange:        getEnv("SHEETS_USERS_RANGE", "Sheet2!A1:Z100"),
			CardsRange:        getEnv("SHEETS_CARDS_RANGE", "Sheet4!A1:B1000"),
			DescriptionsRange: getEnv("SHEETS_DESCRIPTIONS_RANGE", "Sheet5!A1:Z1000"),
			CacheTTL:          getEnvAsDuration("SHEETS_CACHE_TTL_MS", 30*time.Second),
		},
		Session: SessionConfig{
			IdleTimeout:    getEnvAsDuration("SESSION_IDLE_TIMEOUT_MS", 10*time.Minute),
			NoticeDuration: getEnvAsDuration("SESSION_NOTICE_DURATION_MS", 4*time.Second),
			CompareLimit:   getEnvAsInt("COMPARE_SELECTION_LIMIT", 7),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration reads a millisecond count.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(value) * time.Millisecond
	}
	return fallback
}

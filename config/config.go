package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSheetCSVURL is the published pricing sheet, exported as CSV.
const DefaultSheetCSVURL = "https://docs.google.com/spreadsheets/d/1bWw0eAnIXp5SE_jeWHcNbDIJDRHkl1w36l9NFE6qZuQ/export?format=csv&gid=0"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SheetCSVURL    string
	FetchTimeoutMs int

	ServerPort int
	ExportDir  string

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SheetCSVURL:    getEnv("SHEET_CSV_URL", DefaultSheetCSVURL),
		FetchTimeoutMs: getEnvInt("FETCH_TIMEOUT_MS", 15000),

		ServerPort: getEnvInt("SERVER_PORT", 8090),
		ExportDir:  getEnv("EXPORT_DIR", "./output"),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "tripventura"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "tripventura123"),
		PostgresDB:       getEnv("POSTGRES_DB", "pricing_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
		log.Printf("[config] Invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
		log.Printf("[config] Invalid boolean for %s, using default %v", key, fallback)
	}
	return fallback
}

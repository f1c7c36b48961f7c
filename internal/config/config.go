package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	JWTSecret         string
	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseProfileID string
	AppEnv            string
	DataDir           string
	UseSeedData       bool
	TestingMode       bool
	CirculateCards    bool
	EnableDocs        bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DB_URL", ""),
		JWTSecret:         jwtSecret,
		SupabaseURL:       getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:   getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseProfileID: getEnv("SUPABASE_PROFILE_ID", ""),
		AppEnv:            normalizeEnv(getEnv("APP_ENV", "production")),
		DataDir:           getEnv("DATA_DIR", "data"),
		UseSeedData:       getEnvBool("USE_SEED_DATA", true),
		TestingMode:       getEnvBool("TESTING_MODE", false),
		CirculateCards:    getEnvBool("CIRCULATE_CARDS", false),
		EnableDocs:        getEnvBool("ENABLE_API_DOCS", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

// CirculatePassedCards is the single policy value the feed builder and
// match store consume: passed/removed profiles resurface only when both
// the testing mode and the circulate toggle are on.
func (c *Config) CirculatePassedCards() bool {
	return c != nil && c.TestingMode && c.CirculateCards
}

// ResetEnabled gates the destructive reset endpoint to testing mode.
func (c *Config) ResetEnabled() bool {
	return c != nil && c.TestingMode
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

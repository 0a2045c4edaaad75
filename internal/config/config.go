package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Dynamic Mockups API
	DynamicMockupsAPIKey   string
	DynamicMockupsBaseURL  string
	DefaultMockupUUID      string
	DefaultSmartObjectUUID string

	// Supabase storage
	SupabaseURL           string
	SupabaseServiceKey    string
	SupabaseStorageBucket string

	// Run store
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RunTTL        time.Duration

	// Database
	DatabaseURL string

	// FTP
	FTPTimeout time.Duration

	// Logging
	LogLevel    string
	LogEncoding string

	// Server
	Port        string
	Environment string
	PageSize    int
	BaseURL     string // public URL, used for the Swagger host
}

func Load() (*Config, error) {
	cfg := &Config{
		DynamicMockupsAPIKey:   getEnv("DYNAMIC_MOCKUPS_API_KEY", ""),
		DynamicMockupsBaseURL:  getEnv("DYNAMIC_MOCKUPS_BASE_URL", "https://app.dynamicmockups.com/api/v1"),
		DefaultMockupUUID:      getEnv("DEFAULT_MOCKUP_UUID", "db90556b-96a3-483c-ba88-557393b992a1"),
		DefaultSmartObjectUUID: getEnv("DEFAULT_SMART_OBJECT_UUID", "fb677f24-3dce-4d53-b024-26ea52ea43c9"),

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "product-mockups"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RunTTL:        time.Duration(getEnvInt("RUN_TTL_MINUTES", 240)) * time.Minute,

		DatabaseURL: getEnv("DATABASE_URL", ""),

		FTPTimeout: time.Duration(getEnvInt("FTP_TIMEOUT_SECONDS", 30)) * time.Second,

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogEncoding: getEnv("LOG_ENCODING", "json"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		PageSize:    getEnvInt("PAGE_SIZE", 5),
		BaseURL:     getEnv("BASE_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DynamicMockupsAPIKey == "" {
		return fmt.Errorf("DYNAMIC_MOCKUPS_API_KEY is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	if c.RunTTL <= 0 {
		return fmt.Errorf("RUN_TTL_MINUTES must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

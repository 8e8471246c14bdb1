package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Store drivers
const (
	StoreDriverSheets = "sheets"
	StoreDriverMemory = "memory"
)

// Sheet setup modes run at startup
const (
	SetupModeNone   = "none"
	SetupModeEnsure = "ensure"
)

// GinModeRelease is the production gin mode; it requires JWT_SECRET_KEY
const GinModeRelease = "release"

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Server
	ServerPort      string
	GinMode         string
	CORSAllowOrigin string

	// Spreadsheet store
	StoreDriver           string // "sheets" or "memory"
	GoogleSheetID         string
	GoogleCredentialsPath string
	SheetsSetupMode       string // "none" or "ensure"

	// JWT Authentication
	JWTSecretKey       string
	JWTSecretGenerated bool // random per-process secret, tokens die with the process
	JWTExpiryHours     int

	// Admin bootstrap, skipped when the password is empty
	DefaultAdminUsername string
	DefaultAdminPassword string

	// Redis, backs the login rate limiter when enabled
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Rate limiting
	RateLimitRPS            int
	RateLimitBurst          int
	LoginRateLimitPerMinute int

	// Logging
	LogDir   string
	LogLevel string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	envType := getEnv("ENV_TYPE", "LOCAL")
	var prefix string

	switch strings.ToUpper(envType) {
	case "LOCAL":
		prefix = "LOCAL_"
	case "SERVER":
		prefix = "SERVER_"
	default:
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	driver := strings.ToLower(env(prefix, "STORE_DRIVER", StoreDriverSheets))
	sheetID := env(prefix, "GOOGLE_SHEET_ID", "")
	if driver == StoreDriverSheets && sheetID == "" {
		sheetID = getEnvRequired(prefix + "GOOGLE_SHEET_ID")
	}

	ginMode := env(prefix, "GIN_MODE", "debug")
	secret := getEnv("JWT_SECRET_KEY", "")
	generated := secret == ""
	if generated {
		if ginMode == GinModeRelease {
			secret = getEnvRequired("JWT_SECRET_KEY")
		}
		secret = randomSecret()
	}

	return &Config{
		EnvType: envType,

		ServerPort:      env(prefix, "SERVER_PORT", "8080"),
		GinMode:         ginMode,
		CORSAllowOrigin: env(prefix, "CORS_ALLOW_ORIGIN", "*"),

		StoreDriver:           driver,
		GoogleSheetID:         sheetID,
		GoogleCredentialsPath: env(prefix, "GOOGLE_CREDENTIALS_PATH", "credentials.json"),
		SheetsSetupMode:       strings.ToLower(env(prefix, "SHEETS_SETUP_MODE", SetupModeNone)),

		JWTSecretKey:       secret,
		JWTSecretGenerated: generated,
		JWTExpiryHours:     getEnvAsInt("JWT_EXPIRY_HOURS", 12),

		DefaultAdminUsername: getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", ""),

		RedisEnabled:  getEnvAsBool(prefix+"REDIS_ENABLED", getEnvAsBool("REDIS_ENABLED", false)),
		RedisHost:     env(prefix, "REDIS_HOST", "localhost"),
		RedisPort:     env(prefix, "REDIS_PORT", "6379"),
		RedisPassword: env(prefix, "REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		RateLimitRPS:            getEnvAsInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst:          getEnvAsInt("RATE_LIMIT_BURST", 40),
		LoginRateLimitPerMinute: getEnvAsInt("LOGIN_RATE_LIMIT_PER_MINUTE", 10),

		LogDir:   getEnv("LOG_DIR", "logs"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// env prefers the environment-specific key and falls back to the plain one
func env(prefix, key, defaultValue string) string {
	return getEnv(prefix+key, getEnv(key, defaultValue))
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// randomSecret returns 32 random bytes, hex encoded
func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generate jwt secret failed")
	}
	return hex.EncodeToString(b)
}

// Helper function for variables that must be set
func getEnvRequired(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/yukikurage/blog/internal/constants"
)

type Config struct {
	Port       string
	GinMode    string
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBLogLevel string

	SessionSecret    string
	SessionStore     string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RememberDuration time.Duration
	SessionLifetime  time.Duration

	PostsPerPage int
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "blog.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "bloguser"),
		DBPassword: getEnv("DB_PASSWORD", "blogpassword"),
		DBName:     getEnv("DB_NAME", "blog"),
		DBLogLevel: getEnv("DB_LOG_LEVEL", "warn"),

		SessionSecret:    getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		SessionStore:     getEnv("SESSION_STORE", "cookie"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RememberDuration: rememberDuration(getDurationEnv("REMEMBER_DURATION", constants.MaxRememberDuration)),
		SessionLifetime:  getDurationEnv("SESSION_LIFETIME", 24*time.Hour),

		PostsPerPage: getIntEnv("POSTS_PER_PAGE", 20),
	}
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// rememberDuration caps d at what the session cookie codec accepts
func rememberDuration(d time.Duration) time.Duration {
	if d > constants.MaxRememberDuration {
		log.Printf("REMEMBER_DURATION %s exceeds the cookie limit, using %s", d, constants.MaxRememberDuration)
		return constants.MaxRememberDuration
	}
	return d
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s (%q), using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value for %s (%q), using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

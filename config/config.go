package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Build    BuildConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	DSN string
}

// BuildConfig holds every filesystem and tool location the build pipeline
// touches. Components receive this struct at construction; nothing reads the
// environment after Load returns, so tests can point each field at a temp dir.
type BuildConfig struct {
	TemplatesDir   string
	BuildsDir      string
	AssetsDir      string
	BuildsURL      string
	UnityPath      string
	SkipUnityBuild bool
	BuildTimeout   time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ProducerURL string
	APIKey      string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Build: BuildConfig{
			TemplatesDir:   getEnv("TEMPLATES_DIR", "templates"),
			BuildsDir:      getEnv("BUILDS_DIR", "builds"),
			AssetsDir:      getEnv("ASSETS_DIR", "assets"),
			BuildsURL:      getEnv("BUILDS_URL", "http://localhost:8080/builds"),
			UnityPath:      getEnv("UNITY_PATH", ""),
			SkipUnityBuild: getEnvAsBool("SKIP_UNITY_BUILD", false),
			BuildTimeout:   getEnvAsDuration("BUILD_TIMEOUT", 20*time.Minute),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ProducerURL: getEnv("DESIGN_PRODUCER_URL", ""),
			APIKey:      getEnv("API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Build.TemplatesDir == "" {
		return fmt.Errorf("TEMPLATES_DIR is required")
	}

	if c.Build.BuildsDir == "" {
		return fmt.Errorf("BUILDS_DIR is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

// internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Engine   EngineConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
	LogLevel       string
}

type DatabaseConfig struct {
	// Driver selects the store: "postgres" or "memory" (demo mode, no DB).
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled       bool
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	TTLSeconds    int
}

// EngineConfig holds engine-wide defaults applied when a request leaves the
// corresponding field unset.
type EngineConfig struct {
	DefaultReviewPeriodDays int
	DefaultXThreshold       float64
	DefaultYThreshold       float64
	DefaultAThreshold       float64
	DefaultBThreshold       float64
	BulkWorkers             int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("DB_DRIVER", "postgres")
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "invopt")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_TTL_SECONDS", 60)
		viper.SetDefault("ENGINE_DEFAULT_REVIEW_PERIOD_DAYS", 30)
		viper.SetDefault("ENGINE_XYZ_X_THRESHOLD", 0.5)
		viper.SetDefault("ENGINE_XYZ_Y_THRESHOLD", 1.0)
		viper.SetDefault("ENGINE_ABC_A_THRESHOLD", 0.8)
		viper.SetDefault("ENGINE_ABC_B_THRESHOLD", 0.95)
		viper.SetDefault("ENGINE_BULK_WORKERS", 8)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
				LogLevel:       viper.GetString("LOG_LEVEL"),
			},
			Database: DatabaseConfig{
				Driver:   viper.GetString("DB_DRIVER"),
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Cache: CacheConfig{
				Enabled:       viper.GetBool("CACHE_ENABLED"),
				RedisURL:      viper.GetString("REDIS_URL"),
				RedisHost:     viper.GetString("REDIS_HOST"),
				RedisPort:     viper.GetString("REDIS_PORT"),
				RedisPassword: viper.GetString("REDIS_PASSWORD"),
				RedisDB:       viper.GetInt("REDIS_DB"),
				TTLSeconds:    viper.GetInt("CACHE_TTL_SECONDS"),
			},
			Engine: EngineConfig{
				DefaultReviewPeriodDays: viper.GetInt("ENGINE_DEFAULT_REVIEW_PERIOD_DAYS"),
				DefaultXThreshold:       viper.GetFloat64("ENGINE_XYZ_X_THRESHOLD"),
				DefaultYThreshold:       viper.GetFloat64("ENGINE_XYZ_Y_THRESHOLD"),
				DefaultAThreshold:       viper.GetFloat64("ENGINE_ABC_A_THRESHOLD"),
				DefaultBThreshold:       viper.GetFloat64("ENGINE_ABC_B_THRESHOLD"),
				BulkWorkers:             viper.GetInt("ENGINE_BULK_WORKERS"),
			},
		}
	})

	return instance
}

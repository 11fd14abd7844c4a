package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Park data. STORE_DRIVER selects "csv" (flat files under DATA_DIR) or "mongo".
	StoreDriver      string `mapstructure:"STORE_DRIVER"`
	DataDir          string `mapstructure:"DATA_DIR"`
	ScheduleFile     string `mapstructure:"SCHEDULE_FILE"`
	AmenitiesFile    string `mapstructure:"AMENITIES_FILE"`
	LocationsFile    string `mapstructure:"LOCATIONS_FILE"`
	ReservationsFile string `mapstructure:"RESERVATIONS_FILE"`
	IssuesFile       string `mapstructure:"ISSUES_FILE"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseName     string `mapstructure:"DATABASE_NAME"`

	// Chat sessions. SESSION_STORE is "memory" or "redis".
	SessionStore      string `mapstructure:"SESSION_STORE"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	NotificationsEnabled bool `mapstructure:"NOTIFICATIONS_ENABLED"`

	// Assistant. An empty key falls back to the offline assistant.
	GeminiAPIKey            string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel             string `mapstructure:"GEMINI_MODEL"`
	AssistantTimeoutSeconds int    `mapstructure:"ASSISTANT_TIMEOUT_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STORE_DRIVER", "csv")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SCHEDULE_FILE", "Park_schedule.csv")
	viper.SetDefault("AMENITIES_FILE", "Park_amenities.csv")
	viper.SetDefault("LOCATIONS_FILE", "Park_location.csv")
	viper.SetDefault("RESERVATIONS_FILE", "reservations_log.csv")
	viper.SetDefault("ISSUES_FILE", "issue_reports.csv")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "cityconnect")
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("NOTIFICATIONS_ENABLED", false)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")
	viper.SetDefault("ASSISTANT_TIMEOUT_SECONDS", 20)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// DataPath resolves one of the tabular file names against DATA_DIR.
func DataPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(AppConfig.DataDir, name)
}

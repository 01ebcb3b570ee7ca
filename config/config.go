package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Matcher tunables. The overlap threshold is exclusive: two names match on
	// keywords only when their overlap ratio is strictly greater than it.
	MatchOverlapThreshold    float64 `mapstructure:"MATCH_OVERLAP_THRESHOLD"`
	MatchKeywordFloor        int     `mapstructure:"MATCH_KEYWORD_FLOOR"`
	DefaultServicePrice      float64 `mapstructure:"DEFAULT_SERVICE_PRICE"`
	MatchMaxConcurrentChecks int     `mapstructure:"MATCH_MAX_CONCURRENT_CHECKS"`

	// SlotTemplates lists the bookable windows for this deployment,
	// e.g. "9:00 AM - 11:00 AM". Operating hours vary per region.
	SlotTemplates []string `mapstructure:"SLOT_TEMPLATES"`

	// Categories the cache warmer recomputes ahead of demand.
	WarmCategories   []string `mapstructure:"WARM_CATEGORIES"`
	WarmIntervalMins int      `mapstructure:"WARM_INTERVAL_MINS"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MATCH_OVERLAP_THRESHOLD", 0.6)
	viper.SetDefault("MATCH_KEYWORD_FLOOR", 3)
	viper.SetDefault("DEFAULT_SERVICE_PRICE", 500.0)
	viper.SetDefault("MATCH_MAX_CONCURRENT_CHECKS", 8)
	viper.SetDefault("SLOT_TEMPLATES", []string{
		"7:00 AM - 9:00 AM",
		"9:00 AM - 11:00 AM",
		"11:00 AM - 1:00 PM",
		"1:00 PM - 3:00 PM",
		"3:00 PM - 5:00 PM",
		"5:00 PM - 7:00 PM",
	})
	viper.SetDefault("WARM_CATEGORIES", []string{})
	viper.SetDefault("WARM_INTERVAL_MINS", 15)

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

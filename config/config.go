package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"smart-task-assistant/internal/recommender"
	"smart-task-assistant/internal/suggestion"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig
	Timezone    string

	// Enrichment pipeline
	Normalizer  NormalizerConfig
	Recommender RecommenderConfig
	Suggestion  SuggestionConfig

	// Storage
	Database DatabaseConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type NormalizerConfig struct {
	AmbiguityPolicy string // "first" or "earliest"
}

type RecommenderConfig struct {
	TopN               int
	ComplementaryScope string // "user" or "global"
	MinSharedUsers     int
	CacheSize          int
}

type SuggestionConfig struct {
	Providers       []string // tried in order before the keyword fallback
	RateLimitPerMin int
	MaxItems        int
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string // file path for sqlite, connection string for postgres
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/, unless
// configFile names one explicitly.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Timezone = v.GetString("timezone")

	// Enrichment pipeline
	cfg.Normalizer.AmbiguityPolicy = v.GetString("normalizer.ambiguity_policy")
	cfg.Recommender.TopN = v.GetInt("recommender.top_n")
	cfg.Recommender.ComplementaryScope = v.GetString("recommender.complementary_scope")
	cfg.Recommender.MinSharedUsers = v.GetInt("recommender.min_shared_users")
	cfg.Recommender.CacheSize = v.GetInt("recommender.cache_size")
	cfg.Suggestion.Providers = v.GetStringSlice("suggestion.providers")
	cfg.Suggestion.RateLimitPerMin = v.GetInt("suggestion.rate_limit_per_min")
	cfg.Suggestion.MaxItems = v.GetInt("suggestion.max_items")
	cfg.Suggestion.RetryAttempts = v.GetInt("suggestion.retry_attempts")
	cfg.Suggestion.RetryDelay = v.GetDuration("suggestion.retry_delay")
	cfg.Suggestion.MaxTotalTimeout = v.GetDuration("suggestion.max_total_timeout")

	// Storage
	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(v, v.GetString("database.dsn"))
	if dbURL := v.GetString("database_url"); dbURL != "" {
		cfg.Database.DSN = dbURL
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("timezone", "UTC")

	v.SetDefault("normalizer.ambiguity_policy", "first")
	v.SetDefault("recommender.top_n", 3)
	v.SetDefault("recommender.complementary_scope", "user")
	v.SetDefault("recommender.min_shared_users", 2)
	v.SetDefault("recommender.cache_size", 128)
	v.SetDefault("suggestion.providers", []string{"keyword"})
	v.SetDefault("suggestion.rate_limit_per_min", 30)
	v.SetDefault("suggestion.max_items", 5)
	v.SetDefault("suggestion.retry_attempts", 1)
	v.SetDefault("suggestion.retry_delay", "1s")
	v.SetDefault("suggestion.max_total_timeout", "30s")

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "data/tasks.db")
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validate checks enumerated and numeric settings.
func validate(cfg *Config) error {
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	switch cfg.Normalizer.AmbiguityPolicy {
	case "first", "earliest":
	default:
		return fmt.Errorf("normalizer.ambiguity_policy: unknown value %q", cfg.Normalizer.AmbiguityPolicy)
	}

	if _, err := recommender.ParseScope(cfg.Recommender.ComplementaryScope); err != nil {
		return fmt.Errorf("recommender.complementary_scope: %w", err)
	}
	if cfg.Recommender.TopN <= 0 {
		return fmt.Errorf("recommender.top_n must be positive")
	}
	if cfg.Recommender.CacheSize <= 0 {
		return fmt.Errorf("recommender.cache_size must be positive")
	}
	if _, err := suggestion.ProvidersByName(cfg.Suggestion.Providers); err != nil {
		return fmt.Errorf("suggestion.providers: %w", err)
	}
	if cfg.Suggestion.RateLimitPerMin < 0 {
		return fmt.Errorf("suggestion.rate_limit_per_min must not be negative")
	}

	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("database.driver: unknown value %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	return nil
}

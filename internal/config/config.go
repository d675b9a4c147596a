package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// CollegeFootballData API
	CFBDAPIKey  string        `envconfig:"CFBD_API_KEY" required:"true"`
	CFBDBaseURL string        `envconfig:"CFBD_BASE_URL" default:"https://api.collegefootballdata.com"`
	CFBDTimeout time.Duration `envconfig:"CFBD_TIMEOUT" default:"30s"`

	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"dynasty"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"dynasty_user"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Redis
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Evaluation pipeline
	DraftYear          int    `envconfig:"DRAFT_YEAR" default:"2026"`
	ComparisonSeason   int    `envconfig:"COMPARISON_SEASON" default:"2025"`
	GradeWeightPreset  string `envconfig:"GRADE_WEIGHT_PRESET" default:"default"`
	PipelineBatchSize  int    `envconfig:"PIPELINE_BATCH_SIZE" default:"50"`
	EnrichmentEnabled  bool   `envconfig:"ENRICHMENT_ENABLED" default:"true"`
	MinComparisonGames int    `envconfig:"MIN_COMPARISON_GAMES" default:"8"`

	// Scheduler
	EnableScheduler    bool   `envconfig:"ENABLE_SCHEDULER" default:"true"`
	InitialRunEnabled  bool   `envconfig:"INITIAL_RUN_ENABLED" default:"true"`
	NightlyRefreshCron string `envconfig:"NIGHTLY_REFRESH_CRON" default:"0 2 * * *"`

	// API Rate Limiting
	APIRateLimit  int `envconfig:"API_RATE_LIMIT" default:"100"`
	APIBurstLimit int `envconfig:"API_BURST_LIMIT" default:"20"`

	// Caching TTL (in seconds)
	CacheTTLNFLPool      int `envconfig:"CACHE_TTL_NFL_POOL" default:"86400"` // 24 hours
	CacheTTLCollegeStats int `envconfig:"CACHE_TTL_COLLEGE_STATS" default:"43200"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if in development mode
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.CFBDAPIKey == "" {
		return fmt.Errorf("CFBD_API_KEY is required")
	}

	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is required")
	}

	switch c.GradeWeightPreset {
	case "default", "historical":
	default:
		return fmt.Errorf("GRADE_WEIGHT_PRESET must be \"default\" or \"historical\", got %q", c.GradeWeightPreset)
	}

	if c.DraftYear < 2000 {
		return fmt.Errorf("DRAFT_YEAR %d is out of range", c.DraftYear)
	}

	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MustLoad loads configuration or panics on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

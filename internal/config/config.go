// Package config provides configuration management for the Pitch Oracle application.
package config

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Artifacts ArtifactsConfig `mapstructure:"artifacts" validate:"required"`
	Predictor PredictorConfig `mapstructure:"predictor" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Ingestion IngestionConfig `mapstructure:"ingestion"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the prediction API server configuration
type ServerConfig struct {
	Port            int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSecs int      `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSecs int     `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	RequestTimeoutSecs int   `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
	CORSOrigins     []string `mapstructure:"cors_origins" validate:"required,min=1"`
}

// ArtifactsConfig locates the externally-produced model and statistics
// artifacts. All three must load at process start; there is no degraded mode.
type ArtifactsConfig struct {
	WinModelPath    string `mapstructure:"win_model_path" validate:"required"`
	MarginModelPath string `mapstructure:"margin_model_path" validate:"required"`
	VenueStatsPath  string `mapstructure:"venue_stats_path" validate:"required"`
}

// PredictorConfig represents prediction service configuration
type PredictorConfig struct {
	MinScore        int `mapstructure:"min_score" validate:"required,gt=0"`
	MaxScore        int `mapstructure:"max_score" validate:"required,gt=0"`
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheMaxSize    int `mapstructure:"cache_max_size" validate:"required,gt=0"`
}

// DatabaseConfig represents database connection configuration for the
// ingestion pipeline. Unused by the prediction API.
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gt=0"`
}

// IngestionConfig represents match-data ingestion configuration
type IngestionConfig struct {
	SourceURL        string  `mapstructure:"source_url" validate:"omitempty,url"`
	APIKey           string  `mapstructure:"api_key"`
	Seasons          []int   `mapstructure:"seasons"`
	RateLimit        float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
	TimeoutSeconds   int     `mapstructure:"timeout_seconds" validate:"omitempty,gt=0"`
	MaxRetries       int     `mapstructure:"max_retries" validate:"omitempty,gte=0"`
	Schedule         string  `mapstructure:"schedule"`
	HealthPort       int     `mapstructure:"health_port" validate:"omitempty,min=1,max=65535"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

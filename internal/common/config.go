package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Extractor ExtractorConfig
	Matcher   MatcherConfig
	Pipeline  PipelineConfig
	Storage   StorageConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
}

// ExtractorConfig holds settings for the external document-understanding service.
type ExtractorConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// MatcherConfig holds the product-matcher tunables. The acceptance threshold and
// candidate floor are deliberately configurable rather than hard-coded.
type MatcherConfig struct {
	AcceptThreshold float64
	CandidateFloor  float64
	MaxCandidates   int
}

// PipelineConfig holds retry/backoff and worker settings for background work.
type PipelineConfig struct {
	Workers        int
	QueueSize      int
	MaxAttempts    int
	RetryBackoff   time.Duration
	ExtractTimeout time.Duration
	PageCacheTTL   time.Duration
}

// StorageConfig holds blob-storage settings.
type StorageConfig struct {
	BlobDir string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extractor: ExtractorConfig{
			BaseURL: getEnv("EXTRACTOR_BASE_URL", ""),
			APIKey:  getEnv("EXTRACTOR_API_KEY", ""),
			Timeout: getEnvAsDuration("EXTRACTOR_TIMEOUT", 60*time.Second),
		},
		Matcher: MatcherConfig{
			AcceptThreshold: getEnvAsFloat64("MATCH_ACCEPT_THRESHOLD", 0.75),
			CandidateFloor:  getEnvAsFloat64("MATCH_CANDIDATE_FLOOR", 0.30),
			MaxCandidates:   int(getEnvAsInt32("MATCH_MAX_CANDIDATES", 5)),
		},
		Pipeline: PipelineConfig{
			Workers:        int(getEnvAsInt32("PIPELINE_WORKERS", 4)),
			QueueSize:      int(getEnvAsInt32("PIPELINE_QUEUE_SIZE", 256)),
			MaxAttempts:    int(getEnvAsInt32("EXTRACT_MAX_ATTEMPTS", 3)),
			RetryBackoff:   getEnvAsDuration("EXTRACT_RETRY_BACKOFF", 2*time.Second),
			ExtractTimeout: getEnvAsDuration("EXTRACT_TIMEOUT", 3*time.Minute),
			PageCacheTTL:   getEnvAsDuration("PAGE_CACHE_TTL", 10*time.Minute),
		},
		Storage: StorageConfig{
			BlobDir: getEnv("BLOB_DIR", "./blobs"),
		},
	}
}

// Validate checks the loaded configuration for required values.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Extractor.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "EXTRACTOR_BASE_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(parsed)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

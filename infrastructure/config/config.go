package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Persistence backend: "memory", "dynamodb", or "sqlite"
	StorageBackend string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	EventBusName  string
	EventSource   string

	// SQLite configuration (CLI and local single-node deployments)
	SQLitePath string

	// Lambda configuration
	IsLambda bool

	// Remote classifier (optional external model endpoint)
	ClassifierEndpoint string
	ClassifierTimeout  int // milliseconds

	// Logging
	LogLevel string

	// Optional runtime override file watched for domain config changes
	RuntimeConfigPath string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
	EnableEvents  bool
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),

		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: getEnv("TABLE_NAME", "mindflow"),
		EventBusName:  getEnv("EVENT_BUS_NAME", "mindflow-events"),
		EventSource:   getEnv("EVENT_SOURCE", "mindflow.backend"),

		SQLitePath: getEnv("SQLITE_PATH", "mindflow.db"),

		IsLambda: getEnvBool("IS_LAMBDA", false) || os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",

		ClassifierEndpoint: getEnv("CLASSIFIER_ENDPOINT", ""),
		ClassifierTimeout:  getEnvInt("CLASSIFIER_TIMEOUT_MS", 5000),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		RuntimeConfigPath: getEnv("RUNTIME_CONFIG_PATH", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "mindflow-backend"),

		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		EnableEvents:  getEnvBool("ENABLE_EVENTS", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig.
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "memory", "dynamodb", "sqlite":
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.StorageBackend == "memory" {
			return fmt.Errorf("in-memory storage is not allowed in production")
		}
	}

	if c.StorageBackend == "dynamodb" && c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required for dynamodb storage")
	}
	if c.StorageBackend == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required for sqlite storage")
	}
	if c.EnableEvents && c.EventBusName == "" {
		return fmt.Errorf("EVENT_BUS_NAME is required when events are enabled")
	}

	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

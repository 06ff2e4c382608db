package config

import "time"

// DomainConfig holds the configurable business rules and constraints.
type DomainConfig struct {
	// Document constraints
	MaxTitleLength           int
	MaxContentLength         int
	MaxTagsPerDocument       int
	MaxCategoriesPerDocument int

	// Classification defaults
	DefaultCategoryID   string
	DefaultCategoryName string

	// Analysis timing
	AnalysisTimeout time.Duration
	// AnalysisDelay simulates model latency for interactive demos; zero in
	// production and tests.
	AnalysisDelay time.Duration

	// Validation settings
	AllowEmptyDocuments bool

	// Feature flags
	EnableRemoteClassifier bool
	EnableEventPublishing  bool
}

// DefaultDomainConfig returns the default domain configuration.
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxTitleLength:           200,
		MaxContentLength:         50000,
		MaxTagsPerDocument:       5,
		MaxCategoriesPerDocument: 10,

		DefaultCategoryID:   "general",
		DefaultCategoryName: "General",

		AnalysisTimeout: 30 * time.Second,
		AnalysisDelay:   0,

		AllowEmptyDocuments: false,

		EnableRemoteClassifier: false,
		EnableEventPublishing:  true,
	}
}

// ProductionDomainConfig returns production-specific configuration.
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	config.MaxContentLength = 20000
	config.EnableRemoteClassifier = true

	return config
}

// DevelopmentDomainConfig returns development-specific configuration.
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	config.AllowEmptyDocuments = true
	config.EnableEventPublishing = false
	config.AnalysisDelay = 1500 * time.Millisecond

	return config
}

// LoadDomainConfig loads domain configuration based on environment.
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}

// Validate checks if the configuration is valid.
func (c *DomainConfig) Validate() error {
	if c.MaxTagsPerDocument <= 0 {
		c.MaxTagsPerDocument = 5
	}
	if c.DefaultCategoryID == "" {
		c.DefaultCategoryID = "general"
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"uaetax/internal/logger"
	"uaetax/pkg/models"
)

type Config struct {
	// Seller identity used when generating invoices
	SellerName    string
	SellerTRN     string
	SellerStreet  string
	SellerCity    string
	SellerEmirate string
	SellerCountry string
	SellerPhone   string
	SellerEmail   string

	// Tax treatment flags
	FTACompliantMode bool
	SellerIsQFZP     bool

	// PDF rendering
	ArabicFontPath string

	// Notification scheduler
	NotificationInterval time.Duration

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		SellerName:           getEnv("SELLER_NAME", ""),
		SellerTRN:            getEnv("SELLER_TRN", ""),
		SellerStreet:         getEnv("SELLER_STREET", ""),
		SellerCity:           getEnv("SELLER_CITY", ""),
		SellerEmirate:        getEnv("SELLER_EMIRATE", ""),
		SellerCountry:        getEnv("SELLER_COUNTRY", "AE"),
		SellerPhone:          getEnv("SELLER_PHONE", ""),
		SellerEmail:          getEnv("SELLER_EMAIL", ""),
		FTACompliantMode:     getEnvBool("FTA_COMPLIANT_MODE", true),
		SellerIsQFZP:         getEnvBool("SELLER_IS_QFZP", false),
		ArabicFontPath:       getEnv("ARABIC_FONT_PATH", ""),
		NotificationInterval: getEnvDuration("NOTIFICATION_INTERVAL", time.Minute),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:        getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:            getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.SellerTRN != "" && !models.ValidTRN(c.SellerTRN) {
		return fmt.Errorf("SELLER_TRN must be exactly 15 digits")
	}
	if c.NotificationInterval <= 0 {
		return fmt.Errorf("NOTIFICATION_INTERVAL must be positive")
	}
	return nil
}

// SellerParty assembles the configured seller identity as an invoice party.
func (c *Config) SellerParty() models.Party {
	return models.Party{
		Name: c.SellerName,
		TRN:  c.SellerTRN,
		Address: models.Address{
			Street:  c.SellerStreet,
			City:    c.SellerCity,
			Emirate: c.SellerEmirate,
			Country: c.SellerCountry,
		},
		Contact: models.Contact{
			Phone: c.SellerPhone,
			Email: c.SellerEmail,
		},
	}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
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
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Worldpay WorldpayConfig
	Origin   OriginConfig
	Logger   LoggerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int
	Host        string
	MetricsPort int
	NotifyPath  string
}

// WorldpayConfig holds the merchant-side gateway configuration. The adapter
// consumes these values; storage of the secret itself is the caller's concern.
type WorldpayConfig struct {
	Merchant          string // Worldpay merchant code
	Username          string // Distinct basic-auth username; falls back to merchant code
	Password          string // XML API password
	Installation      string // Hosted-pages installation id
	TestMode          bool
	AcceptHeader      string
	UserAgentHeader   string
	PaymentType       string // Payment-method mask hint; unknown values disable masking
	UseBillingAddress bool   // Default true; the order then requires a postal code
	SuccessURL        string
	FailureURL        string
	CancelURL         string
}

// OriginConfig holds notification origin-validation configuration
type OriginConfig struct {
	HostSuffix    string
	IPPrefixes    []string
	LookupTimeout time.Duration
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvAsInt("SERVER_PORT", 8080),
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			MetricsPort: getEnvAsInt("METRICS_PORT", 9090),
			NotifyPath:  getEnv("NOTIFY_PATH", "/worldpay/notify"),
		},
		Worldpay: WorldpayConfig{
			Merchant:          getEnv("WORLDPAY_MERCHANT", ""),
			Username:          getEnv("WORLDPAY_USERNAME", ""),
			Password:          getEnv("WORLDPAY_PASSWORD", ""),
			Installation:      getEnv("WORLDPAY_INSTALLATION", ""),
			TestMode:          getEnvAsBool("WORLDPAY_TEST_MODE", false),
			AcceptHeader:      getEnv("WORLDPAY_ACCEPT_HEADER", "text/html"),
			UserAgentHeader:   getEnv("WORLDPAY_USER_AGENT", "worldpay-gateway"),
			PaymentType:       getEnv("WORLDPAY_PAYMENT_TYPE", ""),
			UseBillingAddress: getEnvAsBool("WORLDPAY_USE_BILLING_ADDRESS", true),
			SuccessURL:        getEnv("WORLDPAY_SUCCESS_URL", ""),
			FailureURL:        getEnv("WORLDPAY_FAILURE_URL", ""),
			CancelURL:         getEnv("WORLDPAY_CANCEL_URL", ""),
		},
		Origin: OriginConfig{
			HostSuffix:    getEnv("NOTIFY_ORIGIN_SUFFIX", "worldpay.com"),
			IPPrefixes:    getEnvAsList("NOTIFY_ORIGIN_IP_PREFIXES", "195.35.90.,195.35.91."),
			LookupTimeout: time.Duration(getEnvAsInt("NOTIFY_DNS_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	// Validate required fields
	if cfg.Worldpay.Merchant == "" {
		return nil, fmt.Errorf("WORLDPAY_MERCHANT is required")
	}
	if cfg.Worldpay.Password == "" {
		return nil, fmt.Errorf("WORLDPAY_PASSWORD is required")
	}
	if cfg.Worldpay.Installation == "" {
		return nil, fmt.Errorf("WORLDPAY_INSTALLATION is required")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key, defaultValue string) []string {
	valueStr := getEnv(key, defaultValue)
	if valueStr == "" {
		return nil
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Package config loads and validates the inventory server configuration
// from a TOML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Version is the supported configuration file format version.
const Version = "0.1.0"

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	SigningSecret        string `toml:"signing_secret"`         // HMAC secret for API tokens
	DefaultTokenValidity string `toml:"default_token_validity"` // Default token validity duration
	ClockSkew            string `toml:"clock_skew"`             // Allowed clock skew for time-based claims
	TestUserToken        string `toml:"-"`                      // Token for internal unit test mode
}

// GetDefaultTokenValidity returns the default token validity as time.Duration
func (a *AuthConfig) GetDefaultTokenValidity() (time.Duration, error) {
	return ParseDuration(a.DefaultTokenValidity)
}

// GetClockSkew returns the allowed clock skew as time.Duration
func (a *AuthConfig) GetClockSkew() (time.Duration, error) {
	return ParseDuration(a.ClockSkew)
}

// GetDefaultTokenValidityOrDefault returns the default token validity as
// time.Duration or panics if the value is invalid
func (a *AuthConfig) GetDefaultTokenValidityOrDefault() time.Duration {
	duration, err := a.GetDefaultTokenValidity()
	if err != nil {
		panic(fmt.Sprintf("invalid default token validity: %v", err))
	}
	return duration
}

// GetClockSkewOrDefault returns the allowed clock skew as time.Duration
// or panics if the value is invalid
func (a *AuthConfig) GetClockSkewOrDefault() time.Duration {
	duration, err := a.GetClockSkew()
	if err != nil {
		panic(fmt.Sprintf("invalid clock skew: %v", err))
	}
	return duration
}

// DeviceConfig holds device-credential related configuration
type DeviceConfig struct {
	CredentialEncryptionKey string `toml:"credential_encryption_key"` // Passphrase used to seal management credentials
}

// ConfigParam holds all configuration parameters for the inventory service
type ConfigParam struct {
	// Configuration version
	FormatVersion string `toml:"format_version"` // Version of this configuration file format

	// Server configuration
	ServerHostName     string `toml:"server_hostname"`       // Hostname for the server
	ServerPort         string `toml:"server_port"`           // Port for the API server
	HandleCORS         bool   `toml:"handle_cors"`           // Whether to handle CORS
	MaxRequestBodySize int64  `toml:"max_request_body_size"` // Maximum size of request body in bytes

	// CORSAllowedOrigins lists the origins allowed when handle_cors is set.
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`

	// Auth configuration
	Auth AuthConfig `toml:"auth"`

	// Device configuration
	Device DeviceConfig `toml:"device"`

	// Database configuration
	DB struct {
		Host     string `toml:"host"`     // Database host
		Port     int    `toml:"port"`     // Database port
		DBName   string `toml:"dbname"`   // Database name
		User     string `toml:"user"`     // Database user
		Password string `toml:"password"` // Database password
		SSLMode  string `toml:"sslmode"`  // SSL mode for database connection
	} `toml:"db"`
}

var cfg *ConfigParam

// Config returns the current configuration
func Config() *ConfigParam {
	return cfg
}

// DSN returns the database connection string
func (c *ConfigParam) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.DBName, c.DB.SSLMode)
}

// InventoryDSN returns the DSN for the inventory database
func InventoryDSN() string {
	return cfg.DSN()
}

// ParseDuration parses a duration string in the format "<number><unit>" where unit can be:
// - y: years
// - d: days
// - h: hours
// - m: minutes
func ParseDuration(input string) (time.Duration, error) {
	if len(input) < 2 {
		return 0, fmt.Errorf("invalid input format")
	}

	unit := input[len(input)-1:]
	valueStr := input[:len(input)-1]
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", err)
	}

	var duration time.Duration
	switch unit {
	case "d":
		duration = time.Duration(value) * 24 * time.Hour
	case "h":
		duration = time.Duration(value) * time.Hour
	case "m":
		duration = time.Duration(value) * time.Minute
	case "y":
		// Assuming 1 year = 365 days for simplicity
		duration = time.Duration(value) * 365 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("unknown time unit: %s", unit)
	}

	return duration, nil
}

// ValidateConfig checks if all required configuration values are present and valid
func ValidateConfig(cfg *ConfigParam) error {
	if err := validateConfigFormatVersion(cfg); err != nil {
		return err
	}
	if err := validateServerConfig(cfg); err != nil {
		return err
	}
	if err := validateAuthConfig(cfg); err != nil {
		return err
	}
	if err := validateDBConfig(cfg); err != nil {
		return err
	}
	return nil
}

func validateConfigFormatVersion(cfg *ConfigParam) error {
	if cfg.FormatVersion != Version {
		return fmt.Errorf("unsupported config file format version: %s", cfg.FormatVersion)
	}
	return nil
}

func validateServerConfig(cfg *ConfigParam) error {
	if cfg.ServerPort == "" {
		return fmt.Errorf("server_port is required")
	}
	if cfg.MaxRequestBodySize <= 0 {
		cfg.MaxRequestBodySize = 1 << 20
	}
	return nil
}

func validateAuthConfig(cfg *ConfigParam) error {
	if cfg.Auth.SigningSecret == "" {
		return fmt.Errorf("auth.signing_secret is required")
	}
	if cfg.Auth.DefaultTokenValidity == "" {
		return fmt.Errorf("auth.default_token_validity is required")
	}
	if _, err := ParseDuration(cfg.Auth.DefaultTokenValidity); err != nil {
		return fmt.Errorf("invalid auth.default_token_validity: %v", err)
	}
	if cfg.Auth.ClockSkew == "" {
		return fmt.Errorf("auth.clock_skew is required")
	}
	if _, err := ParseDuration(cfg.Auth.ClockSkew); err != nil {
		return fmt.Errorf("invalid auth.clock_skew: %v", err)
	}
	cfg.Auth.TestUserToken = "test-user-token"
	return nil
}

func validateDBConfig(cfg *ConfigParam) error {
	if cfg.DB.Host == "" {
		return fmt.Errorf("db.host is required")
	}
	if cfg.DB.Port <= 0 {
		return fmt.Errorf("db.port must be positive")
	}
	if cfg.DB.DBName == "" {
		return fmt.Errorf("db.dbname is required")
	}
	if cfg.DB.User == "" {
		return fmt.Errorf("db.user is required")
	}
	if cfg.DB.Password == "" {
		return fmt.Errorf("db.password is required")
	}
	if cfg.DB.SSLMode == "" {
		return fmt.Errorf("db.sslmode is required")
	}
	return nil
}

// LoadConfig loads configuration from a file
func LoadConfig(filename string) error {
	if filename == "" {
		return fmt.Errorf("config filename is required")
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	c := &ConfigParam{}
	if _, err := toml.Decode(string(content), c); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}

	if err := ValidateConfig(c); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	// Generate a credential sealing key if not set. This is intended for eval
	// installs only; any real deployment should set one in the config file.
	if c.Device.CredentialEncryptionKey == "" {
		c.Device.CredentialEncryptionKey = "invsrv.switchscope.io"
	}

	cfg = c
	return nil
}

var isTest = false

func IsTest() bool {
	return isTest
}

func SetTestMode(test bool) {
	isTest = test
}

// TestInit installs an in-memory configuration suitable for unit tests.
func TestInit() {
	isTest = true
	c := &ConfigParam{
		FormatVersion:      Version,
		ServerHostName:     "localhost",
		ServerPort:         "8678",
		HandleCORS:         true,
		MaxRequestBodySize: 1 << 20,
	}
	c.Auth.SigningSecret = "unit-test-signing-secret"
	c.Auth.DefaultTokenValidity = "1h"
	c.Auth.ClockSkew = "5m"
	c.Auth.TestUserToken = "test-user-token"
	c.Device.CredentialEncryptionKey = "unit-test-sealing-key"
	c.DB.Host = "localhost"
	c.DB.Port = 5432
	c.DB.DBName = "switchscope"
	c.DB.User = "switchscope"
	c.DB.Password = "abc@123"
	c.DB.SSLMode = "disable"
	cfg = c
}

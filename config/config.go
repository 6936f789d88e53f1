package config

import (
	"fmt"
	"time"

	"github.com/wheelhouse/storefront/logger"
)

// Config is the root configuration for the storefront backend.
type Config struct {
	// Production toggles the hardened cookie contract: Secure cookies with
	// SameSite=None. Development uses SameSite=Lax without Secure.
	Production bool `mapstructure:"production"`

	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Mail    MailConfig    `mapstructure:"mail"`
	Logging logger.Config `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // seconds
}

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI            string `mapstructure:"uri"`
	Database       string `mapstructure:"database"`
	ConnectTimeout int    `mapstructure:"connect_timeout"` // seconds
}

// AuthConfig holds credential-lifecycle settings.
type AuthConfig struct {
	// JWTSecret signs session credentials (HS256).
	JWTSecret string `mapstructure:"jwt_secret"`
	// CookieExpirationDays is the session cookie lifetime.
	CookieExpirationDays int `mapstructure:"cookie_expiration_days"`
	// OtpExpirationMs is the OTP TTL in milliseconds. It doubles as the
	// password-reset token TTL, matching the original deployment contract.
	OtpExpirationMs int `mapstructure:"otp_expiration_ms"`
	// OtpLength is the number of digits in a generated OTP code.
	OtpLength int `mapstructure:"otp_length"`
	// Origin is the public storefront URL used to build reset links and
	// allowed as a credentialed CORS origin.
	Origin string `mapstructure:"origin"`
}

// MailConfig holds outbound SMTP settings.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// ApplyDefaults fills zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Mongo.URI == "" {
		c.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "storefront"
	}
	if c.Mongo.ConnectTimeout == 0 {
		c.Mongo.ConnectTimeout = 10
	}
	if c.Auth.CookieExpirationDays == 0 {
		c.Auth.CookieExpirationDays = 7
	}
	if c.Auth.OtpExpirationMs == 0 {
		c.Auth.OtpExpirationMs = 300000
	}
	if c.Auth.OtpLength == 0 {
		c.Auth.OtpLength = 4
	}
	if c.Auth.Origin == "" {
		c.Auth.Origin = "http://localhost:3000"
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.Mail.From == "" {
		c.Mail.From = c.Mail.Username
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Server.Port)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required (set JWT_SECRET)")
	}
	if c.Auth.CookieExpirationDays < 1 {
		return fmt.Errorf("auth.cookie_expiration_days must be positive (got: %d)", c.Auth.CookieExpirationDays)
	}
	if c.Auth.OtpExpirationMs < 1000 {
		return fmt.Errorf("auth.otp_expiration_ms must be at least 1000 (got: %d)", c.Auth.OtpExpirationMs)
	}
	if c.Auth.OtpLength < 4 || c.Auth.OtpLength > 10 {
		return fmt.Errorf("auth.otp_length must be between 4 and 10 (got: %d)", c.Auth.OtpLength)
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required (set MONGO_URI)")
	}
	return c.Logging.Validate()
}

// OtpTTL returns the ephemeral-record TTL as a duration.
func (c *AuthConfig) OtpTTL() time.Duration {
	return time.Duration(c.OtpExpirationMs) * time.Millisecond
}

// CookieMaxAge returns the session cookie lifetime in seconds.
func (c *AuthConfig) CookieMaxAge() int {
	return c.CookieExpirationDays * 24 * 60 * 60
}

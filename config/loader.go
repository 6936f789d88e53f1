package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that feed them.
// The names on the right are the deployment contract and must not change.
var envBindings = map[string]string{
	"production":                  "PRODUCTION",
	"server.host":                 "HOST",
	"server.port":                 "PORT",
	"mongo.uri":                   "MONGO_URI",
	"mongo.database":              "MONGO_DATABASE",
	"auth.jwt_secret":             "JWT_SECRET",
	"auth.cookie_expiration_days": "COOKIE_EXPIRATION_DAYS",
	"auth.otp_expiration_ms":      "OTP_EXPIRATION_TIME",
	"auth.otp_length":             "OTP_LENGTH",
	"auth.origin":                 "ORIGIN",
	"mail.host":                   "SMTP_HOST",
	"mail.port":                   "SMTP_PORT",
	"mail.username":               "SMTP_USER",
	"mail.password":               "SMTP_PASS",
	"mail.from":                   "MAIL_FROM",
	"logging.level":               "LOG_LEVEL",
	"logging.format":              "LOG_FORMAT",
}

// Load reads configuration from the environment, preceded by an optional
// .env file, applies defaults and validates the result.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

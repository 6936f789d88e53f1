// Package config loads storefront backend configuration from environment
// variables and an optional .env file.
//
// Every section follows the ApplyDefaults/Validate convention: Load fills
// zero values with defaults and fails fast at boot when a required value
// (JWT secret, Mongo URI) is missing or out of range.
//
// Recognized variables include PRODUCTION, PORT, ORIGIN, MONGO_URI,
// MONGO_DATABASE, JWT_SECRET, COOKIE_EXPIRATION_DAYS, OTP_EXPIRATION_TIME
// (milliseconds, also the reset-token TTL), OTP_LENGTH, SMTP_HOST,
// SMTP_PORT, SMTP_USER, SMTP_PASS, MAIL_FROM, LOG_LEVEL and LOG_FORMAT.
package config

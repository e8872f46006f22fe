package models

import "strings"

// WildcardOrigin is the CORS_ORIGINS value that permits any origin
const WildcardOrigin = "*"

// redactedValue replaces secrets when settings are printed
const redactedValue = "********"

// Settings holds all configuration for the application.
// It is resolved once at process start and never mutated afterwards.
type Settings struct {
	// Application
	AppName     string `json:"app_name"`
	AppVersion  string `json:"app_version"`
	Debug       bool   `json:"debug"`
	Environment string `json:"environment"`

	// Database
	DatabaseURL string `json:"database_url"`

	// Redis
	RedisURL string `json:"redis_url"`

	// Authentication & Security
	JWTSecretKey            string `json:"jwt_secret_key"`
	JWTAlgorithm            string `json:"jwt_algorithm"`
	JWTExpireMinutes        int    `json:"jwt_expire_minutes"`
	JWTRefreshExpireMinutes int    `json:"jwt_refresh_expire_minutes"`

	// Password hashing
	PasswordSaltRounds int `json:"password_salt_rounds"`

	// API
	APIV1Prefix string `json:"api_v1_prefix"`

	// CORS, raw CORS_ORIGINS value. Use CORSOrigins for the parsed list.
	CORSOriginsRaw string `json:"-"`

	// File upload
	AWSAccessKeyID     string `json:"aws_access_key_id"`
	AWSSecretAccessKey string `json:"aws_secret_access_key"`
	AWSRegion          string `json:"aws_region"`
	S3BucketName       string `json:"s3_bucket_name"`

	// AI services
	OpenAIAPIKey    string `json:"openai_api_key"`
	AnthropicAPIKey string `json:"anthropic_api_key"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// CORSOrigins returns the allowed origins derived from CORS_ORIGINS.
// A fresh slice is returned on every call so callers cannot alter the settings.
func (s *Settings) CORSOrigins() []string {
	return ParseCORSOrigins(s.CORSOriginsRaw)
}

// AllowsAnyOrigin reports whether the CORS policy admits every origin
func (s *Settings) AllowsAnyOrigin() bool {
	for _, origin := range s.CORSOrigins() {
		if origin == WildcardOrigin {
			return true
		}
	}
	return false
}

// ParseCORSOrigins splits a CORS_ORIGINS value into its origins.
// "*" yields ["*"]; anything else is split on commas and each entry trimmed.
// Empty entries are kept and order is preserved.
func ParseCORSOrigins(raw string) []string {
	if raw == WildcardOrigin {
		return []string{WildcardOrigin}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origins = append(origins, strings.TrimSpace(part))
	}
	return origins
}

// Redacted returns a copy of the settings with credentials masked
func (s *Settings) Redacted() Settings {
	r := *s
	mask := func(v string) string {
		if v == "" {
			return ""
		}
		return redactedValue
	}

	r.DatabaseURL = mask(r.DatabaseURL)
	r.RedisURL = mask(r.RedisURL)
	r.JWTSecretKey = mask(r.JWTSecretKey)
	r.AWSAccessKeyID = mask(r.AWSAccessKeyID)
	r.AWSSecretAccessKey = mask(r.AWSSecretAccessKey)
	r.OpenAIAPIKey = mask(r.OpenAIAPIKey)
	r.AnthropicAPIKey = mask(r.AnthropicAPIKey)
	return r
}

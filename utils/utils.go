package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"reading-app-backend/models"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Environment variable names
const (
	EnvAppName                 = "APP_NAME"
	EnvAppVersion              = "APP_VERSION"
	EnvDebug                   = "DEBUG"
	EnvEnvironment             = "ENVIRONMENT"
	EnvDatabaseURL             = "DATABASE_URL"
	EnvRedisURL                = "REDIS_URL"
	EnvJWTSecretKey            = "JWT_SECRET_KEY"
	EnvJWTAlgorithm            = "JWT_ALGORITHM"
	EnvJWTExpireMinutes        = "JWT_EXPIRE_MINUTES"
	EnvJWTRefreshExpireMinutes = "JWT_REFRESH_EXPIRE_MINUTES"
	EnvPasswordSaltRounds      = "PASSWORD_SALT_ROUNDS"
	EnvAPIV1Prefix             = "API_V1_PREFIX"
	EnvCORSOrigins             = "CORS_ORIGINS"
	EnvAWSAccessKeyID          = "AWS_ACCESS_KEY_ID"
	EnvAWSSecretAccessKey      = "AWS_SECRET_ACCESS_KEY"
	EnvAWSRegion               = "AWS_REGION"
	EnvS3BucketName            = "S3_BUCKET_NAME"
	EnvOpenAIAPIKey            = "OPENAI_API_KEY"
	EnvAnthropicAPIKey         = "ANTHROPIC_API_KEY"
	EnvLogLevel                = "LOG_LEVEL"
	EnvLogFormat               = "LOG_FORMAT"
)

// defaults holds the value used for every variable when it is absent
var defaults = map[string]string{
	EnvAppName:                 "Reading App",
	EnvAppVersion:              "0.1.0",
	EnvDebug:                   "false",
	EnvEnvironment:             "production",
	EnvDatabaseURL:             "",
	EnvRedisURL:                "",
	EnvJWTSecretKey:            "",
	EnvJWTAlgorithm:            "HS256",
	EnvJWTExpireMinutes:        "30",
	EnvJWTRefreshExpireMinutes: "10080",
	EnvPasswordSaltRounds:      "12",
	EnvAPIV1Prefix:             "/api/v1",
	EnvCORSOrigins:             models.WildcardOrigin,
	EnvAWSAccessKeyID:          "",
	EnvAWSSecretAccessKey:      "",
	EnvAWSRegion:               "us-east-1",
	EnvS3BucketName:            "",
	EnvOpenAIAPIKey:            "",
	EnvAnthropicAPIKey:         "",
	EnvLogLevel:                "INFO",
	EnvLogFormat:               "text",
}

// LoadOptions controls where Load reads its inputs from
type LoadOptions struct {
	// EnvFile is the override file path. Empty means DefaultEnvFile.
	EnvFile string
	// Environ is the ambient environment in os.Environ form. Nil means os.Environ().
	Environ []string
}

// GetConfig resolves the settings from .env and the process environment
func GetConfig() (*models.Settings, error) {
	settings, err := Load(LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return settings, nil
}

// Load merges the override file into the ambient environment and resolves
// every setting from the merged view, applying defaults for absent keys.
func Load(opts LoadOptions) (*models.Settings, error) {
	path := opts.EnvFile
	if path == "" {
		path = DefaultEnvFile
	}
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	overrides, err := ParseOverrideFile(path)
	if err != nil {
		return nil, err
	}

	return Resolve(MergeEnvironment(environ, overrides))
}

// Resolve builds the settings from an already merged environment
func Resolve(env map[string]string) (*models.Settings, error) {
	v, err := newViper(env)
	if err != nil {
		return nil, err
	}

	settings := &models.Settings{
		AppName:            v.GetString(EnvAppName),
		AppVersion:         v.GetString(EnvAppVersion),
		Debug:              parseBool(v.GetString(EnvDebug)),
		Environment:        v.GetString(EnvEnvironment),
		DatabaseURL:        v.GetString(EnvDatabaseURL),
		RedisURL:           v.GetString(EnvRedisURL),
		JWTSecretKey:       v.GetString(EnvJWTSecretKey),
		JWTAlgorithm:       v.GetString(EnvJWTAlgorithm),
		APIV1Prefix:        v.GetString(EnvAPIV1Prefix),
		CORSOriginsRaw:     v.GetString(EnvCORSOrigins),
		AWSAccessKeyID:     v.GetString(EnvAWSAccessKeyID),
		AWSSecretAccessKey: v.GetString(EnvAWSSecretAccessKey),
		AWSRegion:          v.GetString(EnvAWSRegion),
		S3BucketName:       v.GetString(EnvS3BucketName),
		OpenAIAPIKey:       v.GetString(EnvOpenAIAPIKey),
		AnthropicAPIKey:    v.GetString(EnvAnthropicAPIKey),
		LogLevel:           v.GetString(EnvLogLevel),
		LogFormat:          v.GetString(EnvLogFormat),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvJWTExpireMinutes, &settings.JWTExpireMinutes},
		{EnvJWTRefreshExpireMinutes, &settings.JWTRefreshExpireMinutes},
		{EnvPasswordSaltRounds, &settings.PasswordSaltRounds},
	}
	for _, field := range ints {
		n, err := parseInt(field.key, v.GetString(field.key))
		if err != nil {
			return nil, err
		}
		*field.dst = n
	}

	return settings, nil
}

// newViper seeds a viper instance with the defaults and the known keys of env.
// Only exact variable names are copied so that differently cased duplicates
// cannot collide once viper folds keys to lower case.
func newViper(env map[string]string) (*viper.Viper, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	setDefaults(v)

	known := make(map[string]interface{}, len(defaults))
	for key := range defaults {
		if value, ok := env[key]; ok {
			known[key] = value
		}
	}
	if err := v.MergeConfigMap(known); err != nil {
		return nil, fmt.Errorf("merge environment: %w", err)
	}

	return v, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func parseBool(raw string) bool {
	return strings.EqualFold(raw, "true")
}

func parseInt(key, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ConfigError{Key: key, Value: raw, Err: err}
	}
	return n, nil
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ") // 4 spaces indent
	if err != nil {
		fmt.Println("Failed to generate JSON:", err)
		return ""
	}
	return string(prettyJSON)
}

// GenerateUUID returns a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

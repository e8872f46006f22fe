package utils

import (
	"fmt"
	"strings"

	"reading-app-backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const productionEnvironment = "production"

var lintValidator = validator.New()

// Lint returns human-readable warnings about risky but accepted settings.
// Warnings never prevent startup.
func Lint(s *models.Settings) []string {
	var warnings []string

	if s.AllowsAnyOrigin() {
		warnings = append(warnings, "CORS_ORIGINS allows any origin while credentials are allowed; any site can make credentialed requests")
	}

	production := strings.EqualFold(s.Environment, productionEnvironment)
	if production && s.JWTSecretKey == "" {
		warnings = append(warnings, "JWT_SECRET_KEY is empty in the production environment")
	}
	if production && s.Debug {
		warnings = append(warnings, "DEBUG is enabled in the production environment; internal errors expose stack traces")
	}

	if jwt.GetSigningMethod(s.JWTAlgorithm) == nil {
		warnings = append(warnings, fmt.Sprintf("JWT_ALGORITHM %q is not a known signing method", s.JWTAlgorithm))
	}

	if s.PasswordSaltRounds < bcrypt.MinCost || s.PasswordSaltRounds > bcrypt.MaxCost {
		warnings = append(warnings, fmt.Sprintf("PASSWORD_SALT_ROUNDS %d is outside the bcrypt range %d-%d",
			s.PasswordSaltRounds, bcrypt.MinCost, bcrypt.MaxCost))
	}

	urls := []struct {
		key   string
		value string
	}{
		{EnvDatabaseURL, s.DatabaseURL},
		{EnvRedisURL, s.RedisURL},
	}
	for _, u := range urls {
		if err := lintValidator.Var(u.value, "omitempty,uri"); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s is set but is not a valid URL", u.key))
		}
	}

	return warnings
}

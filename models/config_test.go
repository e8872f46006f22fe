package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCORSOrigins(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"wildcard", "*", []string{"*"}},
		{"single origin", "http://a.com", []string{"http://a.com"}},
		{"trimmed and ordered", "http://a.com, http://b.com", []string{"http://a.com", "http://b.com"}},
		{"empty segments kept", "http://a.com,,http://b.com,", []string{"http://a.com", "", "http://b.com", ""}},
		{"padded wildcard trims to wildcard", " * ", []string{"*"}},
		{"empty value", "", []string{""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseCORSOrigins(tc.raw))
		})
	}
}

func TestCORSOriginsReturnsCopy(t *testing.T) {
	s := &Settings{CORSOriginsRaw: "http://a.com,http://b.com"}

	origins := s.CORSOrigins()
	origins[0] = "http://evil.com"

	assert.Equal(t, []string{"http://a.com", "http://b.com"}, s.CORSOrigins())
}

func TestAllowsAnyOrigin(t *testing.T) {
	assert.True(t, (&Settings{CORSOriginsRaw: "*"}).AllowsAnyOrigin())
	assert.True(t, (&Settings{CORSOriginsRaw: "http://a.com, *"}).AllowsAnyOrigin())
	assert.False(t, (&Settings{CORSOriginsRaw: "http://a.com"}).AllowsAnyOrigin())
}

func TestRedacted(t *testing.T) {
	s := Settings{
		AppName:            "Reading App",
		DatabaseURL:        "postgres://user:pw@db/app",
		JWTSecretKey:       "secret",
		AWSSecretAccessKey: "aws-secret",
		OpenAIAPIKey:       "",
	}

	r := s.Redacted()

	assert.Equal(t, "Reading App", r.AppName)
	assert.Equal(t, redactedValue, r.DatabaseURL)
	assert.Equal(t, redactedValue, r.JWTSecretKey)
	assert.Equal(t, redactedValue, r.AWSSecretAccessKey)
	assert.Empty(t, r.OpenAIAPIKey)
	assert.Equal(t, "secret", s.JWTSecretKey, "original must be untouched")
}

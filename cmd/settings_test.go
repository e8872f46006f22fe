package cmd

import (
	"bytes"
	"testing"

	"reading-app-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSettingsCommand(t *testing.T) {
	t.Setenv("APP_NAME", "CLI App")
	t.Setenv("JWT_SECRET_KEY", "top-secret")
	t.Setenv("CORS_ORIGINS", "http://a.com, http://b.com")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"settings"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	out := stdout.String()
	assert.Equal(t, "CLI App", gjson.Get(out, "app_name").String())
	assert.Equal(t, "********", gjson.Get(out, "jwt_secret_key").String())
	assert.NotContains(t, out, "top-secret")

	var origins []string
	for _, origin := range gjson.Get(out, "cors_origins").Array() {
		origins = append(origins, origin.String())
	}
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, origins)
	assert.False(t, gjson.Get(out, "CORSOriginsRaw").Exists())
}

func TestSettingsCommandConfigError(t *testing.T) {
	t.Setenv("JWT_EXPIRE_MINUTES", "not-a-number")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"settings"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_EXPIRE_MINUTES")
	assert.Empty(t, stdout.String())
}

func TestSetGinMode(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	setGinMode(&models.Settings{Debug: true})
	assert.Equal(t, gin.DebugMode, gin.Mode())

	setGinMode(&models.Settings{Debug: false})
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}

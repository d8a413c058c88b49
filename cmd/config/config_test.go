package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	FlagHost, FlagPort, FlagLogLevel = "0.0.0.0", "5000", "info"
	EnableHTTPS, EnableMCP, TrustedSubnet = false, false, ""

	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("ENABLE_MCP", "1")
	t.Setenv("TRUSTED_SUBNET", "10.0.0.0/8")

	applyEnv()

	assert.Equal(t, "127.0.0.1", FlagHost)
	assert.Equal(t, "8080", FlagPort)
	assert.Equal(t, "debug", FlagLogLevel)
	assert.True(t, EnableHTTPS)
	assert.True(t, EnableMCP)
	assert.Equal(t, "10.0.0.0/8", TrustedSubnet)
	assert.Equal(t, "127.0.0.1:8080", Addr())
}

func TestApplyEnv_KeepsDefaults(t *testing.T) {
	FlagHost, FlagPort, FlagLogLevel = "0.0.0.0", "5000", "info"
	EnableHTTPS = false

	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENABLE_HTTPS", "maybe")

	applyEnv()

	assert.Equal(t, "5000", FlagPort)
	assert.False(t, EnableHTTPS)
	assert.Equal(t, "0.0.0.0:5000", Addr())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("UPI_CONFIG_TEST_PORT=7070\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("UPI_CONFIG_TEST_PORT") })

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "7070", os.Getenv("UPI_CONFIG_TEST_PORT"))

	assert.Error(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

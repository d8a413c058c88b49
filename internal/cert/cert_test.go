package cert

import (
	"crypto/tls"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	certPEM, keyPEM, err := Generate()
	require.NoError(t, err)

	pair, err := tls.X509KeyPair(certPEM, keyPEM)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Certificate)
}

func TestEnsure(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "server.crt")
	keyPath := filepath.Join(dir, "server.key")

	assert.False(t, Exists(certPath, keyPath))

	created, err := Ensure(certPath, keyPath)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, Exists(certPath, keyPath))

	_, err = tls.LoadX509KeyPair(certPath, keyPath)
	require.NoError(t, err)

	created, err = Ensure(certPath, keyPath)
	require.NoError(t, err)
	assert.False(t, created)
}

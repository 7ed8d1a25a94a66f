package config

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeVault(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "root-token", r.Header.Get("X-Vault-Token"))
		switch r.URL.Path {
		case "/v1/secret/data/yogacoach":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"data":{"EMBEDDING_MODEL":"ai/all-minilm","EMBEDDING_CONCURRENCY":4},"metadata":{"version":1}}}`)) //nolint:errcheck
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors":[]}`)) //nolint:errcheck
		}
	}))
}

func TestNewVaultProvider_Validation(t *testing.T) {
	tests := map[string]struct {
		server, token, mount, secret string
	}{
		"missing-server": {server: "", token: "t", mount: "secret", secret: "yogacoach"},
		"missing-token":  {server: "http://localhost:8200", token: "", mount: "secret", secret: "yogacoach"},
		"missing-mount":  {server: "http://localhost:8200", token: "t", mount: "", secret: "yogacoach"},
		"missing-secret": {server: "http://localhost:8200", token: "t", mount: "secret", secret: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mount, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	server := newFakeVault(t)
	defer server.Close()

	vp, err := NewVaultProvider(server.URL, "root-token", "secret", "yogacoach")
	require.NoError(t, err)

	tests := map[string]struct {
		provider  VaultProvider
		key       string
		expected  string
		expectErr bool
	}{
		"found":          {provider: vp, key: "EMBEDDING_MODEL", expected: "ai/all-minilm"},
		"missing-key":    {provider: vp, key: "HTTP_PORT", expectErr: true},
		"not-a-string":   {provider: vp, key: "EMBEDDING_CONCURRENCY", expectErr: true},
		"missing-secret": {provider: VaultProvider{client: vp.client, mountPath: "secret", secretPath: "other"}, key: "EMBEDDING_MODEL", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.provider.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	logger := log.New(&strings.Builder{}, "", 0)

	_, err := InitVaultProvider{Logger: logger, Server: Disabled}.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = InitVaultProvider{Logger: logger, Server: "http://localhost:8200", Token: Disabled, MountPath: "secret", SecretPath: "yogacoach"}.Initialize(context.Background())
	assert.Error(t, err)
}

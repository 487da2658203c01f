package google

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFileForAccount(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/cache")

	tests := []struct {
		name     string
		account  string
		expected string
	}{
		{name: "default account", account: "default", expected: "/cache/labrecords/google.token"},
		{name: "empty account", account: "", expected: "/cache/labrecords/google.token"},
		{name: "named account", account: "work", expected: "/cache/labrecords/google-work.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenFileForAccount(tt.account))
		})
	}
}

func TestHasTokenForAccount(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)

	assert.False(t, HasTokenForAccount("work"))

	dir := filepath.Join(cache, "labrecords")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "google-work.token"), []byte("access refresh"), 0600))

	assert.True(t, HasTokenForAccount("work"))
	assert.False(t, HasToken(), "default account has no token")
}

func TestParseTokenFile(t *testing.T) {
	tok, err := parseTokenFile("access-token refresh-token\n")

	require.NoError(t, err)
	assert.Equal(t, "access-token", tok.AccessToken)
	assert.Equal(t, "refresh-token", tok.RefreshToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.False(t, tok.Valid(), "cached token must be treated as expired so it refreshes")
}

func TestParseTokenFileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "one field", data: "access-only"},
		{name: "three fields", data: "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTokenFile(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestGetAuthURLRequiresCredentials(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	_, err := GetAuthURL()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_ID")
}

func TestGetAuthURL(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")

	url, err := GetAuthURL()

	require.NoError(t, err)
	assert.Contains(t, url, "client_id=client-id")
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "gmail.readonly")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8000}, "localhost:8000"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Port: 8000}, ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8000", expectedAddr: NetAddress{Host: "localhost", Port: 8000}},
		{name: "valid IPv4", input: "0.0.0.0:8080", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 8080}},
		{name: "all interfaces", input: ":8000", expectedAddr: NetAddress{Port: 8000}},
		{name: "missing colon", input: "localhost8000", errorMsg: "need address in a form `host:port`"},
		{name: "too many colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be in range"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be in range"},
		{name: "hostname", input: "api.cuide.me:8000", errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8000",
		"-d", "postgres://u:p@localhost/cuideme",
		"-l", "/tmp/session.db",
		"-s", "http://api.local",
		"-config", "/etc/cuide-me.yaml",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-request-timeout", "10s",
		"-verify-token", "verify",
		"-log-file", "/tmp/dashboard.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost/cuideme", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.Local.Path)
	assert.Equal(t, "http://api.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/etc/cuide-me.yaml", cfg.FilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "verify", cfg.App.VerifyToken)
	assert.Equal(t, "/tmp/dashboard.log", cfg.App.LogFile)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.FilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":     {"-unknown"},
		"invalid address":  {"-a", "nope"},
		"invalid duration": {"-token-duration", "soon"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseFlags(args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}

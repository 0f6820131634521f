package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "fretex",
		},
		"routing": map[string]any{
			"baseUrl": "https://api.openrouteservice.org",
			"apiKey":  "",
		},
		"qrcode": map[string]any{
			"baseUrl": "http://localhost:5173",
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{
			name:     "aligns segment casing with existing yaml keys",
			rawKey:   "POSTGRES_SSLMODE",
			expected: "postgres.sslMode",
		},
		{
			name:     "nested camelCase key",
			rawKey:   "ROUTING_BASEURL",
			expected: "routing.baseUrl",
		},
		{
			name:     "api key override",
			rawKey:   "ROUTING_APIKEY",
			expected: "routing.apiKey",
		},
		{
			name:     "unknown key falls back to lowercase path",
			rawKey:   "SOMETHING_ELSE",
			expected: "something.else",
		},
		{
			name:     "top level key",
			rawKey:   "QRCODE_BASEURL",
			expected: "qrcode.baseUrl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "baseurl", normalizeToken("base_url"))
	assert.Equal(t, "topicid", normalizeToken("topicId"))
}

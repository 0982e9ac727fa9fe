package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    NetAddress
	}{
		{
			name:  "localhost",
			input: "localhost:8080",
			want:  NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:  "IP address",
			input: "127.0.0.1:9090",
			want:  NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:  "empty host",
			input: ":8080",
			want:  NetAddress{Host: "", Port: 8080},
		},
		{
			name:    "missing port",
			input:   "localhost",
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			input:   "localhost:http",
			wantErr: true,
		},
		{
			name:    "zero port",
			input:   "localhost:0",
			wantErr: true,
		},
		{
			name:    "bad IP",
			input:   "999.999.999.999:8080",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9999")
	t.Setenv("APP_MANIFEST_PATH", "/etc/demo/manifest.toml")
	t.Setenv("APP_SPEC_PATH", "/tmp/openapi.json")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "/etc/demo/manifest.toml", cfg.App.ManifestPath)
	assert.Equal(t, "/tmp/openapi.json", cfg.App.SpecPath)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"server": {"http_address": "localhost:7070"},
		"app": {"manifest_path": "manifest.toml", "spec_path": "openapi.json"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, "manifest.toml", cfg.App.ManifestPath)
	assert.Equal(t, "openapi.json", cfg.App.SpecPath)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestBuilder_MergePriority(t *testing.T) {
	// env-style config wins over the json-style one appended after it
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Server: Server{HTTPAddress: "localhost:1111"}},
		&Config{
			Server: Server{HTTPAddress: "localhost:2222"},
			App:    App{ManifestPath: "from-json.toml"},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, "from-json.toml", cfg.App.ManifestPath)
}

func TestBuilder_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultManifestPath, cfg.App.ManifestPath)
	assert.Empty(t, cfg.App.SpecPath)
}

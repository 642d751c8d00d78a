package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {"owner": "carol", "delete_failure_policy": "reload"},
		"adapter": {"http_address": "http://localhost:8080/todo", "request_timeout": "10s"},
		"workers": {"reload_interval": 60000000000},
		"server": {"http_address": "localhost:8081"},
		"storage": {"db": {"dsn": "file.db"}}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "carol", cfg.App.Owner)
	assert.Equal(t, DeleteFailureReload, cfg.App.DeleteFailurePolicy)
	assert.Equal(t, "http://localhost:8080/todo", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.ReloadInterval)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":"soon"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestDuration_RejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceOverridesEarlier(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Owner: "from-env"}},
		&StructuredConfig{Adapter: Adapter{RequestTimeout: 3 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Owner)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRemoteAddress, cfg.Adapter.HTTPAddress, "zero fields keep the earlier value")
	assert.Equal(t, DeleteFailureKeep, cfg.App.DeleteFailurePolicy)
}

func TestBuild_RejectsUnknownPolicy(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{DeleteFailurePolicy: "rollback"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"owner": "json-owner"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "json-owner", cfg.App.Owner)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── getStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_SourcePriority(t *testing.T) {
	t.Setenv("APP_OWNER", "env-owner")
	t.Setenv("ADAPTER_ADDRESS", "http://env.example/todo")

	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"request_timeout": "7s"},
	})

	cfg, err := getStructuredConfig([]string{"-o", "flag-owner", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "flag-owner", cfg.App.Owner)
	assert.Equal(t, "http://env.example/todo", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
}

func TestGetStructuredConfig_BadFlag(t *testing.T) {
	_, err := getStructuredConfig([]string{"-unknown"})
	require.Error(t, err)
}

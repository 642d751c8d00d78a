package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "empty owner", mutate: func(c *ClientConfig) { c.App.Owner = "  " }, want: ErrInvalidAppConfigs},
		{name: "empty policy", mutate: func(c *ClientConfig) { c.App.DeleteFailurePolicy = "" }, want: ErrInvalidAppConfigs},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "negative timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = -time.Second }, want: ErrInvalidAdapterConfigs},
		{name: "negative interval", mutate: func(c *ClientConfig) { c.Workers.ReloadInterval = -time.Second }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	def := defaultConfig()

	assert.NoError(t, (&ServerConfig{Server: def.Server, Storage: def.Storage}).validate())
	assert.ErrorIs(t, (&ServerConfig{Storage: def.Storage}).validate(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&ServerConfig{Server: def.Server}).validate(), ErrInvalidStorageConfigs)
}

func TestDeleteFailurePolicy_Valid(t *testing.T) {
	assert.True(t, DeleteFailureKeep.Valid())
	assert.True(t, DeleteFailureReload.Valid())
	assert.False(t, DeleteFailurePolicy("reinsert").Valid())
}

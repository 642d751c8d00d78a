package config

import (
	"fmt"
	"time"
)

// ClientApp holds client behaviour settings.
type ClientApp struct {
	// Owner is the account key scoping all remote list operations.
	Owner string
	// DeleteFailurePolicy selects the reaction to a failed remote delete.
	DeleteFailurePolicy DeleteFailurePolicy
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote list service.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// ReloadInterval defines how often the list is reloaded; zero disables it.
	ReloadInterval time.Duration
}

// ClientConfig is the client configuration view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Owner:               cfg.App.Owner,
			DeleteFailurePolicy: cfg.App.DeleteFailurePolicy,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{ReloadInterval: cfg.Workers.ReloadInterval},
	}
}

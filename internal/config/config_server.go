package config

import "fmt"

// ServerConfig is the configuration view used by the local stand-in server.
type ServerConfig struct {
	Server  Server
	Storage Storage
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{Server: cfg.Server, Storage: cfg.Storage}
	return serverCfg, serverCfg.validate()
}

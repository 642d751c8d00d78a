// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Only values that are wrong
// for every binary are rejected here; required fields are checked by the
// client and server views.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.DeleteFailurePolicy != "" && !cfg.App.DeleteFailurePolicy.Valid() {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.App.Owner) == "" || !cfg.App.DeleteFailurePolicy.Valid() {
		return ErrInvalidAppConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ReloadInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return ErrInvalidServerConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

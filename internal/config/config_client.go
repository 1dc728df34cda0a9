// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogFile is the path of the client log file.
	LogFile string
}

// ClientDB contains durable tier connection settings.
type ClientDB struct {
	// Driver is one of DriverSQLite, DriverPostgres, DriverFile.
	Driver string
	// DSN is the connection string or file path for Driver.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds durable tier settings.
	DB ClientDB
}

// ClientUI contains terminal UI settings.
type ClientUI struct {
	// CarouselInterval is the carousel auto-rotation period.
	CarouselInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	UI      ClientUI
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
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
		App: ClientApp{LogFile: cfg.App.LogFile},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
		UI: ClientUI{CarouselInterval: cfg.UI.CarouselInterval},
	}
}

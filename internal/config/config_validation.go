// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Field-level requirements are
// enforced on the client view, so the structured config only has to be
// decodable.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres, DriverFile:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.UI.CarouselInterval <= 0 {
		return ErrInvalidUIConfigs
	}

	if cfg.App.LogFile == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

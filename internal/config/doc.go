// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for unitconv.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ConverterConfig: History size, precision and startup selection
//   - StorageConfig: Conversion journal location and retention
//   - ServerConfig: Web front end address, session timeout, rate limit
//   - Watcher: Reloads a config file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (UNITCONV_*)
//   - The file named by --config
//   - ~/.unitconv/config.toml
//   - ~/.unitconv/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	precision := cfg.Converter.Precision
//	v, _ := cfg.Get("server.port")
//
// Extra categories and units:
//
//	[categories]
//	Pressure = ["pascal", "bar", "psi", "atmosphere"]
//
//	[[units]]
//	name = "furlong"
//	factor = 220
//	reference = "yard"
package config

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command.
//
// Command: config [subcommand]
// Short:   Show and edit the configuration file
//
// Subcommands:
//   show (default)      Effective configuration (file, env and defaults)
//   get <key>           One effective value
//   set <key> <value>   Change one value in the config file
//   path                Config file location
//   init                Write a default config file (--force overwrites)
//
// Keys use dot notation, e.g. converter.precision or ui.theme.

package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/unitconv/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(app *App) error {
	p := NewArgParser(app.Args.Raw)

	switch strings.ToLower(p.Subcommand()) {
	case "", "show":
		return configShow(app)
	case "get":
		return configGet(app, p.Positional(1))
	case "set":
		return configSet(app, p.Positional(1), JoinPositionalArgs(p, 2))
	case "path":
		return configPath(app)
	case "init":
		return configInit(app, p.BoolFlag("force"))
	default:
		return &ValidationError{
			Field:   "config subcommand",
			Value:   p.Subcommand(),
			Reason:  "want show, get, set, path or init",
			Example: "unitconv config get converter.precision",
		}
	}
}

func configShow(app *App) error {
	path, exists, err := app.ConfigFile()
	if err != nil {
		return err
	}
	if !exists {
		path = ""
	}

	if app.Args.JSON {
		return NewJSONResponse("config show", ConfigData{Path: path, Config: app.Config}).Write(app.Out)
	}
	if !app.quiet() {
		source := path
		if source == "" {
			source = "defaults"
		}
		fmt.Fprintf(app.Out, "# Effective configuration (%s)\n", source)
	}
	return toml.NewEncoder(app.Out).Encode(app.Config)
}

func configGet(app *App, key string) error {
	if key == "" {
		return ErrMissingArgument("key", "unitconv config get converter.precision")
	}
	value, err := app.Config.Get(key)
	if err != nil {
		return unknownKeyError(key)
	}
	if app.Args.JSON {
		return NewJSONResponse("config get", ConfigValueData{Key: key, Value: value}).Write(app.Out)
	}
	fmt.Fprintln(app.Out, value)
	return nil
}

// configSet edits the file itself, so env overrides and derived defaults
// are never written back.
func configSet(app *App, key, value string) error {
	if key == "" || value == "" {
		return ErrMissingArgument("key and value", "unitconv config set converter.precision 2")
	}
	if !isSettableKey(key) {
		return unknownKeyError(key)
	}

	path, exists, err := app.ConfigFile()
	if err != nil {
		return err
	}

	cfg := config.Default()
	if exists {
		if err := loadConfigFile(cfg, path); err != nil {
			return err
		}
	}

	if err := cfg.Set(key, value); err != nil {
		return &ValidationError{Field: key, Value: value, Reason: err.Error()}
	}

	check := cfg.Clone()
	check.SetDefaults()
	if err := check.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := config.SaveTo(cfg, path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	log.Printf("CONFIG_SET | key=%s path=%s", key, path)

	newValue, _ := cfg.Get(key)
	if app.Args.JSON {
		return NewJSONResponse("config set", ConfigValueData{Key: key, Value: newValue, Path: path}).Write(app.Out)
	}
	fmt.Fprintf(app.Out, "%s %s = %v\n", SuccessStyle.Render("Set"), key, newValue)
	return nil
}

func loadConfigFile(cfg *config.Config, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return config.LoadJSON(cfg, path)
	}
	return config.LoadTOML(cfg, path)
}

func isSettableKey(key string) bool {
	for _, k := range config.GetAllKeys() {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

func unknownKeyError(key string) error {
	return &ValidationError{
		Field:   "key",
		Value:   key,
		Reason:  "known keys: " + strings.Join(config.GetAllKeys(), ", "),
		Example: "converter.precision",
	}
}

func configPath(app *App) error {
	path, exists, err := app.ConfigFile()
	if err != nil {
		return err
	}
	if app.Args.JSON {
		return NewJSONResponse("config path", map[string]interface{}{"path": path, "exists": exists}).Write(app.Out)
	}
	if exists || app.quiet() {
		fmt.Fprintln(app.Out, path)
		return nil
	}
	fmt.Fprintf(app.Out, "%s %s\n", path, DimStyle.Render("(not created yet; run unitconv config init)"))
	return nil
}

func configInit(app *App, force bool) error {
	path, exists, err := app.ConfigFile()
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	if err := config.SaveTo(config.Default(), path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	log.Printf("CONFIG_INIT | path=%s", path)

	if app.Args.JSON {
		return NewJSONResponse("config init", map[string]interface{}{"path": path}).Write(app.Out)
	}
	fmt.Fprintf(app.Out, "%s %s\n", SuccessStyle.Render("Wrote"), path)
	return nil
}

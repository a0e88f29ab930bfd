// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/util"
)

// CurrentVersion is the config schema version written by this build.
const CurrentVersion = "1"

// =============================================================================
// CONFIG TYPES
// =============================================================================

// Config is the root configuration structure.
type Config struct {
	// Version of the configuration schema
	Version string `toml:"version" json:"version"`

	// Converter holds conversion and history settings
	Converter ConverterConfig `toml:"converter" json:"converter"`

	// Categories adds user-defined categories (name -> ordered unit list)
	Categories map[string][]string `toml:"categories" json:"categories,omitempty"`

	// Units defines extra units in the registry
	Units []UnitConfig `toml:"units" json:"units,omitempty"`

	// Storage configures the conversion journal
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Server configures the web front end
	Server ServerConfig `toml:"server" json:"server"`

	// UI configures the terminal front end
	UI UIConfig `toml:"ui" json:"ui"`

	// Logging configures log output
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// ConverterConfig holds conversion settings.
type ConverterConfig struct {
	// HistorySize is the number of conversions kept per session (default: 10)
	HistorySize int `toml:"history_size" json:"history_size"`

	// Precision is the number of decimals shown for results (default: 4)
	Precision int `toml:"precision" json:"precision"`

	// DefaultValue pre-fills the value input (default: 1.0)
	DefaultValue float64 `toml:"default_value" json:"default_value"`

	// DefaultCategory is selected on startup (default: "Length")
	DefaultCategory string `toml:"default_category" json:"default_category"`
}

// UnitConfig defines one extra unit as factor * reference.
//
//	[[units]]
//	name = "furlong"
//	factor = 220
//	reference = "yard"
//	symbols = ["fur"]
type UnitConfig struct {
	Name      string   `toml:"name" json:"name"`
	Factor    float64  `toml:"factor" json:"factor"`
	Reference string   `toml:"reference" json:"reference"`
	Symbols   []string `toml:"symbols" json:"symbols,omitempty"`
	Aliases   []string `toml:"aliases" json:"aliases,omitempty"`
}

// StorageConfig configures the SQLite conversion journal.
type StorageConfig struct {
	// Enabled journals successful conversions (default: true)
	Enabled bool `toml:"enabled" json:"enabled"`

	// Path is the database file (default: ~/.unitconv/journal.db)
	Path string `toml:"path" json:"path"`

	// MaxEntries bounds the journal; 0 keeps everything (default: 10000)
	MaxEntries int `toml:"max_entries" json:"max_entries"`
}

// ServerConfig configures the web front end.
type ServerConfig struct {
	Host string `toml:"host" json:"host"`
	Port int    `toml:"port" json:"port"`

	// SessionTimeoutSecs is the idle timeout for browser sessions (default: 1800)
	SessionTimeoutSecs int `toml:"session_timeout_secs" json:"session_timeout_secs"`

	// RateLimitPerMinute caps requests per client IP; 0 disables (default: 120)
	RateLimitPerMinute int `toml:"rate_limit_per_minute" json:"rate_limit_per_minute"`
}

// UIConfig configures the terminal front end.
type UIConfig struct {
	// Theme is "auto", "dark" or "light" (default: "auto")
	Theme string `toml:"theme" json:"theme"`

	// ShowDocs opens the documentation panel on startup
	ShowDocs bool `toml:"show_docs" json:"show_docs"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Path is a log file; empty logs to stderr (or nowhere in the TUI)
	Path string `toml:"path" json:"path"`

	// Verbose enables debug events
	Verbose bool `toml:"verbose" json:"verbose"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Converter: ConverterConfig{
			HistorySize:     10,
			Precision:       4,
			DefaultValue:    1.0,
			DefaultCategory: string(catalog.Length),
		},
		Storage: StorageConfig{
			Enabled:    true,
			MaxEntries: 10000,
		},
		Server: ServerConfig{
			Host:               "127.0.0.1",
			Port:               8790,
			SessionTimeoutSecs: 1800,
			RateLimitPerMinute: 120,
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the unitconv configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".unitconv"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ReplHistoryPath returns the path of the REPL line history file.
func ReplHistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "repl_history"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return util.EnsureDir(dir)
}

// ensureSecurePermissions tightens config files to 0600.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
//
// When a file exists but cannot be decoded the defaults are returned
// together with the load error, so callers can warn and keep going.
func Load() (*Config, error) {
	var loadErr error

	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg := Default()
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			cfg := Default()
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = errors.Join(loadErr, fmt.Errorf("failed to load JSON config: %w", err))
			} else {
				return finish(cfg)
			}
		}
	}

	cfg, err := finish(Default())
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file path with full validation.
// Files ending in .json are decoded as JSON, anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// LoadWithOverride loads path when set, otherwise the default locations.
func LoadWithOverride(path string) (*Config, error) {
	if path != "" {
		return LoadFromPath(path)
	}
	return Load()
}

// finish applies env overrides, migration, defaults and validation.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Migrate(); err != nil {
		return nil, fmt.Errorf("config migration failed: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		fmt.Fprintf(os.Stderr, "Warning: unknown config keys in %s: %s\n", path, strings.Join(keys, ", "))
	}
	return fillDefaults(cfg)
}

// LoadJSON decodes a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// fillDefaults fills in blank string values with defaults. Numeric zero is a
// legitimate value (precision 0, max_entries 0) and is left alone.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if strings.TrimSpace(cfg.Converter.DefaultCategory) == "" {
		cfg.Converter.DefaultCategory = defaults.Converter.DefaultCategory
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaults.Server.Host
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTo saves to path, choosing JSON or TOML by extension.
func SaveTo(cfg *Config, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# unitconv configuration file\n")
	buf.WriteString("# Generated by unitconv - edit with care\n")
	buf.WriteString("#\n")
	buf.WriteString("# Documentation: https://github.com/jeranaias/unitconv\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Limits enforced by Validate.
const (
	MaxHistorySize   = 1000
	MaxPrecision     = 12
	MinSessionTimeout = 60
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "dark", "light"}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Converter
	if c.Converter.HistorySize < 1 || c.Converter.HistorySize > MaxHistorySize {
		errs = append(errs, ValidationError{
			Field:   "converter.history_size",
			Message: fmt.Sprintf("must be between 1 and %d (got %d)", MaxHistorySize, c.Converter.HistorySize),
		})
	}
	if c.Converter.Precision < 0 || c.Converter.Precision > MaxPrecision {
		errs = append(errs, ValidationError{
			Field:   "converter.precision",
			Message: fmt.Sprintf("must be between 0 and %d (got %d)", MaxPrecision, c.Converter.Precision),
		})
	}
	if math.IsNaN(c.Converter.DefaultValue) || math.IsInf(c.Converter.DefaultValue, 0) || c.Converter.DefaultValue < 0 {
		errs = append(errs, ValidationError{
			Field:   "converter.default_value",
			Message: fmt.Sprintf("must be a finite number >= 0 (got %v)", c.Converter.DefaultValue),
		})
	}
	if !c.hasCategory(c.Converter.DefaultCategory) {
		errs = append(errs, ValidationError{
			Field:   "converter.default_category",
			Message: fmt.Sprintf("unknown category %q", c.Converter.DefaultCategory),
		})
	}

	// Categories
	for _, name := range c.CategoryNames() {
		field := "categories." + name
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{Field: "categories", Message: "category name cannot be empty"})
			continue
		}
		if catalog.Default().Has(catalog.Category(name)) {
			errs = append(errs, ValidationError{Field: field, Message: "redefines a built-in category"})
		}
		if len(c.Categories[name]) == 0 {
			errs = append(errs, ValidationError{Field: field, Message: "must list at least one unit"})
		}
	}

	// Units
	for i, u := range c.Units {
		field := fmt.Sprintf("units[%d]", i)
		if strings.TrimSpace(u.Name) == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "cannot be empty"})
		}
		if strings.TrimSpace(u.Reference) == "" {
			errs = append(errs, ValidationError{Field: field + ".reference", Message: "cannot be empty"})
		}
		if u.Factor < 0 || math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) {
			errs = append(errs, ValidationError{Field: field + ".factor", Message: "must be a finite number >= 0"})
		}
	}

	// Storage
	if c.Storage.MaxEntries < 0 {
		errs = append(errs, ValidationError{
			Field:   "storage.max_entries",
			Message: fmt.Sprintf("cannot be negative (got %d)", c.Storage.MaxEntries),
		})
	}

	// Server
	if strings.TrimSpace(c.Server.Host) == "" {
		errs = append(errs, ValidationError{Field: "server.host", Message: "cannot be empty"})
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("must be between 1 and 65535 (got %d)", c.Server.Port),
		})
	}
	if c.Server.SessionTimeoutSecs < MinSessionTimeout {
		errs = append(errs, ValidationError{
			Field:   "server.session_timeout_secs",
			Message: fmt.Sprintf("must be at least %d (got %d)", MinSessionTimeout, c.Server.SessionTimeoutSecs),
		})
	}
	if c.Server.RateLimitPerMinute < 0 {
		errs = append(errs, ValidationError{
			Field:   "server.rate_limit_per_minute",
			Message: fmt.Sprintf("cannot be negative (got %d)", c.Server.RateLimitPerMinute),
		})
	}

	// UI
	if !isValidTheme(c.UI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be one of %s (got %q)", strings.Join(ValidThemes, ", "), c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isValidTheme(theme string) bool {
	for _, t := range ValidThemes {
		if theme == t {
			return true
		}
	}
	return false
}

func (c *Config) hasCategory(name string) bool {
	if catalog.Default().Has(catalog.Category(name)) {
		return true
	}
	_, ok := c.Categories[name]
	return ok
}

// SetDefaults fills derived values that depend on the environment.
func (c *Config) SetDefaults() {
	if c.Storage.Path == "" {
		if dir, err := ConfigDir(); err == nil {
			c.Storage.Path = filepath.Join(dir, "journal.db")
		}
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
}

// Migrate upgrades older config files in place.
func (c *Config) Migrate() error {
	// "system" was the pre-1 spelling of "auto".
	if strings.EqualFold(c.UI.Theme, "system") {
		c.UI.Theme = "auto"
	}
	if c.Version == "" || c.Version == "0" {
		c.Version = CurrentVersion
	}
	return nil
}

// =============================================================================
// CATEGORY HELPERS
// =============================================================================

// CategoryNames returns the user-defined category names, sorted. TOML
// tables carry no order, so sorting keeps the selector stable.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CatalogEntries returns the user-defined categories as catalog entries.
func (c *Config) CatalogEntries() []catalog.Entry {
	var out []catalog.Entry
	for _, name := range c.CategoryNames() {
		out = append(out, catalog.Entry{
			Category: catalog.Category(name),
			Units:    append([]string(nil), c.Categories[name]...),
		})
	}
	return out
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - UNITCONV_HISTORY_SIZE: overrides converter.history_size
//   - UNITCONV_PRECISION: overrides converter.precision
//   - UNITCONV_DB: overrides storage.path
//   - UNITCONV_NO_JOURNAL: set to "1" or "true" to disable the journal
//   - UNITCONV_HOST: overrides server.host
//   - UNITCONV_PORT: overrides server.port
//   - UNITCONV_THEME: overrides ui.theme
//   - UNITCONV_LOG: overrides logging.path
//
// Malformed numbers are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("UNITCONV_HISTORY_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Converter.HistorySize = n
		}
	}

	if v := os.Getenv("UNITCONV_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Converter.Precision = n
		}
	}

	if v := os.Getenv("UNITCONV_DB"); v != "" {
		c.Storage.Path = v
	}

	if v := os.Getenv("UNITCONV_NO_JOURNAL"); v != "" {
		if isTruthy(v) {
			c.Storage.Enabled = false
		}
	}

	if v := os.Getenv("UNITCONV_HOST"); v != "" {
		c.Server.Host = v
	}

	if v := os.Getenv("UNITCONV_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Server.Port = n
		}
	}

	if v := os.Getenv("UNITCONV_THEME"); v != "" {
		c.UI.Theme = v
	}

	if v := os.Getenv("UNITCONV_LOG"); v != "" {
		c.Logging.Path = v
	}
}

func isTruthy(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes"
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "converter.precision").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "converter.precision").
// String values are parsed into the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			field.SetBool(isTruthy(strVal))
			return nil
		}
	}

	if value == nil {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && field.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all scalar configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"converter.history_size",
		"converter.precision",
		"converter.default_value",
		"converter.default_category",
		"storage.enabled",
		"storage.path",
		"storage.max_entries",
		"server.host",
		"server.port",
		"server.session_timeout_secs",
		"server.rate_limit_per_minute",
		"ui.theme",
		"ui.show_docs",
		"logging.path",
		"logging.verbose",
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c

	if c.Categories != nil {
		clone.Categories = make(map[string][]string, len(c.Categories))
		for k, v := range c.Categories {
			clone.Categories[k] = append([]string(nil), v...)
		}
	}
	if c.Units != nil {
		clone.Units = make([]UnitConfig, len(c.Units))
		for i, u := range c.Units {
			u.Symbols = append([]string(nil), u.Symbols...)
			u.Aliases = append([]string(nil), u.Aliases...)
			clone.Units[i] = u
		}
	}
	return &clone
}

// String returns the config as indented JSON for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/nookipedia-api/config.yaml",
	"/etc/nookipedia-api/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML config file (if exists)
//  3. Environment variables: override any setting
//
// Precedence is ENV > file > defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// Names are mapped to koanf paths: SECRET_BOT_USER -> wiki.bot_username,
	// DB_KEYS -> database.path, HTTP_PORT -> server.port.
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as
// comma-separated slices when sourced from environment variables.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields. Env vars come in as strings, but the config expects
// slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults): leave it alone.
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config paths.
// Legacy names from earlier deployments (SECRET_BOT_USER, DB_KEYS) are kept
// working alongside the section-prefixed names.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server mappings
		"http_host":         "server.host",
		"http_port":         "server.port",
		"http_timeout":      "server.timeout",
		"shutdown_timeout":  "server.shutdown_timeout",
		"rate_limit_reqs":   "server.rate_limit_reqs",
		"rate_limit_window": "server.rate_limit_window",
		"cors_origins":      "server.cors_origins",

		// Wiki mappings (legacy secret names kept for compatibility)
		"wiki_base_url":        "wiki.base_url",
		"wiki_api_url":         "wiki.api_url",
		"secret_bot_user":      "wiki.bot_username",
		"secret_bot_pass":      "wiki.bot_password",
		"wiki_bot_username":    "wiki.bot_username",
		"wiki_bot_password":    "wiki.bot_password",
		"wiki_request_timeout": "wiki.request_timeout",

		// Cache mappings
		"cache_result_ttl":  "cache.result_ttl",
		"cache_session_ttl": "cache.session_ttl",

		// Database mappings (DB_KEYS is the legacy SQLite path variable)
		"db_keys":          "database.path",
		"db_path":          "database.path",
		"keys_table":       "database.keys_table",
		"admin_keys_table": "database.admin_keys_table",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// Per-entity Cargo limit overrides
		"limit_art":                 "limits.art",
		"limit_bug":                 "limits.bug",
		"limit_clothing":            "limits.clothing",
		"limit_clothing_variation":  "limits.clothing_variation",
		"limit_event":               "limits.event",
		"limit_fish":                "limits.fish",
		"limit_fossil_group":        "limits.fossil_group",
		"limit_fossil_individual":   "limits.fossil_individual",
		"limit_furniture":           "limits.furniture",
		"limit_furniture_variation": "limits.furniture_variation",
		"limit_gyroid":              "limits.gyroid",
		"limit_gyroid_variation":    "limits.gyroid_variation",
		"limit_interior":            "limits.interior",
		"limit_item":                "limits.item",
		"limit_photo":               "limits.photo",
		"limit_photo_variation":     "limits.photo_variation",
		"limit_recipe":              "limits.recipe",
		"limit_sea":                 "limits.sea",
		"limit_tool":                "limits.tool",
		"limit_tool_variation":      "limits.tool_variation",
		"limit_villager":            "limits.villager",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// Unmapped keys are skipped so random environment variables do not
	// pollute the config.
	return ""
}

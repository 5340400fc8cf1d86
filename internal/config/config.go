// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

// Package config loads and validates application configuration using
// Koanf v2 with layered sources: built-in defaults, then an optional YAML
// config file, then environment variables.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Wiki     WikiConfig     `koanf:"wiki"`
	Cache    CacheConfig    `koanf:"cache"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Limits   LimitsConfig   `koanf:"limits"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs" validate:"min=0"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// WikiConfig holds the upstream MediaWiki endpoints and the optional bot
// identity used to raise the Cargo row cap beyond the anonymous limit.
type WikiConfig struct {
	// BaseURL is the wiki root, e.g. https://nookipedia.com/.
	// Page URLs and Special:FilePath thumbnail lookups derive from it.
	BaseURL string `koanf:"base_url" validate:"required,url"`

	// APIURL is the MediaWiki api.php endpoint serving cargoquery.
	APIURL string `koanf:"api_url" validate:"required,url"`

	// BotUsername/BotPassword authenticate large queries. Leaving them
	// empty disables authenticated fetches; anonymous queries stay capped
	// at the upstream's 500-row limit.
	BotUsername string `koanf:"bot_username"`
	BotPassword string `koanf:"bot_password"`

	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// CacheConfig holds TTLs for the two cache uses.
type CacheConfig struct {
	// ResultTTL bounds Cargo fetch memoization.
	ResultTTL time.Duration `koanf:"result_ttl"`

	// SessionTTL bounds the cached bot session.
	SessionTTL time.Duration `koanf:"session_ttl"`
}

// DatabaseConfig holds the SQLite API-key store settings.
type DatabaseConfig struct {
	Path           string `koanf:"path" validate:"required"`
	KeysTable      string `koanf:"keys_table" validate:"required"`
	AdminKeysTable string `koanf:"admin_keys_table" validate:"required"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// LimitsConfig holds the per-entity Cargo row limits. Each value is the
// full row count of the corresponding wiki table plus headroom, so a single
// list request drains the table.
type LimitsConfig struct {
	Art                int `koanf:"art" validate:"min=1"`
	Bug                int `koanf:"bug" validate:"min=1"`
	Clothing           int `koanf:"clothing" validate:"min=1"`
	ClothingVariation  int `koanf:"clothing_variation" validate:"min=1"`
	Event              int `koanf:"event" validate:"min=1"`
	Fish               int `koanf:"fish" validate:"min=1"`
	FossilGroup        int `koanf:"fossil_group" validate:"min=1"`
	FossilIndividual   int `koanf:"fossil_individual" validate:"min=1"`
	Furniture          int `koanf:"furniture" validate:"min=1"`
	FurnitureVariation int `koanf:"furniture_variation" validate:"min=1"`
	Gyroid             int `koanf:"gyroid" validate:"min=1"`
	GyroidVariation    int `koanf:"gyroid_variation" validate:"min=1"`
	Interior           int `koanf:"interior" validate:"min=1"`
	Item               int `koanf:"item" validate:"min=1"`
	Photo              int `koanf:"photo" validate:"min=1"`
	PhotoVariation     int `koanf:"photo_variation" validate:"min=1"`
	Recipe             int `koanf:"recipe" validate:"min=1"`
	Sea                int `koanf:"sea" validate:"min=1"`
	Tool               int `koanf:"tool" validate:"min=1"`
	ToolVariation      int `koanf:"tool_variation" validate:"min=1"`
	Villager           int `koanf:"villager" validate:"min=1"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Timeout:         60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimitReqs:   100,
			RateLimitWindow: 1 * time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Wiki: WikiConfig{
			BaseURL:        "https://nookipedia.com/",
			APIURL:         "https://nookipedia.com/w/api.php",
			RequestTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			ResultTTL:  12 * time.Hour,
			SessionTTL: 30 * 24 * time.Hour,
		},
		Database: DatabaseConfig{
			Path:           "/data/keys.db",
			KeysTable:      "keys",
			AdminKeysTable: "admin_keys",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Limits: LimitsConfig{
			Art:                50,
			Bug:                100,
			Clothing:           1350,
			ClothingVariation:  5000,
			Event:              1200,
			Fish:               100,
			FossilGroup:        50,
			FossilIndividual:   100,
			Furniture:          1200,
			FurnitureVariation: 5350,
			Gyroid:             200,
			GyroidVariation:    1000,
			Interior:           650,
			Item:               400,
			Photo:              1000,
			PhotoVariation:     4500,
			Recipe:             1000,
			Sea:                100,
			Tool:               100,
			ToolVariation:      300,
			Villager:           500,
		},
	}
}

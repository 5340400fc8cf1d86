// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

// Package main is the entry point for the Nookipedia API server.
//
// The Nookipedia API is a versioned JSON REST front end over the wiki's
// MediaWiki Cargo tables. It exposes villager, critter, item, and event
// data with response shapes negotiated through the Accept-Version header.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: load settings from a config file and environment variables (Koanf v2)
//  2. Logging: structured zerolog output, JSON or console
//  3. Key store: SQLite database holding client and admin API keys
//  4. Cargo client: MediaWiki cargoquery transport with result memoization
//  5. HTTP server: Chi router with CORS, rate limiting, and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, then config.yaml, then built-in
// defaults. The only values with no usable default are the key database
// path and, for queries above the anonymous 500-row cap, the wiki bot
// credentials:
//
//	export DATABASE_PATH=/data/keys.db
//	export WIKI_BOT_USERNAME=BotName@credential
//	export WIKI_BOT_PASSWORD=secret
//	./nookipedia-api
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests up to the
// configured shutdown timeout, then closes the key store.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nookipedia/nookipedia-api/internal/api"
	"github.com/nookipedia/nookipedia-api/internal/apikey"
	"github.com/nookipedia/nookipedia-api/internal/cache"
	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/config"
	"github.com/nookipedia/nookipedia-api/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Init(logging.Config{Level: "info", Format: "console"})
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("wiki", cfg.Wiki.BaseURL).
		Bool("bot_configured", cfg.BotConfigured()).
		Msg("Starting Nookipedia API server")

	keys, err := apikey.Open(cfg.Database.Path, cfg.Database.KeysTable, cfg.Database.AdminKeysTable)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("Failed to open key store")
	}
	defer func() {
		if err := keys.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close key store")
		}
	}()

	wiki := cargo.New(cargo.Options{
		BaseURL:     cfg.Wiki.BaseURL,
		APIURL:      cfg.Wiki.APIURL,
		BotUsername: cfg.Wiki.BotUsername,
		BotPassword: cfg.Wiki.BotPassword,
		Timeout:     cfg.Wiki.RequestTimeout,
		ResultTTL:   cfg.Cache.ResultTTL,
		SessionTTL:  cfg.Cache.SessionTTL,
		Cache:       cache.New(cfg.Cache.ResultTTL),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.New(cfg, wiki, keys).Router(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}

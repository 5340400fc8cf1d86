// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

// Package apikey implements the client credential store. Keys are opaque
// UUIDs held in a SQLite database with two tables: one for regular client
// keys and one for admin keys that may mint new client keys.
package apikey

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "github.com/mattn/go-sqlite3"
)

// ErrUnauthorized reports a key that is missing from the consulted table.
// Lookup failures deliberately collapse into the same error so callers
// cannot distinguish "no such key" from "store unavailable".
var ErrUnauthorized = errors.New("unauthorized")

// identRe restricts table names to safe SQL identifiers. Table names come
// from configuration and are interpolated into statements directly, so they
// must never carry quoting or whitespace.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store is a SQLite-backed API key store.
type Store struct {
	db         *sql.DB
	keysTable  string
	adminTable string
}

// Open opens (creating if necessary) the key database at path. Both tables
// are created when absent so a fresh deployment starts from an empty store.
func Open(path, keysTable, adminTable string) (*Store, error) {
	for _, name := range []string{keysTable, adminTable} {
		if !identRe.MatchString(name) {
			return nil, fmt.Errorf("invalid table name %q", name)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open key database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping key database: %w", err)
	}

	s := &Store{db: db, keysTable: keysTable, adminTable: adminTable}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	for _, table := range []string{s.keysTable, s.adminTable} {
		stmt := fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, email TEXT NOT NULL DEFAULT '', project TEXT NOT NULL DEFAULT '')`,
			table,
		)
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return nil
}

// Authorize reports whether key is a known client key.
func (s *Store) Authorize(ctx context.Context, key string) error {
	return s.lookup(ctx, s.keysTable, key)
}

// AuthorizeAdmin reports whether key is a known admin key.
func (s *Store) AuthorizeAdmin(ctx context.Context, key string) error {
	return s.lookup(ctx, s.adminTable, key)
}

func (s *Store) lookup(ctx context.Context, table, key string) error {
	if key == "" {
		return ErrUnauthorized
	}
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE key = ?`, table)
	var one int
	err := s.db.QueryRowContext(ctx, query, key).Scan(&one)
	if err != nil {
		return ErrUnauthorized
	}
	return nil
}

// Insert records a freshly minted client key with its owner metadata.
func (s *Store) Insert(ctx context.Context, key, email, project string) error {
	stmt := fmt.Sprintf(`INSERT INTO %s (key, email, project) VALUES (?, ?, ?)`, s.keysTable)
	if _, err := s.db.ExecContext(ctx, stmt, key, email, project); err != nil {
		return fmt.Errorf("insert key: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package apikey

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "keys.db"), "keys", "admin_keys")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAuthorizeKnownKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	key := uuid.NewString()
	require.NoError(t, s.Insert(ctx, key, "dev@example.com", "test-project"))

	assert.NoError(t, s.Authorize(ctx, key))
}

func TestAuthorizeUnknownKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Authorize(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthorizeEmptyKey(t *testing.T) {
	s := openTestStore(t)
	assert.ErrorIs(t, s.Authorize(context.Background(), ""), ErrUnauthorized)
}

func TestAdminKeysAreSeparate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	key := uuid.NewString()
	require.NoError(t, s.Insert(ctx, key, "", ""))

	// A client key grants no admin access.
	assert.NoError(t, s.Authorize(ctx, key))
	assert.ErrorIs(t, s.AuthorizeAdmin(ctx, key), ErrUnauthorized)
}

func TestInsertDuplicateKeyFails(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	key := uuid.NewString()
	require.NoError(t, s.Insert(ctx, key, "", ""))
	assert.Error(t, s.Insert(ctx, key, "", ""))
}

func TestOpenRejectsBadTableName(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "keys.db"), "keys; DROP TABLE keys", "admin_keys")
	assert.Error(t, err)
}

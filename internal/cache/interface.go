// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package cache

import "time"

// Cacher is the interface the Cargo client depends on. Binding to an
// interface rather than the concrete Cache keeps the fetch engine and the
// session refresh path testable with a fake store.
type Cacher interface {
	// Get retrieves a value. Returns the value and true if found and not
	// expired.
	Get(key string) (interface{}, bool)

	// Set stores a value with the default TTL.
	Set(key string, value interface{})

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value interface{}, ttl time.Duration)

	// Delete removes a value.
	Delete(key string)
}

// Verify interface implementation at compile time
var _ Cacher = (*Cache)(nil)

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"

	"github.com/nookipedia/nookipedia-api/internal/logging"
)

// clientKey extracts the API key from the X-API-KEY header, falling back to
// the api_key query parameter.
func clientKey(r *http.Request) string {
	if key := r.Header.Get("X-API-KEY"); key != "" {
		return key
	}
	return r.URL.Query().Get("api_key")
}

// requireKey rejects requests whose key is missing or not in the keys
// table. The response body is deliberately identical for both cases.
func (s *Server) requireKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if key == "" {
			writeUnauthorized(w)
			return
		}
		if err := s.keys.Authorize(r.Context(), key); err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("client key rejected")
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authorizeAdmin checks the admin keys table; used only by key generation.
func (s *Server) authorizeAdmin(w http.ResponseWriter, r *http.Request) bool {
	key := clientKey(r)
	if key == "" {
		writeUnauthorized(w)
		return false
	}
	if err := s.keys.AuthorizeAdmin(r.Context(), key); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("admin key rejected")
		writeUnauthorized(w)
		return false
	}
	return true
}

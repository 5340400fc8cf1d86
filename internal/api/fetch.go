// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"
	"strings"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
)

// fetch runs a Cargo query for the request, honoring its thumbsize
// parameter, and writes the contract 500 body on failure.
func (s *Server) fetch(w http.ResponseWriter, r *http.Request, req cargo.QueryRequest) ([]cargo.Row, bool) {
	rows, err := s.wiki.Fetch(r.Context(), req, cargo.FetchOptions{ThumbSize: thumbSize(r)})
	if err != nil {
		writeFetchError(w, r, err, describeQuery(req))
		return nil, false
	}
	return rows, true
}

// fetchOne is fetch for single-item lookups: an empty result becomes the
// contract 404 body.
func (s *Server) fetchOne(w http.ResponseWriter, r *http.Request, req cargo.QueryRequest) (cargo.Row, bool) {
	rows, ok := s.fetch(w, r, req)
	if !ok {
		return nil, false
	}
	if len(rows) == 0 {
		writeNotFound(w, describeQuery(req))
		return nil, false
	}
	return rows[0], true
}

// describeQuery renders the parts of a query worth echoing back in error
// bodies.
func describeQuery(req cargo.QueryRequest) string {
	parts := []string{"tables=" + req.Tables}
	if req.Where != "" {
		parts = append(parts, "where="+req.Where)
	}
	return strings.Join(parts, ", ")
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/format"
)

// stitchedQuery describes an item table with a companion variation table.
// The list endpoints fetch both in full and stitch variations onto their
// parents; the single-item endpoints scope both fetches to one name.
type stitchedQuery struct {
	tables          string
	fields          string
	where           string
	limit           int
	variationTables string
	variationFields string
	variationOrder  string
	variationWhere  string
	variationLimit  int
	format          func(cargo.Row) cargo.Row
}

func (s *Server) serveStitchedList(w http.ResponseWriter, r *http.Request, q stitchedQuery) {
	items, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: q.tables, Fields: q.fields, Where: q.where, Limit: q.limit,
	})
	if !ok {
		return
	}
	for _, item := range items {
		q.format(item)
	}

	variations, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: q.variationTables, Fields: q.variationFields,
		Where: q.variationWhere, OrderBy: q.variationOrder, Limit: q.variationLimit,
	})
	if !ok {
		return
	}

	stitched := format.StitchVariationList(items, variations)
	if excludeDetails(r) {
		writeJSON(w, http.StatusOK, nameList(stitched))
		return
	}
	writeJSON(w, http.StatusOK, stitched)
}

func (s *Server) serveStitchedSingle(w http.ResponseWriter, r *http.Request, q stitchedQuery, name string) {
	var where cargo.WhereBuilder
	where.Match("en_name", name)

	item, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: q.tables, Fields: q.fields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}
	q.format(item)

	variations, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: q.variationTables, Fields: q.variationFields,
		Where: where.String(), OrderBy: q.variationOrder, Limit: q.variationLimit,
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, format.StitchVariation(item, variations))
}

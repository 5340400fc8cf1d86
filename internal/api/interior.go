// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/format"
)

const interiorFields = "_pageName=url,en_name=name,image_url,category,item_series,item_set,theme1,theme2,hha_category,tag,hha_base,buy1_price,buy1_currency,buy2_price,buy2_currency,sell,availability1,availability1_note,availability2,availability2_note,grid_size,color1,color2,version_added,unlocked,notes"

func (s *Server) handleInteriorList(w http.ResponseWriter, r *http.Request) {
	var where cargo.WhereBuilder
	if !colorWhere(w, r, &where) {
		return
	}

	rows, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_interior", Fields: interiorFields, Where: where.String(),
		Limit: s.cfg.Limits.Interior,
	})
	if !ok {
		return
	}

	if excludeDetails(r) {
		writeJSON(w, http.StatusOK, nameList(rows))
		return
	}
	out := make([]cargo.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, format.FormatInterior(row))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleInterior(w http.ResponseWriter, r *http.Request) {
	var where cargo.WhereBuilder
	where.Match("en_name", pathName(r))

	row, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: "nh_interior", Fields: interiorFields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, format.FormatInterior(row))
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/format"
)

const itemFields = "_pageName=url,en_name=name,image_url,stack,hha_base,buy1_price,buy1_currency,sell,is_fence,material_type,material_seasonality,material_sort,material_name_sort,material_seasonality_sort,edible,plant_type,availability1,availability1_note,availability2,availability2_note,availability3,availability3_note,version_added,unlocked,notes"

func (s *Server) handleItemList(w http.ResponseWriter, r *http.Request) {
	rows, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_item", Fields: itemFields, Limit: s.cfg.Limits.Item,
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
		out = append(out, format.FormatOtherItem(row))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	var where cargo.WhereBuilder
	where.Match("en_name", pathName(r))

	row, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: "nh_item", Fields: itemFields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, format.FormatOtherItem(row))
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"
	"strings"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/format"
)

const recipeFields = "_pageName=url,en_name=name,image_url,serial_id,buy1_price,buy1_currency,buy2_price,buy2_currency,sell,recipes_to_unlock,diy_availability1,diy_availability1_note,diy_availability2,diy_availability2_note,material1,material1_num,material2,material2_num,material3,material3_num,material4,material4_num,material5,material5_num,material6,material6_num"

func (s *Server) handleRecipeList(w http.ResponseWriter, r *http.Request) {
	materials := r.URL.Query()["material"]
	if len(materials) > 6 {
		writeError(w, http.StatusBadRequest,
			"Invalid arguments", "Cannot have more than six materials")
		return
	}

	var where cargo.WhereBuilder
	for _, material := range materials {
		where.MatchAny("material", 6, strings.ReplaceAll(material, "_", " "))
	}

	rows, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_recipe", Fields: recipeFields, Where: where.String(), Limit: s.cfg.Limits.Recipe,
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
		out = append(out, format.FormatRecipe(row))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRecipe(w http.ResponseWriter, r *http.Request) {
	var where cargo.WhereBuilder
	where.Match("en_name", pathName(r))

	row, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: "nh_recipe", Fields: recipeFields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, format.FormatRecipe(row))
}

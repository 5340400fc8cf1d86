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

const furnitureFields = "identifier,_pageName=url,en_name=name,category,item_series,item_set,theme1,theme2,hha_category,tag,hha_base,lucky,lucky_season,function1,function2,buy1_price,buy1_currency,buy2_price,buy2_currency,sell,availability1,availability1_note,availability2,availability2_note,availability3,availability3_note,variation_total,pattern_total,customizable,custom_kits,custom_kit_type,custom_body_part,custom_pattern_part,grid_size,height,door_decor,version_added,unlocked,notes"

const furnitureVariationFields = "identifier,variation,pattern,image_url,color1,color2"

const furnitureVariationOrder = "variation_number,pattern_number"

func (s *Server) handleFurnitureList(w http.ResponseWriter, r *http.Request) {
	if !rejectThumbSize(w, r) {
		return
	}

	var where cargo.WhereBuilder
	if category := strings.ToLower(r.URL.Query().Get("category")); category != "" {
		if !contains([]string{"housewares", "miscellaneous", "wall-mounted"}, category) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided category.",
				"Ensure category is either housewares, miscellaneous, or wall-mounted.")
			return
		}
		where.Match("category", category)
	}

	items, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_furniture", Fields: furnitureFields, Where: where.String(),
		Limit: s.cfg.Limits.Furniture,
	})
	if !ok {
		return
	}
	for _, item := range items {
		format.FormatFurniture(item)
	}

	variationFilter, ok := variationWhere(w, r, true)
	if !ok {
		return
	}
	variations, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_furniture_variation", Fields: furnitureVariationFields,
		Where: variationFilter, OrderBy: furnitureVariationOrder,
		Limit: s.cfg.Limits.FurnitureVariation,
	})
	if !ok {
		return
	}

	// Furniture variations join on the identifier column; the display name
	// lives only on the parent table.
	stitched := format.StitchVariationListBy(items, variations, "identifier")
	if excludeDetails(r) {
		writeJSON(w, http.StatusOK, nameList(stitched))
		return
	}
	writeJSON(w, http.StatusOK, stitched)
}

func (s *Server) handleFurniture(w http.ResponseWriter, r *http.Request) {
	name := pathName(r)

	var where cargo.WhereBuilder
	where.Match("en_name", name)

	item, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: "nh_furniture", Fields: furnitureFields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}
	format.FormatFurniture(item)

	var variationFilter cargo.WhereBuilder
	variationFilter.Match("en_name", name)
	variations, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_furniture_variation", Fields: furnitureVariationFields,
		Where: variationFilter.String(), OrderBy: furnitureVariationOrder, Limit: 70,
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, format.StitchVariation(item, variations))
}

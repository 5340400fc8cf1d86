// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"

	"github.com/nookipedia/nookipedia-api/internal/format"
)

const gyroidFields = "_pageName=url,en_name=name,hha_base,buy1_price,buy1_currency,buy1_wikitext,buy2_price,buy2_currency,buy2_wikitext,sell,availability1,availability1_note,availability2,availability2_note,availability3,availability3_note,variation_total,customizable,custom_kits,custom_kit_type,custom_body_part,cyrus_price,grid_size,sound,version_added,unlocked,notes"

const gyroidVariationFields = "en_name=name,variation,image_url,color1,color2"

func (s *Server) handleGyroidList(w http.ResponseWriter, r *http.Request) {
	if !rejectThumbSize(w, r) {
		return
	}
	variationFilter, ok := variationWhere(w, r, false)
	if !ok {
		return
	}
	s.serveStitchedList(w, r, stitchedQuery{
		tables:          "nh_gyroid",
		fields:          gyroidFields,
		limit:           s.cfg.Limits.Gyroid,
		variationTables: "nh_gyroid_variation",
		variationFields: gyroidVariationFields,
		variationOrder:  "variation_number",
		variationWhere:  variationFilter,
		variationLimit:  s.cfg.Limits.GyroidVariation,
		format:          format.FormatGyroid,
	})
}

func (s *Server) handleGyroid(w http.ResponseWriter, r *http.Request) {
	s.serveStitchedSingle(w, r, stitchedQuery{
		tables:          "nh_gyroid",
		fields:          gyroidFields,
		variationTables: "nh_gyroid_variation",
		variationFields: gyroidVariationFields,
		variationOrder:  "variation_number",
		variationLimit:  10,
		format:          format.FormatGyroid,
	}, pathName(r))
}

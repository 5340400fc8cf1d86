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

const photoFields = "_pageName=url,en_name=name,category,hha_base,buy1_price,buy1_currency,buy2_price,buy2_currency,sell,availability1,availability1_note,availability2,availability2_note,customizable,custom_kits,custom_body_part,grid_size,interactable,version_added,unlocked"

const photoVariationFields = "en_name=name,variation,image_url,color1,color2"

func (s *Server) handlePhotoList(w http.ResponseWriter, r *http.Request) {
	if !rejectThumbSize(w, r) {
		return
	}

	var where cargo.WhereBuilder
	if category := strings.ToLower(r.URL.Query().Get("category")); category != "" {
		if !contains([]string{"photos", "posters"}, category) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided category.",
				"Ensure category is either photos or posters.")
			return
		}
		where.Match("category", category)
	}

	variationFilter, ok := variationWhere(w, r, false)
	if !ok {
		return
	}
	s.serveStitchedList(w, r, stitchedQuery{
		tables:          "nh_photo",
		fields:          photoFields,
		where:           where.String(),
		limit:           s.cfg.Limits.Photo,
		variationTables: "nh_photo_variation",
		variationFields: photoVariationFields,
		variationOrder:  "variation_number",
		variationWhere:  variationFilter,
		variationLimit:  s.cfg.Limits.PhotoVariation,
		format:          format.FormatPhoto,
	})
}

func (s *Server) handlePhoto(w http.ResponseWriter, r *http.Request) {
	s.serveStitchedSingle(w, r, stitchedQuery{
		tables:          "nh_photo",
		fields:          photoFields,
		variationTables: "nh_photo_variation",
		variationFields: photoVariationFields,
		variationOrder:  "variation_number",
		variationLimit:  10,
		format:          format.FormatPhoto,
	}, pathName(r))
}

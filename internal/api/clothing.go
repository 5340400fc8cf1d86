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

const clothingFields = "_pageName=url,en_name=name,category,style1,style2,label1,label2,label3,label4,label5,buy1_price,buy1_currency,buy2_price,buy2_currency,sell,availability1,availability1_note,availability2,availability2_note,variation_total,vill_equip,seasonality,version_added,unlocked,notes"

const clothingVariationFields = "en_name=name,variation,image_url,color1,color2"

var clothingCategories = []string{
	"tops", "bottoms", "dress-up", "headware", "accessories", "socks",
	"shoes", "bags", "umbrellas",
}

var clothingStyles = []string{"active", "cool", "cute", "elegant", "gorgeous", "simple"}

var clothingLabels = []string{
	"comfy", "everyday", "fairy tale", "formal", "goth", "outdoorsy",
	"party", "sporty", "theatrical", "vacation", "work",
}

func clothingListWhere(w http.ResponseWriter, r *http.Request) (string, bool) {
	q := r.URL.Query()
	var where cargo.WhereBuilder

	if category := strings.ToLower(q.Get("category")); category != "" {
		if !contains(clothingCategories, category) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided category.",
				"Ensure category is either tops, bottoms, dress-up, headware, accessories, socks, shoes, bags, or umbrellas.")
			return "", false
		}
		where.Match("category", category)
	}

	styles := q["style"]
	for i, style := range styles {
		styles[i] = strings.ToLower(style)
	}
	for _, style := range styles {
		if !contains(clothingStyles, style) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided style.",
				"Ensure style is either active, cool, cute, elegant, gorgeous, or simple.")
			return "", false
		}
	}
	if err := where.MatchSet("style", 2, styles); err != nil {
		writeError(w, http.StatusBadRequest,
			"Invalid arguments", "Cannot have more than two styles")
		return "", false
	}

	if label := strings.ToLower(q.Get("label")); label != "" {
		if !contains(clothingLabels, label) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided Label theme.",
				"Ensure Label theme is either comfy, everyday, fairy tale, formal, goth, outdoorsy, party, sporty, theatrical, vacation, or work.")
			return "", false
		}
		where.MatchAny("label", 5, label)
	}
	return where.String(), true
}

func (s *Server) handleClothingList(w http.ResponseWriter, r *http.Request) {
	if !rejectThumbSize(w, r) {
		return
	}
	where, ok := clothingListWhere(w, r)
	if !ok {
		return
	}
	variationFilter, ok := variationWhere(w, r, false)
	if !ok {
		return
	}
	s.serveStitchedList(w, r, stitchedQuery{
		tables:          "nh_clothing",
		fields:          clothingFields,
		where:           where,
		limit:           s.cfg.Limits.Clothing,
		variationTables: "nh_clothing_variation",
		variationFields: clothingVariationFields,
		variationOrder:  "variation_number",
		variationWhere:  variationFilter,
		variationLimit:  s.cfg.Limits.ClothingVariation,
		format:          format.FormatClothing,
	})
}

func (s *Server) handleClothing(w http.ResponseWriter, r *http.Request) {
	s.serveStitchedSingle(w, r, stitchedQuery{
		tables:          "nh_clothing",
		fields:          clothingFields,
		variationTables: "nh_clothing_variation",
		variationFields: clothingVariationFields,
		variationOrder:  "variation_number",
		variationLimit:  10,
		format:          format.FormatClothing,
	}, pathName(r))
}

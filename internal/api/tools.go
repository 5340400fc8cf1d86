// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"

	"github.com/nookipedia/nookipedia-api/internal/format"
)

const toolFields = "_pageName=url,en_name=name,uses,hha_base,buy1_price,buy1_currency,buy2_price,buy2_currency,sell,availability1,availability1_note,availability2,availability2_note,availability3,availability3_note,customizable,custom_kits,custom_body_part,version_added,unlocked,notes"

// Tool variations carry no color columns.
const toolVariationFields = "en_name=name,variation,image_url"

func (s *Server) handleToolList(w http.ResponseWriter, r *http.Request) {
	if !rejectThumbSize(w, r) {
		return
	}
	s.serveStitchedList(w, r, stitchedQuery{
		tables:          "nh_tool",
		fields:          toolFields,
		limit:           s.cfg.Limits.Tool,
		variationTables: "nh_tool_variation",
		variationFields: toolVariationFields,
		variationOrder:  "variation_number",
		variationLimit:  s.cfg.Limits.ToolVariation,
		format:          format.FormatTool,
	})
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	s.serveStitchedSingle(w, r, stitchedQuery{
		tables:          "nh_tool",
		fields:          toolFields,
		variationTables: "nh_tool_variation",
		variationFields: toolVariationFields,
		variationOrder:  "variation_number",
		variationLimit:  10,
		format:          format.FormatTool,
	}, pathName(r))
}

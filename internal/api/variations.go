// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"
	"strings"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
)

var variationColors = []string{
	"aqua", "beige", "black", "blue", "brown", "colorful", "gray", "green",
	"orange", "pink", "purple", "red", "white", "yellow",
}

const colorErrorDetails = "Ensure style is either aqua, beige, black, blue, brown, colorful, gray, green, orange, pink, purple, red, white, or yellow."

// colorWhere applies the color pair filter shared by the variation and
// interior endpoints. Two colors must both be present on the row, in either
// column order.
func colorWhere(w http.ResponseWriter, r *http.Request, where *cargo.WhereBuilder) bool {
	colors := r.URL.Query()["color"]
	for i, color := range colors {
		colors[i] = strings.ToLower(color)
	}
	for _, color := range colors {
		if !contains(variationColors, color) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided color.", colorErrorDetails)
			return false
		}
	}
	if err := where.MatchSet("color", 2, colors); err != nil {
		writeError(w, http.StatusBadRequest,
			"Invalid arguments", "Cannot have more than two colors")
		return false
	}
	return true
}

// variationWhere builds the where clause for variation-table list queries
// from the color/pattern/variation query parameters.
func variationWhere(w http.ResponseWriter, r *http.Request, withPattern bool) (string, bool) {
	q := r.URL.Query()
	var where cargo.WhereBuilder

	if !colorWhere(w, r, &where) {
		return "", false
	}
	if withPattern {
		if pattern := q.Get("pattern"); pattern != "" {
			where.Match("pattern", pattern)
		}
	}
	if variation := q.Get("variation"); variation != "" {
		where.Match("variation", variation)
	}
	return where.String(), true
}

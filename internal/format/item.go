// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import (
	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/version"
)

// FormatArt reshapes a single artwork row. From 1.6 the genuine and forgery
// details are nested into real_info/fake_info objects.
func FormatArt(row cargo.Row, opts Options) cargo.Row {
	FormatAsType(row, AsBool, "has_fake")
	FormatAsType(row, AsInt, "buy", "sell")
	FormatAsType(row, AsFloat, "width", "length")

	if opts.Version.AtLeast(version.MustParse("1.6")) {
		row["real_info"] = map[string]any{
			"image_url":   row["image_url"],
			"texture_url": row["texture_url"],
			"description": row["description"],
		}
		if hasFake, _ := row["has_fake"].(bool); hasFake {
			row["fake_info"] = map[string]any{
				"image_url":   row["fake_image_url"],
				"texture_url": row["fake_texture_url"],
				"description": row["authenticity"],
			}
		} else {
			row["fake_info"] = nil
		}
		delete(row, "image_url")
		delete(row, "texture_url")
		delete(row, "description")
		delete(row, "fake_image_url")
		delete(row, "fake_texture_url")
		delete(row, "authenticity")
	}
	return row
}

// FormatRecipe reshapes a single DIY recipe row.
func FormatRecipe(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "serial_id", "recipes_to_unlock")

	// Unobtainable recipes carry a literal "NA" sell price.
	if str(row, "sell") == "NA" {
		row["sell"] = 0
	} else {
		FormatAsType(row, AsInt, "sell")
	}

	CoalesceObjectList(row, 6, "materials",
		FieldSpec{Name: "name", Pattern: "material%d"},
		FieldSpec{Name: "count", Pattern: "material%d_num"})
	FormatObjectList(row, AsInt, "materials", "count")

	CoalesceObjectList(row, 2, "availability",
		FieldSpec{Name: "from", Pattern: "diy_availability%d"},
		FieldSpec{Name: "note", Pattern: "diy_availability%d_note"})

	coalesceBuyPrices(row, 2)
	return row
}

// FormatFurniture reshapes a single furniture row.
func FormatFurniture(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "hha_base", "sell", "variation_total", "pattern_total", "custom_kits")
	FormatAsType(row, AsBool, "customizable", "lucky", "door_decor", "unlocked")
	SeparateGridSizes(row)

	CoalesceList(row, 2, "themes", "theme%d")
	CoalesceList(row, 2, "functions", "function%d")
	coalesceAvailability(row, 3)
	coalesceBuyPrices(row, 2)
	return row
}

// FormatClothing reshapes a single clothing row.
func FormatClothing(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "sell", "variation_total")
	FormatAsType(row, AsBool, "vill_equip", "unlocked")

	CoalesceList(row, 5, "label_themes", "label%d")
	CoalesceList(row, 2, "styles", "style%d")
	coalesceAvailability(row, 2)
	coalesceBuyPrices(row, 2)
	return row
}

// FormatGyroid reshapes a single gyroid row.
func FormatGyroid(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "hha_base", "sell", "variation_total", "custom_kits", "cyrus_price")
	FormatAsType(row, AsBool, "customizable", "unlocked")
	SeparateGridSizes(row)

	coalesceAvailability(row, 2)
	coalesceBuyPrices(row, 2)
	return row
}

// FormatPhoto reshapes a single photo or poster row.
func FormatPhoto(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "hha_base", "sell", "custom_kits")
	FormatAsType(row, AsBool, "customizable", "interactable", "unlocked")
	SeparateGridSizes(row)

	coalesceAvailability(row, 2)
	coalesceBuyPrices(row, 2)
	return row
}

// FormatInterior reshapes a single interior (wallpaper, flooring, rug) row.
func FormatInterior(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "hha_base", "sell")
	FormatAsType(row, AsBool, "unlocked")
	SeparateGridSizes(row)

	CoalesceList(row, 2, "themes", "theme%d")
	CoalesceList(row, 2, "colors", "color%d")
	coalesceAvailability(row, 2)
	coalesceBuyPrices(row, 2)
	return row
}

// FormatTool reshapes a single tool row.
func FormatTool(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "sell", "custom_kits", "hha_base")
	FormatAsType(row, AsBool, "customizable", "unlocked")

	coalesceAvailability(row, 3)
	coalesceBuyPrices(row, 2)
	return row
}

// FormatOtherItem reshapes a single miscellaneous item row.
func FormatOtherItem(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "stack", "hha_base", "sell",
		"material_sort", "material_name_sort", "material_seasonality_sort")
	FormatAsType(row, AsBool, "is_fence", "edible", "unlocked")

	coalesceAvailability(row, 3)
	coalesceBuyPrices(row, 1)
	return row
}

// coalesceAvailability collapses availability{N}/availability{N}_note pairs.
func coalesceAvailability(row cargo.Row, slots int) {
	CoalesceObjectList(row, slots, "availability",
		FieldSpec{Name: "from", Pattern: "availability%d"},
		FieldSpec{Name: "note", Pattern: "availability%d_note"})
}

// coalesceBuyPrices collapses buy{N}_price/buy{N}_currency pairs and makes
// the prices numeric.
func coalesceBuyPrices(row cargo.Row, slots int) {
	CoalesceObjectList(row, slots, "buy",
		FieldSpec{Name: "price", Pattern: "buy%d_price"},
		FieldSpec{Name: "currency", Pattern: "buy%d_currency"})
	FormatObjectList(row, AsInt, "buy", "price")
}

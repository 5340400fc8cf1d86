// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import "github.com/nookipedia/nookipedia-api/internal/cargo"

// FormatVariation reshapes a single variation row: the color pair becomes a
// deduplicated colors list. Rows without color columns pass through.
func FormatVariation(row cargo.Row) cargo.Row {
	if _, ok := row["color1"]; ok {
		dedupeColors(row)
	}
	return row
}

// StitchVariationList attaches variation rows to their parent items by
// name. Parents keep their original order; a parent whose variations were
// all filtered out by the query is dropped entirely. Attached variations
// lose their redundant name field.
func StitchVariationList(items, variations []cargo.Row) []cargo.Row {
	return StitchVariationListBy(items, variations, "name")
}

// StitchVariationListBy is StitchVariationList matching on an arbitrary
// column. Furniture variations carry only the identifier column, which can
// differ from the display name.
func StitchVariationListBy(items, variations []cargo.Row, key string) []cargo.Row {
	byName := make(map[string]cargo.Row, len(items))
	for _, item := range items {
		item["variations"] = []any{}
		byName[str(item, key)] = item
	}

	for _, variation := range variations {
		item, ok := byName[str(variation, key)]
		if !ok {
			continue
		}
		delete(variation, key)
		item["variations"] = append(item["variations"].([]any), FormatVariation(variation))
	}

	stitched := []cargo.Row{}
	for _, item := range items {
		if len(item["variations"].([]any)) > 0 {
			stitched = append(stitched, item)
		}
	}
	return stitched
}

// StitchVariation attaches variation rows to a single item. Unlike the list
// stitcher the item survives even with zero variations; the item itself was
// requested by name.
func StitchVariation(item cargo.Row, variations []cargo.Row) cargo.Row {
	list := []any{}
	for _, variation := range variations {
		list = append(list, FormatVariation(variation))
	}
	item["variations"] = list
	return item
}

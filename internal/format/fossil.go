// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import "github.com/nookipedia/nookipedia-api/internal/cargo"

// FormatFossilGroup reshapes a fossil group row.
func FormatFossilGroup(row cargo.Row) cargo.Row {
	FormatAsType(row, AsInt, "room")
	return row
}

// FormatFossil reshapes an individual fossil row.
func FormatFossil(row cargo.Row) cargo.Row {
	FormatAsType(row, AsBool, "interactable")
	FormatAsType(row, AsInt, "sell", "hha_base")
	FormatAsType(row, AsFloat, "width", "length")
	dedupeColors(row)
	return row
}

// StitchFossilGroupList attaches each fossil to its group under a fossils
// list, keyed by the fossil_group column. Groups that end up with no
// fossils are dropped; attached fossils lose their fossil_group field.
func StitchFossilGroupList(groups, fossils []cargo.Row) []cargo.Row {
	byName := make(map[string]cargo.Row, len(groups))
	for _, group := range groups {
		group["fossils"] = []any{}
		byName[str(group, "name")] = group
	}

	for _, fossil := range fossils {
		group, ok := byName[str(fossil, "fossil_group")]
		if !ok {
			continue
		}
		delete(fossil, "fossil_group")
		group["fossils"] = append(group["fossils"].([]any), fossil)
	}

	stitched := []cargo.Row{}
	for _, group := range groups {
		if len(group["fossils"].([]any)) > 0 {
			stitched = append(stitched, group)
		}
	}
	return stitched
}

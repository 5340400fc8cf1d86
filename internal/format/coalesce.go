// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import (
	"fmt"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
)

// FieldSpec describes one member of a numbered column family for
// CoalesceObjectList: Name is the output key, Pattern the printf pattern of
// the source column ("material%d").
type FieldSpec struct {
	Name    string
	Pattern string
}

// CoalesceList collapses pattern-numbered columns 1..elements into a list
// under name. Collection stops at the first empty slot; the wiki fills the
// columns contiguously. The source columns are removed.
func CoalesceList(row cargo.Row, elements int, name, pattern string) {
	list := []any{}
	for i := 1; i <= elements; i++ {
		value := str(row, fmt.Sprintf(pattern, i))
		if value == "" {
			break
		}
		list = append(list, value)
	}
	row[name] = list
	for i := 1; i <= elements; i++ {
		delete(row, fmt.Sprintf(pattern, i))
	}
}

// CoalesceObjectList collapses parallel numbered column families into a
// list of objects under outputName. Slot i contributes one object built
// from every spec's column i; collection stops at the first slot whose
// first-spec column is empty. All source columns are removed.
func CoalesceObjectList(row cargo.Row, elements int, outputName string, specs ...FieldSpec) {
	list := []any{}
	for i := 1; i <= elements; i++ {
		if str(row, fmt.Sprintf(specs[0].Pattern, i)) == "" {
			break
		}
		obj := make(map[string]any, len(specs))
		for _, spec := range specs {
			obj[spec.Name] = row[fmt.Sprintf(spec.Pattern, i)]
		}
		list = append(list, obj)
	}
	row[outputName] = list
	for i := 1; i <= elements; i++ {
		for _, spec := range specs {
			delete(row, fmt.Sprintf(spec.Pattern, i))
		}
	}
}

// FormatObjectList applies a coercion to the named fields of every object
// in a previously coalesced list.
func FormatObjectList(row cargo.Row, coerce func(string) any, name string, fields ...string) {
	list, ok := row[name].([]any)
	if !ok {
		return
	}
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		for _, field := range fields {
			if s, ok := obj[field].(string); ok {
				obj[field] = coerce(s)
			}
		}
	}
}

// dedupeColors collapses the color1/color2 columns into a deduplicated
// colors list, dropping the placeholder "None" value.
func dedupeColors(row cargo.Row) {
	CoalesceList(row, 2, "colors", "color%d")
	list, ok := row["colors"].([]any)
	if !ok {
		return
	}
	seen := make(map[any]bool, len(list))
	deduped := []any{}
	for _, color := range list {
		if color == "None" || seen[color] {
			continue
		}
		seen[color] = true
		deduped = append(deduped, color)
	}
	row["colors"] = deduped
}

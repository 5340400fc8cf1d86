// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import (
	"strconv"
	"strings"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
)

// AsBool maps the wiki's "0"/"1" flags to JSON booleans. Any other value
// passes through unchanged.
func AsBool(value string) any {
	switch value {
	case "0":
		return false
	case "1":
		return true
	default:
		return value
	}
}

// AsInt parses a wiki integer field, treating the empty string as zero.
func AsInt(value string) any {
	n, err := strconv.Atoi("0" + value)
	if err != nil {
		return value
	}
	return n
}

// AsFloat parses a wiki decimal field, treating the empty string as zero.
func AsFloat(value string) any {
	f, err := strconv.ParseFloat("0"+value, 64)
	if err != nil {
		return value
	}
	return f
}

// FormatAsType applies a coercion to each named field that is present as a
// string. Missing fields are skipped, matching the wiki's habit of omitting
// columns on some tables.
func FormatAsType(row cargo.Row, coerce func(string) any, fields ...string) {
	for _, field := range fields {
		if s, ok := row[field].(string); ok {
			row[field] = coerce(s)
		}
	}
}

// str returns the row's field as a string, with missing or non-string
// values reading as empty.
func str(row cargo.Row, key string) string {
	s, _ := row[key].(string)
	return s
}

// SeparateGridSizes splits the "W×H" grid_size field into numeric
// grid_width and grid_length fields. An empty grid_size yields empty
// strings for both, matching the upstream contract.
func SeparateGridSizes(row cargo.Row) {
	gridSize := str(row, "grid_size")
	if gridSize != "" {
		parts := strings.SplitN(gridSize, "×", 2)
		if len(parts) == 2 {
			width, werr := strconv.ParseFloat(parts[0], 64)
			length, lerr := strconv.ParseFloat(parts[1], 64)
			if werr == nil && lerr == nil {
				row["grid_width"] = width
				row["grid_length"] = length
			}
		}
	} else {
		row["grid_width"] = ""
		row["grid_length"] = ""
	}
	delete(row, "grid_size")
}

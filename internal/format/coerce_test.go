// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
)

func TestAsBool(t *testing.T) {
	assert.Equal(t, false, AsBool("0"))
	assert.Equal(t, true, AsBool("1"))
	// Anything else passes through untouched.
	assert.Equal(t, "maybe", AsBool("maybe"))
	assert.Equal(t, "", AsBool(""))
}

func TestAsInt(t *testing.T) {
	assert.Equal(t, 300, AsInt("300"))
	assert.Equal(t, 0, AsInt(""))
	assert.Equal(t, "12,000", AsInt("12,000"))
}

func TestAsFloat(t *testing.T) {
	assert.Equal(t, 1.5, AsFloat("1.5"))
	assert.Equal(t, 0.0, AsFloat(""))
	assert.Equal(t, 0.5, AsFloat(".5"))
	assert.Equal(t, "n/a", AsFloat("n/a"))
}

func TestFormatAsTypeSkipsMissingFields(t *testing.T) {
	row := cargo.Row{"sell": "100"}
	FormatAsType(row, AsInt, "sell", "buy")
	assert.Equal(t, 100, row["sell"])
	_, exists := row["buy"]
	assert.False(t, exists)
}

func TestSeparateGridSizes(t *testing.T) {
	row := cargo.Row{"grid_size": "1.0×2.0"}
	SeparateGridSizes(row)
	assert.Equal(t, 1.0, row["grid_width"])
	assert.Equal(t, 2.0, row["grid_length"])
	_, exists := row["grid_size"]
	assert.False(t, exists)
}

func TestSeparateGridSizesEmpty(t *testing.T) {
	row := cargo.Row{"grid_size": ""}
	SeparateGridSizes(row)
	assert.Equal(t, "", row["grid_width"])
	assert.Equal(t, "", row["grid_length"])
}

func TestCoalesceListStopsAtFirstEmptySlot(t *testing.T) {
	row := cargo.Row{
		"theme1": "fancy",
		"theme2": "",
	}
	CoalesceList(row, 2, "themes", "theme%d")
	assert.Equal(t, []any{"fancy"}, row["themes"])
	_, exists := row["theme1"]
	assert.False(t, exists)
}

func TestCoalesceObjectList(t *testing.T) {
	row := cargo.Row{
		"material1":     "wood",
		"material1_num": "4",
		"material2":     "iron nugget",
		"material2_num": "2",
		"material3":     "",
		"material3_num": "",
		"material4":     "",
		"material4_num": "",
		"material5":     "",
		"material5_num": "",
		"material6":     "",
		"material6_num": "",
	}
	CoalesceObjectList(row, 6, "materials",
		FieldSpec{Name: "name", Pattern: "material%d"},
		FieldSpec{Name: "count", Pattern: "material%d_num"})
	FormatObjectList(row, AsInt, "materials", "count")

	materials := row["materials"].([]any)
	assert.Len(t, materials, 2)
	assert.Equal(t, map[string]any{"name": "wood", "count": 4}, materials[0])
	assert.Equal(t, map[string]any{"name": "iron nugget", "count": 2}, materials[1])

	for _, gone := range []string{"material1", "material1_num", "material6_num"} {
		_, exists := row[gone]
		assert.False(t, exists, gone)
	}
}

func TestDedupeColorsDropsNoneAndDuplicates(t *testing.T) {
	row := cargo.Row{"color1": "Red", "color2": "Red"}
	dedupeColors(row)
	assert.Equal(t, []any{"Red"}, row["colors"])

	row = cargo.Row{"color1": "Blue", "color2": "None"}
	dedupeColors(row)
	assert.Equal(t, []any{"Blue"}, row["colors"])
}

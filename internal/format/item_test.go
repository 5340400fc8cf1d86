// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/version"
)

func artRow() cargo.Row {
	return cargo.Row{
		"name":             "Jolly Painting",
		"has_fake":         "1",
		"buy":              "4980",
		"sell":             "1245",
		"width":            "1.0",
		"length":           "1.0",
		"image_url":        "https://cdn.example.org/real.png",
		"texture_url":      "https://cdn.example.org/real_texture.png",
		"description":      "A cheerful painting.",
		"fake_image_url":   "https://cdn.example.org/fake.png",
		"fake_texture_url": "https://cdn.example.org/fake_texture.png",
		"authenticity":     "The eyes differ.",
	}
}

func TestFormatArtLatestNestsInfo(t *testing.T) {
	row := FormatArt(artRow(), Options{Version: version.Latest})

	assert.Equal(t, true, row["has_fake"])
	assert.Equal(t, 4980, row["buy"])
	assert.Equal(t, 1.0, row["width"])

	real, ok := row["real_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A cheerful painting.", real["description"])

	fake, ok := row["fake_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "The eyes differ.", fake["description"])

	for _, gone := range []string{"image_url", "texture_url", "description", "fake_image_url", "fake_texture_url", "authenticity"} {
		_, exists := row[gone]
		assert.False(t, exists, gone)
	}
}

func TestFormatArtNoFake(t *testing.T) {
	row := artRow()
	row["has_fake"] = "0"
	FormatArt(row, Options{Version: version.Latest})
	assert.Nil(t, row["fake_info"])
}

func TestFormatArtPre16KeepsFlatFields(t *testing.T) {
	row := FormatArt(artRow(), Options{Version: version.MustParse("1.5")})

	_, exists := row["real_info"]
	assert.False(t, exists)
	assert.Equal(t, "A cheerful painting.", row["description"])
	assert.Equal(t, true, row["has_fake"])
}

func TestFormatRecipe(t *testing.T) {
	row := cargo.Row{
		"name":                  "ironwood kitchenette",
		"serial_id":             "2238",
		"recipes_to_unlock":     "0",
		"sell":                  "NA",
		"material1":             "wood",
		"material1_num":         "4",
		"material2":             "",
		"material2_num":         "",
		"material3":             "",
		"material3_num":         "",
		"material4":             "",
		"material4_num":         "",
		"material5":             "",
		"material5_num":         "",
		"material6":             "",
		"material6_num":         "",
		"diy_availability1":     "Nook Stop",
		"diy_availability1_note": "",
		"diy_availability2":     "",
		"diy_availability2_note": "",
		"buy1_price":            "2000",
		"buy1_currency":         "Bells",
		"buy2_price":            "",
		"buy2_currency":         "",
	}
	FormatRecipe(row)

	assert.Equal(t, 2238, row["serial_id"])
	assert.Equal(t, 0, row["sell"], `"NA" sell prices read as zero`)

	materials := row["materials"].([]any)
	require.Len(t, materials, 1)
	assert.Equal(t, map[string]any{"name": "wood", "count": 4}, materials[0])

	avail := row["availability"].([]any)
	require.Len(t, avail, 1)
	assert.Equal(t, map[string]any{"from": "Nook Stop", "note": ""}, avail[0])

	buy := row["buy"].([]any)
	require.Len(t, buy, 1)
	assert.Equal(t, map[string]any{"price": 2000, "currency": "Bells"}, buy[0])
}

func TestFormatFurniture(t *testing.T) {
	row := cargo.Row{
		"name":               "ironwood dresser",
		"hha_base":           "151",
		"sell":               "4300",
		"variation_total":    "0",
		"pattern_total":      "0",
		"custom_kits":        "5",
		"customizable":       "1",
		"lucky":              "0",
		"door_decor":         "0",
		"unlocked":           "1",
		"grid_size":          "1.0×0.5",
		"theme1":             "facility",
		"theme2":             "",
		"function1":          "storage",
		"function2":          "",
		"availability1":      "Crafting",
		"availability1_note": "",
		"availability2":      "",
		"availability2_note": "",
		"availability3":      "",
		"availability3_note": "",
		"buy1_price":         "",
		"buy1_currency":      "",
		"buy2_price":         "",
		"buy2_currency":      "",
	}
	FormatFurniture(row)

	assert.Equal(t, true, row["customizable"])
	assert.Equal(t, 5, row["custom_kits"])
	assert.Equal(t, 1.0, row["grid_width"])
	assert.Equal(t, 0.5, row["grid_length"])
	assert.Equal(t, []any{"facility"}, row["themes"])
	assert.Equal(t, []any{"storage"}, row["functions"])
	assert.Equal(t, []any{}, row["buy"])
}

func TestFormatFossilAndGroupStitch(t *testing.T) {
	groups := []cargo.Row{
		{"name": "T. Rex", "room": "2"},
		{"name": "Empty Group", "room": "1"},
	}
	for _, g := range groups {
		FormatFossilGroup(g)
	}
	fossils := []cargo.Row{
		{"name": "T. Rex Skull", "fossil_group": "T. Rex", "sell": "6000", "hha_base": "", "interactable": "0", "width": "2.0", "length": "2.0", "color1": "Brown", "color2": "None"},
	}
	for _, f := range fossils {
		FormatFossil(f)
	}

	assert.Equal(t, 2, groups[0]["room"])
	assert.Equal(t, 6000, fossils[0]["sell"])
	assert.Equal(t, []any{"Brown"}, fossils[0]["colors"])

	stitched := StitchFossilGroupList(groups, fossils)
	require.Len(t, stitched, 1, "groups without fossils are dropped")
	assert.Equal(t, "T. Rex", stitched[0]["name"])

	attached := stitched[0]["fossils"].([]any)
	require.Len(t, attached, 1)
	_, exists := attached[0].(cargo.Row)["fossil_group"]
	assert.False(t, exists)
}

func TestStitchVariationList(t *testing.T) {
	items := []cargo.Row{
		{"name": "wooden chair"},
		{"name": "stone stool"},
	}
	variations := []cargo.Row{
		{"name": "wooden chair", "variation": "oak", "color1": "Beige", "color2": "None"},
		{"name": "wooden chair", "variation": "walnut", "color1": "Brown", "color2": "Brown"},
	}

	stitched := StitchVariationList(items, variations)
	require.Len(t, stitched, 1, "items with no matching variations are dropped")
	assert.Equal(t, "wooden chair", stitched[0]["name"])

	attached := stitched[0]["variations"].([]any)
	require.Len(t, attached, 2)
	first := attached[0].(cargo.Row)
	assert.Equal(t, "oak", first["variation"])
	assert.Equal(t, []any{"Beige"}, first["colors"])
	_, exists := first["name"]
	assert.False(t, exists, "attached variations lose the redundant name")
}

func TestStitchVariationKeepsParent(t *testing.T) {
	item := cargo.Row{"name": "stone stool"}
	stitched := StitchVariation(item, nil)
	assert.Equal(t, []any{}, stitched["variations"])
}

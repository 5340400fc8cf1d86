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

func villagerRow() cargo.Row {
	row := cargo.Row{
		"name":         "Audie",
		"personality":  "Big sister",
		"species":      "Rhinoceros",
		"islander":     "0",
		"debut":        "ACNH",
		"prev_phrase":  "cool",
		"prev_phrase2": "",
	}
	for _, game := range villagerGames {
		row[game] = "0"
	}
	return row
}

func TestFormatVillagerLatest(t *testing.T) {
	row := villagerRow()
	row["nh"] = "1"
	FormatVillagerList([]cargo.Row{row}, Options{Version: version.Latest})

	// Labels are not aliased for modern clients.
	assert.Equal(t, "Big sister", row["personality"])
	assert.Equal(t, "Rhinoceros", row["species"])
	assert.Equal(t, false, row["islander"])
	assert.Equal(t, "NH", row["debut"])
	assert.Equal(t, []any{"cool"}, row["prev_phrases"])
	_, exists := row["prev_phrase"]
	assert.False(t, exists)
}

func TestFormatVillagerLegacyAliases(t *testing.T) {
	row := villagerRow()
	FormatVillagerList([]cargo.Row{row}, Options{Version: version.MustParse("1.2")})

	assert.Equal(t, "Sisterly", row["personality"])
	assert.Equal(t, "Rhino", row["species"])
}

func TestFormatVillagerAppearances(t *testing.T) {
	row := villagerRow()
	row["nl"] = "1"
	row["nh"] = "1"
	FormatVillagerList([]cargo.Row{row}, Options{Version: version.Latest})

	assert.Equal(t, []any{"NL", "NH"}, row["appearances"])
	for _, game := range villagerGames {
		_, exists := row[game]
		assert.False(t, exists, game)
	}
}

func TestFormatVillagerDebutSwitcher(t *testing.T) {
	tests := map[string]string{
		"DnMe+": "E_PLUS",
		"ACGC":  "AC",
		"ACNL":  "NL",
		"DnM":   "DNM",
	}
	for input, want := range tests {
		row := villagerRow()
		row["debut"] = input
		FormatVillagerList([]cargo.Row{row}, Options{Version: version.Latest})
		assert.Equal(t, want, row["debut"], input)
	}
}

func TestFormatVillagerNHDetails(t *testing.T) {
	row := villagerRow()
	row["nh"] = "1"
	for _, field := range nhDetailFields {
		row[field] = ""
	}
	row["nh_quote"] = "Do what you love!"
	row["nh_fav_style1"] = "Cool"
	row["nh_fav_color1"] = "Red"
	row["nh_fav_color2"] = "Aqua"

	FormatVillagerList([]cargo.Row{row}, Options{Version: version.Latest, NHDetails: true})

	details, ok := row["nh_details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Do what you love!", details["quote"])
	assert.Equal(t, []any{"Cool"}, details["fav_styles"])
	assert.Equal(t, []any{"Red", "Aqua"}, details["fav_colors"])

	for _, field := range nhDetailFields {
		_, exists := row[field]
		assert.False(t, exists, field)
	}
}

func TestFormatVillagerNHDetailsNullWhenAbsent(t *testing.T) {
	row := villagerRow()
	row["nh"] = "0"
	for _, field := range nhDetailFields {
		row[field] = ""
	}

	FormatVillagerList([]cargo.Row{row}, Options{Version: version.Latest, NHDetails: true})
	assert.Nil(t, row["nh_details"])
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package format

import (
	"strings"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/version"
)

// villagerGames are the per-game appearance flag columns, in release order.
var villagerGames = []string{"dnm", "ac", "e_plus", "ww", "cf", "nl", "wa", "nh", "film", "hhd", "pc"}

// debutAliases maps the wiki's long-form debut identifiers to the API's
// short game codes.
var debutAliases = map[string]string{
	"DNME+": "E_PLUS",
	"ACGC":  "AC",
	"ACWW":  "WW",
	"ACCF":  "CF",
	"ACNL":  "NL",
	"ACNLA": "WA",
	"ACNH":  "NH",
	"ACHHD": "HHD",
	"ACPC":  "PC",
}

// nhDetailFields are the nh_-prefixed columns folded into the nh_details
// object (or dropped) when nhdetails=true.
var nhDetailFields = []string{
	"nh_image_url", "nh_photo_url", "nh_icon_url", "nh_quote",
	"nh_sub-personality", "nh_catchphrase", "nh_clothing",
	"nh_clothing_variation", "nh_fav_style1", "nh_fav_style2",
	"nh_fav_color1", "nh_fav_color2", "nh_hobby",
	"nh_house_interior_url", "nh_house_exterior_url", "nh_wallpaper",
	"nh_flooring", "nh_music", "nh_music_note", "nh_umbrella",
}

// FormatVillagerList reshapes villager rows in place and returns them.
func FormatVillagerList(rows []cargo.Row, opts Options) []cargo.Row {
	for _, row := range rows {
		formatVillager(row, opts)
	}
	return rows
}

func formatVillager(row cargo.Row, opts Options) {
	// Older clients got the pre-rename personality and species labels.
	if opts.Version.AtMost(version.MustParse("1.3")) {
		if str(row, "personality") == "Big sister" {
			row["personality"] = "Sisterly"
		}
		switch str(row, "species") {
		case "Bear cub":
			row["species"] = "Cub"
		case "Rhinoceros":
			row["species"] = "Rhino"
		}
	}

	FormatAsType(row, AsBool, "islander")

	debut := strings.ToUpper(str(row, "debut"))
	if alias, ok := debutAliases[debut]; ok {
		debut = alias
	}
	row["debut"] = debut

	prevPhrases := []any{}
	if phrase := str(row, "prev_phrase"); phrase != "" {
		prevPhrases = append(prevPhrases, phrase)
		if phrase2 := str(row, "prev_phrase2"); phrase2 != "" {
			prevPhrases = append(prevPhrases, phrase2)
		}
	}
	row["prev_phrases"] = prevPhrases
	delete(row, "prev_phrase")
	delete(row, "prev_phrase2")

	if opts.NHDetails {
		formatNHDetails(row)
	}

	appearances := []any{}
	for _, game := range villagerGames {
		if str(row, game) == "1" {
			appearances = append(appearances, strings.ToUpper(game))
		}
		delete(row, game)
	}
	row["appearances"] = appearances
}

// formatNHDetails folds the nh_* columns into a nested object, or null for
// villagers absent from New Horizons.
func formatNHDetails(row cargo.Row) {
	if str(row, "nh") == "0" {
		row["nh_details"] = nil
	} else {
		details := map[string]any{
			"image_url":           row["nh_image_url"],
			"photo_url":           row["nh_photo_url"],
			"icon_url":            row["nh_icon_url"],
			"quote":               row["nh_quote"],
			"sub-personality":     row["nh_sub-personality"],
			"catchphrase":         row["nh_catchphrase"],
			"clothing":            row["nh_clothing"],
			"clothing_variation":  row["nh_clothing_variation"],
			"fav_styles":          []any{},
			"fav_colors":          []any{},
			"hobby":               row["nh_hobby"],
			"house_interior_url":  row["nh_house_interior_url"],
			"house_exterior_url":  row["nh_house_exterior_url"],
			"house_wallpaper":     row["nh_wallpaper"],
			"house_flooring":      row["nh_flooring"],
			"house_music":         row["nh_music"],
			"house_music_note":    row["nh_music_note"],
			"umbrella":            row["nh_umbrella"],
		}

		favStyles := []any{}
		if s := str(row, "nh_fav_style1"); s != "" {
			favStyles = append(favStyles, s)
			if s2 := str(row, "nh_fav_style2"); s2 != "" {
				favStyles = append(favStyles, s2)
			}
		}
		details["fav_styles"] = favStyles

		favColors := []any{}
		if c := str(row, "nh_fav_color1"); c != "" {
			favColors = append(favColors, c)
			if c2 := str(row, "nh_fav_color2"); c2 != "" {
				favColors = append(favColors, c2)
			}
		}
		details["fav_colors"] = favColors

		row["nh_details"] = details
	}

	for _, field := range nhDetailFields {
		delete(row, field)
	}
}

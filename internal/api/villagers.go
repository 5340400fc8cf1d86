// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"
	"strings"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/format"
)

const villagerFields = "name,_pageName=url,alt_name,title_color,text_color,id,image_url,species,personality,gender,birthday_month,birthday_day,sign,quote,phrase,prev_phrase,prev_phrase2,clothing,islander,debut,dnm,ac,e_plus,ww,cf,nl,wa,nh,film,hhd,pc"

// villagerNHFields joins the base villager table with the New Horizons
// villager and house tables when nhdetails=true.
const villagerNHFields = "villager.name,villager._pageName=url,villager.name,villager.alt_name,villager.title_color,villager.text_color,villager.id,villager.image_url,villager.species,villager.personality,villager.gender,villager.birthday_month,villager.birthday_day,villager.sign,villager.quote,villager.phrase,villager.prev_phrase,villager.prev_phrase2,villager.clothing,villager.islander,villager.debut,villager.dnm,villager.ac,villager.e_plus,villager.ww,villager.cf,villager.nl,villager.wa,villager.nh,villager.film,villager.hhd,villager.pc,nh_villager.image_url=nh_image_url,nh_villager.photo_url=nh_photo_url,nh_villager.icon_url=nh_icon_url,nh_villager.quote=nh_quote,nh_villager.sub_personality=nh_sub-personality,nh_villager.catchphrase=nh_catchphrase,nh_villager.clothing=nh_clothing,nh_villager.clothing_variation=nh_clothing_variation,nh_villager.fav_style1=nh_fav_style1,nh_villager.fav_style2=nh_fav_style2,nh_villager.fav_color1=nh_fav_color1,nh_villager.fav_color2=nh_fav_color2,nh_villager.hobby=nh_hobby,nh_house.interior_image_url=nh_house_interior_url,nh_house.exterior_image_url=nh_house_exterior_url,nh_house.wallpaper=nh_wallpaper,nh_house.flooring=nh_flooring,nh_house.music=nh_music,nh_house.music_note=nh_music_note"

const villagerNHJoin = "villager._pageName=nh_villager._pageName,villager._pageName=nh_house._pageName"

var villagerPersonalities = []string{
	"lazy", "jock", "cranky", "smug", "normal", "peppy", "snooty",
	"sisterly", "big sister",
}

// villagerGames are the per-game appearance columns on the villager table.
var villagerGames = []string{
	"dnm", "ac", "e_plus", "ww", "cf", "nl", "wa", "nh", "film", "hhd", "pc",
}

var villagerSpecies = []string{
	"alligator", "anteater", "bear", "bear cub", "bird", "bull", "cat",
	"cub", "chicken", "cow", "deer", "dog", "duck", "eagle", "elephant",
	"frog", "goat", "gorilla", "hamster", "hippo", "horse", "koala",
	"kangaroo", "lion", "monkey", "mouse", "octopus", "ostrich", "penguin",
	"pig", "rabbit", "rhino", "rhinoceros", "sheep", "squirrel", "tiger",
	"wolf",
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func (s *Server) handleVillagerList(w http.ResponseWriter, r *http.Request) {
	opts, ok := formatOptions(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	var where cargo.WhereBuilder
	if name := q.Get("name"); name != "" {
		where.Match("villager.name", capitalize(strings.ReplaceAll(name, "_", " ")))
	}
	if birthmonth := q.Get("birthmonth"); birthmonth != "" {
		month := MonthToName(birthmonth)
		if month == "" {
			writeInvalidMonth(w, birthmonth)
			return
		}
		where.Match("villager.birthday_month", month)
	}
	if birthday := q.Get("birthday"); birthday != "" {
		where.Match("villager.birthday_day", birthday)
	}
	if personality := strings.ToLower(q.Get("personality")); personality != "" {
		if !contains(villagerPersonalities, personality) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided personality.",
				"Ensure personality is either lazy, jock, cranky, smug, normal, peppy, snooty, or sisterly/big sister.")
			return
		}
		// The wiki kept the pre-rename label.
		if personality == "sisterly" {
			personality = "big sister"
		}
		where.Match("villager.personality", personality)
	}
	if species := strings.ToLower(q.Get("species")); species != "" {
		if !contains(villagerSpecies, species) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided species.",
				"Ensure provided species is valid.")
			return
		}
		switch species {
		case "cub":
			species = "bear cub"
		case "rhino":
			species = "rhinoceros"
		}
		where.Match("villager.species", species)
	}
	for _, game := range q["game"] {
		game = strings.ToLower(game)
		if !contains(villagerGames, game) {
			writeError(w, http.StatusBadRequest,
				"Could not recognize provided game.",
				"Ensure game is either dnm, ac, e_plus, ww, cf, nl, wa, nh, film, hhd, or pc.")
			return
		}
		where.Match("villager."+strings.ReplaceAll(game, "_", " "), "1")
	}

	req := cargo.QueryRequest{
		Tables: "villager",
		Fields: villagerFields,
		Where:  where.String(),
		Limit:  s.cfg.Limits.Villager,
	}
	switch {
	case excludeDetails(r):
		req.Fields = "name"
	case opts.NHDetails:
		req.Tables = "villager,nh_villager,nh_house"
		req.JoinOn = villagerNHJoin
		req.Fields = villagerNHFields
	}

	rows, ok := s.fetch(w, r, req)
	if !ok {
		return
	}
	if excludeDetails(r) {
		writeJSON(w, http.StatusOK, nameList(rows))
		return
	}
	writeJSON(w, http.StatusOK, format.FormatVillagerList(rows, opts))
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/format"
	"github.com/nookipedia/nookipedia-api/internal/version"
)

const fishFields = "name,_pageName=url,number,image_url,render_url,catchphrase,catchphrase2,catchphrase3,location,shadow_size,rarity,total_catch,sell_nook,sell_cj,tank_width,tank_length,time,time_n_availability=time_n_months,time_s_availability=time_s_months,time2,time2_n_availability=time2_n_months,time2_s_availability=time2_s_months,n_availability,n_m1,n_m2,n_m3,n_m4,n_m5,n_m6,n_m7,n_m8,n_m9,n_m10,n_m11,n_m12,n_m1_time,n_m2_time,n_m3_time,n_m4_time,n_m5_time,n_m6_time,n_m7_time,n_m8_time,n_m9_time,n_m10_time,n_m11_time,n_m12_time,s_availability,s_m1,s_m2,s_m3,s_m4,s_m5,s_m6,s_m7,s_m8,s_m9,s_m10,s_m11,s_m12,s_m1_time,s_m2_time,s_m3_time,s_m4_time,s_m5_time,s_m6_time,s_m7_time,s_m8_time,s_m9_time,s_m10_time,s_m11_time,s_m12_time"

const bugFields = "name,_pageName=url,number,image_url,render_url,catchphrase,catchphrase2,location,rarity,total_catch,sell_nook,sell_flick,tank_width,tank_length,time,time_n_availability=time_n_months,time_s_availability=time_s_months,time2,time2_n_availability=time2_n_months,time2_s_availability=time2_s_months,n_availability,n_m1,n_m2,n_m3,n_m4,n_m5,n_m6,n_m7,n_m8,n_m9,n_m10,n_m11,n_m12,n_m1_time,n_m2_time,n_m3_time,n_m4_time,n_m5_time,n_m6_time,n_m7_time,n_m8_time,n_m9_time,n_m10_time,n_m11_time,n_m12_time,s_availability,s_m1,s_m2,s_m3,s_m4,s_m5,s_m6,s_m7,s_m8,s_m9,s_m10,s_m11,s_m12,s_m1_time,s_m2_time,s_m3_time,s_m4_time,s_m5_time,s_m6_time,s_m7_time,s_m8_time,s_m9_time,s_m10_time,s_m11_time,s_m12_time"

const seaFields = "name,_pageName=url,number,image_url,render_url,catchphrase,catchphrase2,shadow_size,shadow_movement,rarity,total_catch,sell_nook,tank_width,tank_length,time,time_n_availability=time_n_months,time_s_availability=time_s_months,time2,time2_n_availability=time2_n_months,time2_s_availability=time2_s_months,n_availability,n_m1,n_m2,n_m3,n_m4,n_m5,n_m6,n_m7,n_m8,n_m9,n_m10,n_m11,n_m12,n_m1_time,n_m2_time,n_m3_time,n_m4_time,n_m5_time,n_m6_time,n_m7_time,n_m8_time,n_m9_time,n_m10_time,n_m11_time,n_m12_time,s_availability,s_m1,s_m2,s_m3,s_m4,s_m5,s_m6,s_m7,s_m8,s_m9,s_m10,s_m11,s_m12,s_m1_time,s_m2_time,s_m3_time,s_m4_time,s_m5_time,s_m6_time,s_m7_time,s_m8_time,s_m9_time,s_m10_time,s_m11_time,s_m12_time"

// critterMonthFields is the excludedetails projection: names plus the month
// flags needed to answer month-filtered queries.
const critterMonthFields = "name,n_m1,n_m2,n_m3,n_m4,n_m5,n_m6,n_m7,n_m8,n_m9,n_m10,n_m11,n_m12,s_m1,s_m2,s_m3,s_m4,s_m5,s_m6,s_m7,s_m8,s_m9,s_m10,s_m11,s_m12"

func (s *Server) handleFishList(w http.ResponseWriter, r *http.Request) {
	s.critterList(w, r, "nh_fish", fishFields, s.cfg.Limits.Fish)
}

func (s *Server) handleFish(w http.ResponseWriter, r *http.Request) {
	s.critterSingle(w, r, "nh_fish", fishFields)
}

func (s *Server) handleBugList(w http.ResponseWriter, r *http.Request) {
	s.critterList(w, r, "nh_bug", bugFields, s.cfg.Limits.Bug)
}

func (s *Server) handleBug(w http.ResponseWriter, r *http.Request) {
	s.critterSingle(w, r, "nh_bug", bugFields)
}

func (s *Server) handleSeaList(w http.ResponseWriter, r *http.Request) {
	s.critterList(w, r, "nh_sea_creature", seaFields, s.cfg.Limits.Sea)
}

func (s *Server) handleSeaCreature(w http.ResponseWriter, r *http.Request) {
	s.critterSingle(w, r, "nh_sea_creature", seaFields)
}

// critterList serves the three critter list endpoints. With a month filter
// the response splits into hemispheres, since the two hemispheres' seasons
// are offset by six months.
func (s *Server) critterList(w http.ResponseWriter, r *http.Request, table, fields string, limit int) {
	opts, ok := formatOptions(w, r)
	if !ok {
		return
	}

	listFields := fields
	if excludeDetails(r) {
		listFields = critterMonthFields
	}

	if monthArg := r.URL.Query().Get("month"); monthArg != "" {
		month, valid := MonthToInt(monthArg, time.Now)
		if !valid {
			writeInvalidMonth(w, monthArg)
			return
		}
		m := strconv.Itoa(month)

		north, ok := s.fetch(w, r, cargo.QueryRequest{
			Tables: table, Fields: listFields, Where: `n_m` + m + `="1"`, Limit: limit,
		})
		if !ok {
			return
		}
		south, ok := s.fetch(w, r, cargo.QueryRequest{
			Tables: table, Fields: listFields, Where: `s_m` + m + `="1"`, Limit: limit,
		})
		if !ok {
			return
		}
		if len(north) == 0 || len(south) == 0 {
			writeInvalidMonth(w, monthArg)
			return
		}

		if excludeDetails(r) {
			writeJSON(w, http.StatusOK, map[string]any{
				"month": m, "north": nameList(north), "south": nameList(south),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"month": m,
			"north": format.MonthsToArray(format.FormatCritterList(north, opts), opts),
			"south": format.MonthsToArray(format.FormatCritterList(south, opts), opts),
		})
		return
	}

	rows, ok := s.fetch(w, r, cargo.QueryRequest{Tables: table, Fields: listFields, Limit: limit})
	if !ok {
		return
	}
	if excludeDetails(r) {
		writeJSON(w, http.StatusOK, nameList(rows))
		return
	}
	writeJSON(w, http.StatusOK, format.MonthsToArray(format.FormatCritterList(rows, opts), opts))
}

func (s *Server) critterSingle(w http.ResponseWriter, r *http.Request, table, fields string) {
	opts, ok := formatOptions(w, r)
	if !ok {
		return
	}

	var where cargo.WhereBuilder
	where.Match("name", pathName(r))

	row, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: table, Fields: fields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}

	rows := format.MonthsToArray(format.FormatCritterList([]cargo.Row{row}, opts), opts)

	// The first release wrapped single critters in a one-element array.
	if opts.Version.Exactly(version.MustParse("1.0")) {
		writeJSON(w, http.StatusOK, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows[0])
}

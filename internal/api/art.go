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

const artFields = "name,_pageName=url,image_url,has_fake,fake_image_url,art_name,author,year,art_style,description,buy_price=buy,sell,availability,authenticity,width,length"

func (s *Server) handleArtList(w http.ResponseWriter, r *http.Request) {
	opts, ok := formatOptions(w, r)
	if !ok {
		return
	}

	var where cargo.WhereBuilder
	switch strings.ToLower(r.URL.Query().Get("hasfake")) {
	case "true":
		where.Raw("has_fake = true")
	case "false":
		where.Raw("has_fake = false")
	}

	fields := artFields
	if excludeDetails(r) {
		fields = "name"
	}

	rows, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_art", Fields: fields, Where: where.String(), Limit: s.cfg.Limits.Art,
	})
	if !ok {
		return
	}

	if excludeDetails(r) {
		writeJSON(w, http.StatusOK, nameList(rows))
		return
	}
	out := make([]cargo.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, format.FormatArt(row, opts))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleArt(w http.ResponseWriter, r *http.Request) {
	opts, ok := formatOptions(w, r)
	if !ok {
		return
	}

	var where cargo.WhereBuilder
	where.Match("name", pathName(r))

	row, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: "nh_art", Fields: artFields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, format.FormatArt(row, opts))
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/format"
)

const fossilGroupFields = "name,_pageName=url,room,description"

const fossilFields = "name,_pageName=url,image_url,fossil_group,interactable,sell,color1,color2,hha_base,width,length"

func (s *Server) fetchFossilGroups(w http.ResponseWriter, r *http.Request, where string, limit int) ([]cargo.Row, bool) {
	groups, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_fossil_group", Fields: fossilGroupFields, Where: where, Limit: limit,
	})
	if !ok {
		return nil, false
	}
	for _, group := range groups {
		format.FormatFossilGroup(group)
	}
	return groups, true
}

func (s *Server) fetchFossils(w http.ResponseWriter, r *http.Request, where string, limit int) ([]cargo.Row, bool) {
	fossils, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_fossil", Fields: fossilFields, Where: where, Limit: limit,
	})
	if !ok {
		return nil, false
	}
	for _, fossil := range fossils {
		format.FormatFossil(fossil)
	}
	return fossils, true
}

func (s *Server) handleFossilGroupList(w http.ResponseWriter, r *http.Request) {
	groups, ok := s.fetchFossilGroups(w, r, "", s.cfg.Limits.FossilGroup)
	if !ok {
		return
	}
	if excludeDetails(r) {
		writeJSON(w, http.StatusOK, nameList(groups))
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleFossilList(w http.ResponseWriter, r *http.Request) {
	fossils, ok := s.fetchFossils(w, r, "", s.cfg.Limits.FossilIndividual)
	if !ok {
		return
	}
	if excludeDetails(r) {
		writeJSON(w, http.StatusOK, nameList(fossils))
		return
	}
	writeJSON(w, http.StatusOK, fossils)
}

func (s *Server) handleFossilAllList(w http.ResponseWriter, r *http.Request) {
	groups, ok := s.fetchFossilGroups(w, r, "", s.cfg.Limits.FossilGroup)
	if !ok {
		return
	}
	fossils, ok := s.fetchFossils(w, r, "", s.cfg.Limits.FossilIndividual)
	if !ok {
		return
	}

	stitched := format.StitchFossilGroupList(groups, fossils)
	if excludeDetails(r) {
		out := make([]map[string]any, 0, len(stitched))
		for _, group := range stitched {
			names := []any{}
			for _, fossil := range group["fossils"].([]any) {
				names = append(names, fossil.(cargo.Row)["name"])
			}
			out = append(out, map[string]any{"group": group["name"], "fossils": names})
		}
		writeJSON(w, http.StatusOK, out)
		return
	}
	writeJSON(w, http.StatusOK, stitched)
}

func (s *Server) handleFossilGroup(w http.ResponseWriter, r *http.Request) {
	var where cargo.WhereBuilder
	where.Match("name", pathName(r))

	group, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: "nh_fossil_group", Fields: fossilGroupFields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, format.FormatFossilGroup(group))
}

func (s *Server) handleFossil(w http.ResponseWriter, r *http.Request) {
	var where cargo.WhereBuilder
	where.Match("name", pathName(r))

	fossil, ok := s.fetchOne(w, r, cargo.QueryRequest{
		Tables: "nh_fossil", Fields: fossilFields, Where: where.String(), Limit: 1,
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, format.FormatFossil(fossil))
}

// handleFossilAll resolves a name that may be either an individual fossil
// or a fossil group, and returns the full group with its fossils attached
// plus a matched object saying which interpretation won.
func (s *Server) handleFossilAll(w http.ResponseWriter, r *http.Request) {
	name := pathName(r)

	var fossilWhere cargo.WhereBuilder
	fossilWhere.Match("name", name)
	candidates, ok := s.fetch(w, r, cargo.QueryRequest{
		Tables: "nh_fossil", Fields: "name,fossil_group", Where: fossilWhere.String(), Limit: 1,
	})
	if !ok {
		return
	}

	var groupWhere cargo.WhereBuilder
	matched := map[string]any{"type": "group"}
	if len(candidates) > 0 {
		fossil := candidates[0]
		groupName, _ := fossil["fossil_group"].(string)
		groupWhere.Match("name", groupName)
		matched = map[string]any{"type": "individual", "name": fossil["name"]}
	} else {
		groupWhere.Match("name", name)
	}

	groupQuery := cargo.QueryRequest{
		Tables: "nh_fossil_group", Fields: fossilGroupFields, Where: groupWhere.String(), Limit: 1,
	}
	groups, ok := s.fetch(w, r, groupQuery)
	if !ok {
		return
	}
	if len(groups) == 0 {
		writeNotFound(w, describeQuery(groupQuery))
		return
	}
	group := format.FormatFossilGroup(groups[0])
	if len(candidates) == 0 {
		matched["name"] = group["name"]
	}
	group["matched"] = matched

	groupName, _ := group["name"].(string)
	var memberWhere cargo.WhereBuilder
	memberWhere.Match("fossil_group", groupName)
	fossils, ok := s.fetchFossils(w, r, memberWhere.String(), 10)
	if !ok {
		return
	}
	members := []any{}
	for _, fossil := range fossils {
		delete(fossil, "fossil_group")
		members = append(members, fossil)
	}
	group["fossils"] = members

	writeJSON(w, http.StatusOK, group)
}

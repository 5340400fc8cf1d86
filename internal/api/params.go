// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/format"
	"github.com/nookipedia/nookipedia-api/internal/version"
)

// pathName extracts the item name from the URL, with underscores standing
// in for spaces ("Great_statue" -> "Great statue"). chi decodes percent
// escapes before routing.
func pathName(r *http.Request) string {
	return strings.ReplaceAll(chi.URLParam(r, "name"), "_", " ")
}

// thumbSize returns the requested CDN thumbnail width, or "".
func thumbSize(r *http.Request) string {
	return r.URL.Query().Get("thumbsize")
}

// rejectThumbSize refuses thumbsize on stitched list endpoints, where
// resolving a thumbnail per variation row would mean thousands of upstream
// round trips.
func rejectThumbSize(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := r.URL.Query()["thumbsize"]; ok {
		writeError(w, http.StatusBadRequest,
			"Invalid arguments", "Cannot have thumbsize in a group item request")
		return false
	}
	return true
}

// excludeDetails reports whether the client asked for a bare name list.
func excludeDetails(r *http.Request) bool {
	return r.URL.Query().Get("excludedetails") == "true"
}

// acceptVersion parses the Accept-Version header, writing the 400 contract
// body on malformed input. An absent header means latest.
func acceptVersion(w http.ResponseWriter, r *http.Request) (version.Version, bool) {
	v, err := version.Parse(r.Header.Get("Accept-Version"))
	if err != nil {
		writeError(w, http.StatusBadRequest,
			"Invalid header arguments",
			"Accept-Version must be `#`, `#.#`, `#.#.#`, or latest. (defaults to latest, if not supplied)")
		return version.Version{}, false
	}
	return v, true
}

// formatOptions bundles the per-request switches the formatters care about.
func formatOptions(w http.ResponseWriter, r *http.Request) (format.Options, bool) {
	v, ok := acceptVersion(w, r)
	if !ok {
		return format.Options{}, false
	}
	return format.Options{
		Version:   v,
		NHDetails: r.URL.Query().Get("nhdetails") == "true",
	}, true
}

// capitalize uppercases the first rune and lowercases the rest, matching
// how villager names are stored on the wiki.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// nameList projects rows down to their name column for excludedetails
// responses.
func nameList(rows []cargo.Row) []any {
	names := make([]any, 0, len(rows))
	for _, row := range rows {
		names = append(names, row["name"])
	}
	return names
}

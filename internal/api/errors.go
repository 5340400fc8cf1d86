// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"errors"
	"net/http"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/logging"
)

// ErrorResponse is the error body shape shared by every endpoint.
type ErrorResponse struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

func writeError(w http.ResponseWriter, status int, title, details string) {
	writeJSON(w, status, ErrorResponse{Title: title, Details: details})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized,
		"Failed to validate UUID.",
		"UUID is either missing or invalid; or, unspecified server occured.")
}

func writeNotFound(w http.ResponseWriter, query string) {
	writeError(w, http.StatusNotFound,
		"No data was found for the given query.",
		"MediaWiki Cargo request succeeded by nothing was returned for the parameters: "+query)
}

func writeInvalidMonth(w http.ResponseWriter, month string) {
	writeError(w, http.StatusBadRequest,
		"Failed to identify the provided month filter.",
		"Provided month filter "+month+" was not recognized as a valid month.")
}

// writeFetchError translates a cargo client failure into the 500 body the
// endpoint contract promises. The query description stands in for the raw
// upstream parameters.
func writeFetchError(w http.ResponseWriter, r *http.Request, err error, query string) {
	logging.Ctx(r.Context()).Error().Err(err).Str("query", query).Msg("cargo fetch failed")

	var upstream *cargo.UpstreamError
	if errors.As(err, &upstream) && upstream.Op == "thumbnail" {
		writeError(w, http.StatusInternalServerError,
			"Error while getting image CDN thumbnail URL.",
			"Failure occured with the following parameters: "+query+".")
		return
	}
	writeError(w, http.StatusInternalServerError,
		"Error while calling Nookipedia's Cargo API.",
		"MediaWiki Cargo request failed for parameters: "+query)
}

// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/nookipedia/nookipedia-api/internal/logging"
)

// handleGenerateKey issues a fresh client API key, optionally tagged with
// the requester's email and project.
func (s *Server) handleGenerateKey(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeAdmin(w, r) {
		return
	}

	email := r.PostFormValue("email")
	project := r.PostFormValue("project")

	newKey := uuid.New().String()
	if err := s.keys.Insert(r.Context(), newKey, email, project); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to insert new API key")
		writeError(w, http.StatusInternalServerError,
			"Failed to create new client UUID.",
			"UUID generation, or UUID insertion into keys table, failed.")
		return
	}

	logging.Ctx(r.Context()).Info().Str("project", project).Msg("issued new API key")
	writeJSON(w, http.StatusOK, map[string]string{
		"uuid":    newKey,
		"email":   email,
		"project": project,
	})
}

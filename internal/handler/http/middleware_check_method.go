// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-story-keeper/internal/utils"
	"github.com/MKhiriev/go-story-keeper/models"
)

// methodNotFound replaces chi's 405 for local endpoints. A local route
// called with the wrong method looks like an unknown path, so the proxy
// does not reveal which methods its endpoints accept.
func methodNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.APIResponse{Error: true, Message: "not found"}, http.StatusNotFound)
}

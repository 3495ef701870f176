package http

import (
	"net/http"

	"github.com/MKhiriev/go-story-keeper/internal/utils"
)

type versionResponse struct {
	Version      string `json:"version"`
	CacheVersion string `json:"cacheVersion"`
}

// getVersion reports the client version and the shell cache version.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionResponse{
		Version:      h.appInfo.GetAppVersion(r.Context()),
		CacheVersion: h.appInfo.GetCacheVersion(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

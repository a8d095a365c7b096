package http

import (
	"net/http"
)

// getServerVersion writes the application version as plain text. Build
// metadata, when known, is exposed in response headers.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Build-Date", build.Value(build.BuildDate()))
	w.Header().Set("X-Build-Commit", build.Value(build.BuildCommit()))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(ctx)))
}

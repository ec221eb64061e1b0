package handler

import (
	"log/slog"
	"net/http"

	"microfeed/internal/common"
)

// respondError translates a domain error into its status code. Internal
// faults are logged server-side and the client gets a generic message;
// sentinel errors keep their text.
func respondError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := common.HTTPStatusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		common.RespondWithError(w, status, common.ErrInternalServer.Error())
		return
	}
	common.RespondWithError(w, status, err.Error())
}

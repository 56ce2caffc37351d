package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/sosgame/internal/api/apierr"
	"github.com/mcoot/sosgame/internal/middleware"
)

// writeError sends err to the client. Errors that map to a 5xx are logged
// first, since the client only sees INTERNAL_ERROR.
func (h *GameHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	apierr.WriteError(w, err)
}

func invalidRequest(message string) error {
	return apierr.NewInvalidRequestError(message)
}

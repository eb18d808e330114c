package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vbonduro/ecoleta/internal/db"
	"github.com/vbonduro/ecoleta/internal/service"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorBody{Message: message})
}

// writeServiceError maps a service error to its HTTP status. Unexpected
// errors are logged and answered with fallback so internals don't leak.
func (s *Server) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrNotFound):
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNotFound) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err.Error())
	case errors.Is(err, service.ErrTransaction) && db.IsForeignKey(err):
		s.writeError(w, http.StatusConflict, "point references an unknown item")
	case errors.Is(err, service.ErrTransaction) && db.IsConstraint(err):
		s.writeError(w, http.StatusConflict, "point violates a storage constraint")
	default:
		s.logger.Error(fallback, "error", err)
		s.writeError(w, http.StatusInternalServerError, fallback)
	}
}

// parseID extracts the {id} path variable and returns it as int64.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}

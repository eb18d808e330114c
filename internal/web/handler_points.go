package web

import (
	"net/http"
	"strings"

	"github.com/vbonduro/ecoleta/internal/service"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListItems(r.Context())
	if err != nil {
		s.writeServiceError(w, err, "failed to list items")
		return
	}
	s.writeJSON(w, http.StatusOK, s.presenter.Items(items))
}

// handleListPoints serves GET /points?city=&uf=&items=1,2. A missing or
// empty items parameter matches no point.
func (s *Server) handleListPoints(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.PointFilter{
		City: q.Get("city"),
		UF:   q.Get("uf"),
	}

	if raw := strings.TrimSpace(q.Get("items")); raw != "" {
		ids, err := service.ParseItemIDs(raw)
		if err != nil {
			s.writeServiceError(w, err, "failed to list points")
			return
		}
		filter.ItemIDs = ids
	}

	points, err := s.service.ListPoints(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, err, "failed to list points")
		return
	}
	s.writeJSON(w, http.StatusOK, s.presenter.Points(points))
}

func (s *Server) handleGetPoint(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid point id")
		return
	}

	point, items, err := s.service.GetPoint(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err, "failed to get point")
		return
	}
	s.writeJSON(w, http.StatusOK, s.presenter.PointDetail(point, items))
}

func (s *Server) handleDeletePoint(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid point id")
		return
	}

	if err := s.service.DeletePoint(r.Context(), id); err != nil {
		s.writeServiceError(w, err, "failed to delete point")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

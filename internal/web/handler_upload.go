package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/vbonduro/ecoleta/internal/photostore"
	"github.com/vbonduro/ecoleta/internal/service"
)

const maxImageSize = 10 * 1024 * 1024 // 10 MB

// allowedImageTypes is the set of MIME types accepted for uploaded images.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing. WebP has no WHATWG sniff signature and is checked separately.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedImageMIME returns the detected MIME type and true if the data is an
// accepted image format, or ("", false) otherwise.
func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

// parseCoordinate reads a required float form field. Range checks happen in
// PointInput.Validate.
func parseCoordinate(r *http.Request, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(field)), 64)
	if err != nil {
		return 0, &service.ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}

// handleCreatePoint serves POST /points. The body is a multipart form with
// the point fields, a comma-separated items field and an image file.
func (s *Server) handleCreatePoint(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	latitude, err := parseCoordinate(r, "latitude")
	if err != nil {
		s.writeServiceError(w, err, "failed to create point")
		return
	}
	longitude, err := parseCoordinate(r, "longitude")
	if err != nil {
		s.writeServiceError(w, err, "failed to create point")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer closeWithLog(file, "upload file", s.logger)

	imageData, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("read upload failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	if len(imageData) > maxImageSize {
		s.writeError(w, http.StatusRequestEntityTooLarge, "image exceeds 10 MB")
		return
	}

	mimeType, ok := allowedImageMIME(imageData)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "unsupported image format")
		return
	}

	in := service.PointInput{
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Whatsapp:  r.FormValue("whatsapp"),
		Latitude:  latitude,
		Longitude: longitude,
		City:      r.FormValue("city"),
		UF:        r.FormValue("uf"),
		Items:     r.FormValue("items"),
	}

	point, err := s.service.CreatePoint(r.Context(), in, imageData, mimeType)
	if err != nil {
		s.writeServiceError(w, err, "failed to create point")
		return
	}
	s.writeJSON(w, http.StatusCreated, s.presenter.Point(point))
}

// handleGetUpload serves a stored image by the filename recorded on a point
// or item.
func (s *Server) handleGetUpload(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	reader, mimeType, err := s.uploads.Get(r.Context(), filename)
	switch {
	case errors.Is(err, photostore.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "image not found")
		return
	case errors.Is(err, photostore.ErrInvalidName):
		s.writeError(w, http.StatusBadRequest, "invalid image filename")
		return
	case err != nil:
		s.logger.Error("get upload failed", "filename", filename, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to read image")
		return
	}
	defer closeWithLog(reader, "upload reader", s.logger)

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write upload failed", "filename", filename, "error", err)
	}
}

package web

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/ecoleta/internal/service"
)

func TestAllowedImageMIME(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantMIME string
		wantOK   bool
	}{
		{"JPEG", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, "image/jpeg", true},
		{"PNG", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, "image/png", true},
		{"GIF", []byte("GIF89a"), "image/gif", true},
		{"WebP", append([]byte("RIFF\x00\x00\x00\x00WEBP"), make([]byte, 10)...), "image/webp", true},
		{"RIFF audio", append([]byte("RIFF\x00\x00\x00\x00WAVE"), make([]byte, 10)...), "", false},
		{"SVG markup", []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), "", false},
		{"plain text", []byte("not an image"), "", false},
		{"empty", []byte{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, ok := allowedImageMIME(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMIME, mime)
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	form := url.Values{
		"latitude":  {" -23.5505 "},
		"longitude": {"abc"},
	}
	r := httptest.NewRequest("POST", "/points", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	lat, err := parseCoordinate(r, "latitude")
	require.NoError(t, err)
	assert.InDelta(t, -23.5505, lat, 1e-9)

	_, err = parseCoordinate(r, "longitude")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = parseCoordinate(r, "missing")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "missing", verr.Field)
}

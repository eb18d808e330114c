package presenter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/ecoleta/internal/domain"
)

const baseURL = "http://localhost:3333/uploads/"

func samplePoint() *domain.Point {
	return &domain.Point{
		ID:        7,
		Image:     "f00.jpg",
		Name:      "EcoPonto",
		Email:     "a@b.com",
		Whatsapp:  "11999999999",
		Latitude:  -23.5,
		Longitude: -46.6,
		City:      "São Paulo",
		UF:        "SP",
	}
}

func TestPresenterPoint(t *testing.T) {
	p := New(baseURL)

	got := p.Point(samplePoint())

	assert.Equal(t, Point{
		ID:        7,
		Image:     "f00.jpg",
		Name:      "EcoPonto",
		Email:     "a@b.com",
		Whatsapp:  "11999999999",
		Latitude:  -23.5,
		Longitude: -46.6,
		City:      "São Paulo",
		UF:        "SP",
		ImageURL:  "http://localhost:3333/uploads/f00.jpg",
	}, got)
}

func TestPresenterPoints_EmptyIsNotNull(t *testing.T) {
	b, err := json.Marshal(New(baseURL).Points(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestPresenterItems(t *testing.T) {
	items := New(baseURL).Items([]*domain.Item{{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"}})

	require.Len(t, items, 1)
	assert.Equal(t, "http://localhost:3333/uploads/lampadas.svg", items[0].ImageURL)
}

func TestPresenterPointDetail_JSON(t *testing.T) {
	detail := New(baseURL).PointDetail(samplePoint(), []*domain.Item{
		{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"},
	})

	b, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"point": {
			"id": 7, "image": "f00.jpg", "name": "EcoPonto", "email": "a@b.com",
			"whatsapp": "11999999999", "latitude": -23.5, "longitude": -46.6,
			"city": "São Paulo", "uf": "SP",
			"image_url": "http://localhost:3333/uploads/f00.jpg"
		},
		"items": [{"id": 1, "title": "Lâmpadas"}]
	}`, string(b))
}

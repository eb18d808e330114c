// Package presenter shapes stored records for the JSON API. It is the only
// place image URLs are derived; they are never persisted.
package presenter

import "github.com/vbonduro/ecoleta/internal/domain"

type Point struct {
	ID        int64   `json:"id"`
	Image     string  `json:"image"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
	ImageURL  string  `json:"image_url"`
}

type Item struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	ImageURL string `json:"image_url"`
}

// ItemSummary is the short item form embedded in a point detail.
type ItemSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type PointDetail struct {
	Point Point         `json:"point"`
	Items []ItemSummary `json:"items"`
}

// Presenter decorates records with URLs under a fixed uploads base URL.
type Presenter struct {
	baseURL string
}

// New returns a Presenter for baseURL, which must include any trailing
// separator (e.g. "http://localhost:3333/uploads/").
func New(baseURL string) *Presenter {
	return &Presenter{baseURL: baseURL}
}

func (p *Presenter) ImageURL(filename string) string {
	return p.baseURL + filename
}

func (p *Presenter) Point(pt *domain.Point) Point {
	return Point{
		ID:        pt.ID,
		Image:     pt.Image,
		Name:      pt.Name,
		Email:     pt.Email,
		Whatsapp:  pt.Whatsapp,
		Latitude:  pt.Latitude,
		Longitude: pt.Longitude,
		City:      pt.City,
		UF:        pt.UF,
		ImageURL:  p.ImageURL(pt.Image),
	}
}

func (p *Presenter) Points(points []*domain.Point) []Point {
	out := make([]Point, 0, len(points))
	for _, pt := range points {
		out = append(out, p.Point(pt))
	}
	return out
}

func (p *Presenter) Items(items []*domain.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{
			ID:       it.ID,
			Title:    it.Title,
			Image:    it.Image,
			ImageURL: p.ImageURL(it.Image),
		})
	}
	return out
}

func (p *Presenter) PointDetail(pt *domain.Point, items []*domain.Item) PointDetail {
	summaries := make([]ItemSummary, 0, len(items))
	for _, it := range items {
		summaries = append(summaries, ItemSummary{ID: it.ID, Title: it.Title})
	}
	return PointDetail{Point: p.Point(pt), Items: summaries}
}

package domain

// Item is a recyclable-material category from the seeded catalog.
type Item struct {
	ID    int64
	Title string
	Image string
}

// Point is a registered collection point. Image holds the stored upload
// filename; the public URL is derived at the API boundary.
type Point struct {
	ID        int64
	Image     string
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        string
}

// PointItem links a point to an item category it accepts.
type PointItem struct {
	PointID int64
	ItemID  int64
}

package domain

import "github.com/google/uuid"

// Park is a single campground listing as the iOS client expects it.
// JSON key order mirrors struct field order.
type Park struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	State         string    `json:"state"`
	City          string    `json:"city"`
	Rating        float64   `json:"rating"`
	Description   string    `json:"description"`
	Memberships   []string  `json:"memberships"`
	Amenities     []Amenity `json:"amenities"`
	FeaturedNotes []string  `json:"featured_notes"`
}

// Amenity is a named facility tag on a Park. SystemImage is an icon
// identifier the client renders; the server treats it as opaque.
type Amenity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	SystemImage string    `json:"system_image"`
}

package memory

import (
	"context"

	"github.com/google/uuid"

	"waypoint_parks/internal/domain"
)

// Store serves the fixed park collection. The backing slice is built once
// in New and never mutated afterwards, so reads need no locking.
type Store struct{ parks []domain.Park }

func New() *Store {
	return &Store{parks: fixture()}
}

// ListParks returns the full collection in definition order. Callers get a
// clone so the fixture cannot be mutated through the returned slices.
func (s *Store) ListParks(_ context.Context) []domain.Park {
	out := make([]domain.Park, len(s.parks))
	copy(out, s.parks)
	for i := range out {
		out[i].Memberships = append([]string(nil), out[i].Memberships...)
		out[i].Amenities = append([]domain.Amenity(nil), out[i].Amenities...)
		out[i].FeaturedNotes = append([]string(nil), out[i].FeaturedNotes...)
	}
	return out
}

func fixture() []domain.Park {
	return []domain.Park{
		{
			ID:     uuid.MustParse("8f8f5c6a-9384-4f8f-8db8-9b19dbd9a1d1"),
			Name:   "Riverbend Retreat",
			State:  "TX",
			City:   "New Braunfels",
			Rating: 4.6,
			Description: "Nestled right along the Guadalupe River, Riverbend Retreat offers oversized " +
				"pull-through sites, shade from towering pecan trees, and quick access to tubing outfitters.",
			Memberships: []string{"Thousand Trails", "Harvest Hosts"},
			Amenities: []domain.Amenity{
				{ID: uuid.MustParse("1a06319c-5d96-4cb7-9872-5b56c41b3e98"), Name: "50 AMP Full Hookups", SystemImage: "bolt.fill"},
				{ID: uuid.MustParse("ab0db9ec-2587-4713-b3c4-33cc04c40ae8"), Name: "River Access", SystemImage: "drop.fill"},
				{ID: uuid.MustParse("c2ff056f-728a-4e5f-9cbc-4a3d0aa794a7"), Name: "Pool & Hot Tub", SystemImage: "figure.pool.swim"},
			},
			FeaturedNotes: []string{
				"Family favorite for summer floating trips",
				"Friendly hosts who remember returning members",
				"Reserve the riverfront premium sites early",
			},
		},
		{
			ID:     uuid.MustParse("1eb7c8a0-5ffc-4010-a8f9-5eb5410ab5bd"),
			Name:   "Juniper Ridge Camp",
			State:  "UT",
			City:   "Moab",
			Rating: 4.2,
			Description: "Wake up to red rock views and be minutes away from both Arches and Canyonlands National Parks. " +
				"Juniper Ridge balances rustic desert vibes with modern amenities.",
			Memberships: []string{"KOA", "Passport America"},
			Amenities: []domain.Amenity{
				{ID: uuid.MustParse("a8227c52-4a13-46ae-8ef2-71f242091b32"), Name: "Adventure Concierge", SystemImage: "figure.hiking"},
				{ID: uuid.MustParse("ed64d3ed-ef15-4f6e-9cf3-71b15a2e1762"), Name: "Camp Store", SystemImage: "bag.fill"},
				{ID: uuid.MustParse("7b5f885d-7dbf-4f53-8c61-3d0c364f6919"), Name: "Desert Wi-Fi Lounge", SystemImage: "wifi"},
			},
			FeaturedNotes: []string{
				"Ask for the rim-view sites when booking",
				"Pool is clutch after a day on the trails",
			},
		},
		{
			ID:     uuid.MustParse("2a934efd-1f21-4cbc-95d9-5d2b2bb00180"),
			Name:   "Evergreen Lakeside",
			State:  "WA",
			City:   "Leavenworth",
			Rating: 3.8,
			Description: "A pine-canopied hideaway with waterfront sites on Icicle Creek. This stop is perfect for quiet mornings, " +
				"paddle boarding, and quick trips into Bavarian downtown.",
			Memberships: []string{"Thousand Trails", "Independent"},
			Amenities: []domain.Amenity{
				{ID: uuid.MustParse("d82703f9-59cb-47b7-b170-1e79968d7df8"), Name: "Creekside Kayak Launch", SystemImage: "sailboat.fill"},
				{ID: uuid.MustParse("050d9355-3bf0-4ed6-82ef-5f2bc4f5c790"), Name: "Laundry Cottage", SystemImage: "washer"},
				{ID: uuid.MustParse("9c8e33f6-4140-44c3-a984-f7b5e0d8e82f"), Name: "Seasonal Events Pavilion", SystemImage: "tent.2.fill"},
			},
			FeaturedNotes: []string{
				"Shaded sites stay cooler mid-summer",
				"Limited cell service—download maps ahead",
			},
		},
	}
}

package domain

import "context"

// ParkRepository is the read-only port over the park collection.
// The collection is immutable after construction, so there is no
// write path and no error condition to surface.
type ParkRepository interface {
	ListParks(ctx context.Context) []Park
}

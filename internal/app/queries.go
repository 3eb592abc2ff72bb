package app

import (
	"context"

	"waypoint_parks/internal/domain"
)

// QueryService is the read side of the API. It only composes the
// repository port today, but keeps the transport layer off concrete
// storage types.
type QueryService struct {
	repo domain.ParkRepository
}

func NewQueryService(r domain.ParkRepository) *QueryService {
	return &QueryService{repo: r}
}

// ListParks returns every park in definition order.
func (s *QueryService) ListParks(ctx context.Context) []domain.Park {
	return s.repo.ListParks(ctx)
}

package app_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"waypoint_parks/internal/app"
	"waypoint_parks/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	parks []domain.Park
	calls int
}

func (f *fakeRepo) ListParks(_ context.Context) []domain.Park {
	f.calls++
	return f.parks
}

// ---- tests ----

func TestListParks_DelegatesToRepo(t *testing.T) {
	repo := &fakeRepo{parks: []domain.Park{
		{ID: uuid.MustParse("8f8f5c6a-9384-4f8f-8db8-9b19dbd9a1d1"), Name: "Riverbend Retreat", Rating: 4.6},
		{ID: uuid.MustParse("1eb7c8a0-5ffc-4010-a8f9-5eb5410ab5bd"), Name: "Juniper Ridge Camp", Rating: 4.2},
	}}
	q := app.NewQueryService(repo)

	out := q.ListParks(context.Background())
	if len(out) != 2 {
		t.Fatalf("expected 2 parks, got %d", len(out))
	}
	if out[0].Name != "Riverbend Retreat" || out[1].Name != "Juniper Ridge Camp" {
		t.Fatalf("unexpected order: %q, %q", out[0].Name, out[1].Name)
	}
	if repo.calls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.calls)
	}
}

func TestListParks_EmptyRepo(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{})
	if out := q.ListParks(context.Background()); len(out) != 0 {
		t.Fatalf("expected empty list, got %d", len(out))
	}
}

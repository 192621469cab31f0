package projections

import (
	"context"

	"relish/internal/application/view"
)

// GetSportsPageResult carries the sports listing.
type GetSportsPageResult struct {
	Sports []SportCard
}

// GetSportsPageDeps holds dependencies for GetSportsPage.
type GetSportsPageDeps struct {
	Sports SportSource
}

// QueryGetSportsPage lists every sport as a card.
// PRE: deps.Sports is non-nil
// POST: One card per sport, in backend order
func QueryGetSportsPage(ctx context.Context, deps GetSportsPageDeps) (GetSportsPageResult, error) {
	sports, err := deps.Sports.GetSports(ctx)
	if err != nil {
		return GetSportsPageResult{}, err
	}
	return GetSportsPageResult{Sports: newSportCards(sports)}, nil
}

// NewSportsPageResource binds QueryGetSportsPage to a view resource.
func NewSportsPageResource(deps GetSportsPageDeps) *view.Resource[GetSportsPageResult] {
	return view.NewResource("sports", func(ctx context.Context) (GetSportsPageResult, error) {
		return QueryGetSportsPage(ctx, deps)
	})
}

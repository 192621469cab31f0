package projections

import (
	"context"

	"relish/internal/application/view"
	"relish/internal/domain/sport"
)

// GetSportDetailPageQuery carries the route parameter.
type GetSportDetailPageQuery struct {
	SportID string
}

// GetSportDetailPageResult carries the selected sport.
// Found is false when no sport has the requested ID.
type GetSportDetailPageResult struct {
	SportID string
	Found   bool
	Sport   sport.Sport
}

// GetSportDetailPageDeps holds dependencies for GetSportDetailPage.
type GetSportDetailPageDeps struct {
	Sports SportSource
}

// QueryGetSportDetailPage fetches all sports and selects the one matching the query.
// PRE: deps.Sports is non-nil
// POST: Found reports whether query.SportID matched a sport
func QueryGetSportDetailPage(ctx context.Context, query GetSportDetailPageQuery, deps GetSportDetailPageDeps) (GetSportDetailPageResult, error) {
	result := GetSportDetailPageResult{SportID: query.SportID}

	sports, err := deps.Sports.GetSports(ctx)
	if err != nil {
		return result, err
	}
	result.Sport, result.Found = sport.FindByID(sports, query.SportID)
	return result, nil
}

// NewSportDetailPageResource binds QueryGetSportDetailPage to a view resource.
func NewSportDetailPageResource(query GetSportDetailPageQuery, deps GetSportDetailPageDeps) *view.Resource[GetSportDetailPageResult] {
	return view.NewResource("sport_detail", func(ctx context.Context) (GetSportDetailPageResult, error) {
		return QueryGetSportDetailPage(ctx, query, deps)
	})
}

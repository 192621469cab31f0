package projections

import (
	"context"

	"relish/internal/application/view"
	"relish/internal/domain/facility"
	"relish/internal/domain/sport"
)

// homePreviewLimit is the number of sports previewed on the home page.
const homePreviewLimit = 3

// GetHomePageResult carries the home page view model.
type GetHomePageResult struct {
	Sports     []SportCard // preview, at most homePreviewLimit
	Facilities []facility.Facility
}

// GetHomePageDeps holds dependencies for GetHomePage.
type GetHomePageDeps struct {
	Sports     SportSource
	Facilities FacilitySource
}

// QueryGetHomePage fetches sports and facilities concurrently.
// PRE: deps sources are non-nil
// POST: Both collections loaded, or an error and an empty result
func QueryGetHomePage(ctx context.Context, deps GetHomePageDeps) (GetHomePageResult, error) {
	both := view.Both[[]sport.Sport, []facility.Facility](deps.Sports.GetSports, deps.Facilities.GetFacilities)
	pair, err := both(ctx)
	if err != nil {
		return GetHomePageResult{}, err
	}

	preview := pair.First
	if len(preview) > homePreviewLimit {
		preview = preview[:homePreviewLimit]
	}
	return GetHomePageResult{
		Sports:     newSportCards(preview),
		Facilities: pair.Second,
	}, nil
}

// NewHomePageResource binds QueryGetHomePage to a view resource.
func NewHomePageResource(deps GetHomePageDeps) *view.Resource[GetHomePageResult] {
	return view.NewResource("home", func(ctx context.Context) (GetHomePageResult, error) {
		return QueryGetHomePage(ctx, deps)
	})
}

package projections

import (
	"context"

	"relish/internal/application/view"
	"relish/internal/domain/branch"
	"relish/internal/domain/facility"
)

// GetFacilitiesPageResult carries facilities and the branches that host them.
type GetFacilitiesPageResult struct {
	Facilities []facility.Facility
	Branches   []branch.Branch
}

// GetFacilitiesPageDeps holds dependencies for GetFacilitiesPage.
type GetFacilitiesPageDeps struct {
	Facilities FacilitySource
	Branches   BranchSource
}

// QueryGetFacilitiesPage fetches facilities and branches concurrently.
// PRE: deps sources are non-nil
// POST: Both collections loaded, or an error and an empty result
func QueryGetFacilitiesPage(ctx context.Context, deps GetFacilitiesPageDeps) (GetFacilitiesPageResult, error) {
	pair, err := view.Both[[]facility.Facility, []branch.Branch](deps.Facilities.GetFacilities, deps.Branches.GetBranches)(ctx)
	if err != nil {
		return GetFacilitiesPageResult{}, err
	}
	return GetFacilitiesPageResult{Facilities: pair.First, Branches: pair.Second}, nil
}

// NewFacilitiesPageResource binds QueryGetFacilitiesPage to a view resource.
func NewFacilitiesPageResource(deps GetFacilitiesPageDeps) *view.Resource[GetFacilitiesPageResult] {
	return view.NewResource("facilities", func(ctx context.Context) (GetFacilitiesPageResult, error) {
		return QueryGetFacilitiesPage(ctx, deps)
	})
}

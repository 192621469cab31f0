package projections

import (
	"context"

	"relish/internal/application/view"
	"relish/internal/domain/coach"
)

// GetAboutPageResult carries the coaching team.
type GetAboutPageResult struct {
	Coaches []coach.Coach
}

// GetAboutPageDeps holds dependencies for GetAboutPage.
type GetAboutPageDeps struct {
	Coaches CoachSource
}

// QueryGetAboutPage lists the coaches.
func QueryGetAboutPage(ctx context.Context, deps GetAboutPageDeps) (GetAboutPageResult, error) {
	coaches, err := deps.Coaches.GetCoaches(ctx)
	if err != nil {
		return GetAboutPageResult{}, err
	}
	return GetAboutPageResult{Coaches: coaches}, nil
}

// NewAboutPageResource binds QueryGetAboutPage to a view resource.
func NewAboutPageResource(deps GetAboutPageDeps) *view.Resource[GetAboutPageResult] {
	return view.NewResource("about", func(ctx context.Context) (GetAboutPageResult, error) {
		return QueryGetAboutPage(ctx, deps)
	})
}

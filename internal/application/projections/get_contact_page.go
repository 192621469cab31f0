package projections

import (
	"context"

	"relish/internal/application/view"
	"relish/internal/domain/branch"
)

// GetContactPageResult carries the locations shown beside the contact form.
type GetContactPageResult struct {
	Branches []branch.Branch
}

// GetContactPageDeps holds dependencies for GetContactPage.
type GetContactPageDeps struct {
	Branches BranchSource
}

// QueryGetContactPage lists the branches for the locations card.
func QueryGetContactPage(ctx context.Context, deps GetContactPageDeps) (GetContactPageResult, error) {
	branches, err := deps.Branches.GetBranches(ctx)
	if err != nil {
		return GetContactPageResult{}, err
	}
	return GetContactPageResult{Branches: branches}, nil
}

// NewContactPageResource binds QueryGetContactPage to a view resource.
func NewContactPageResource(deps GetContactPageDeps) *view.Resource[GetContactPageResult] {
	return view.NewResource("contact", func(ctx context.Context) (GetContactPageResult, error) {
		return QueryGetContactPage(ctx, deps)
	})
}

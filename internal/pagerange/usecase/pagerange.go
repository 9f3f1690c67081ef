package usecase

import (
	"context"
	"fmt"

	"pagination-srv/internal/pagerange"
	"pagination-srv/pkg/paginator"
)

// Compute returns the marker sequence for an already-known page count.
func (uc *implUseCase) Compute(ctx context.Context, input pagerange.ComputeInput) (pagerange.ComputeOutput, error) {
	radius, policy, err := uc.resolveOptions(input.Radius, input.Policy)
	if err != nil {
		return pagerange.ComputeOutput{}, err
	}

	markers, err := paginator.PageRangeWithPolicy(input.CurrentPage, input.TotalPages, radius, policy)
	if err != nil {
		uc.l.Warnf(ctx, "pagerange.usecase.Compute: rejected input current_page=%d total_pages=%d radius=%d: %v",
			input.CurrentPage, input.TotalPages, radius, err)
		return pagerange.ComputeOutput{}, mapRangeError(err)
	}

	return pagerange.ComputeOutput{
		Markers: markers,
		Policy:  policy,
		Radius:  radius,
	}, nil
}

// ComputeWidget derives the page count from an item total and page size, then
// computes the marker sequence alongside the pagination metadata a
// page-selector control renders.
func (uc *implUseCase) ComputeWidget(ctx context.Context, input pagerange.WidgetInput) (pagerange.WidgetOutput, error) {
	radius, policy, err := uc.resolveOptions(input.Radius, input.Policy)
	if err != nil {
		return pagerange.WidgetOutput{}, err
	}

	if input.TotalItems < 0 {
		return pagerange.WidgetOutput{}, fmt.Errorf("%w: total_items=%d", pagerange.ErrOutOfRange, input.TotalItems)
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = uc.cfg.DefaultPageSize
	}
	if pageSize < 1 || pageSize > uc.cfg.MaxPageSize {
		return pagerange.WidgetOutput{}, fmt.Errorf("%w: page_size=%d, max=%d", pagerange.ErrInvalidPageSize, pageSize, uc.cfg.MaxPageSize)
	}

	p := paginator.Paginator{
		Total:       input.TotalItems,
		PerPage:     pageSize,
		CurrentPage: input.CurrentPage,
	}

	markers, err := p.PageRangeWithPolicy(radius, policy)
	if err != nil {
		uc.l.Warnf(ctx, "pagerange.usecase.ComputeWidget: rejected input current_page=%d total_items=%d page_size=%d: %v",
			input.CurrentPage, input.TotalItems, pageSize, err)
		return pagerange.WidgetOutput{}, mapRangeError(err)
	}

	// items on the current page, for the control's "showing X of Y" caption
	q := paginator.PaginateQuery{Page: input.CurrentPage, Limit: pageSize}
	count := input.TotalItems - q.Offset()
	if count < 0 {
		count = 0
	}
	if count > pageSize {
		count = pageSize
	}
	p.Count = count

	return pagerange.WidgetOutput{
		Paginator: p,
		Markers:   markers,
		Policy:    policy,
		Radius:    radius,
	}, nil
}

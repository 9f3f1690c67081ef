package pagerange

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Compute returns the marker sequence for an already-known page count.
	Compute(ctx context.Context, input ComputeInput) (ComputeOutput, error)

	// ComputeWidget derives the page count from an item total and page size,
	// then returns the pagination metadata together with the marker sequence.
	ComputeWidget(ctx context.Context, input WidgetInput) (WidgetOutput, error)
}

package pagerange

import "pagination-srv/pkg/paginator"

type ComputeInput struct {
	CurrentPage int
	TotalPages  int
	Radius      *int   // nil means use the configured default
	Policy      string // empty means use the configured default
}

type ComputeOutput struct {
	Markers []paginator.Marker
	Policy  paginator.Policy
	Radius  int
}

type WidgetInput struct {
	CurrentPage int
	TotalItems  int64
	PageSize    int64 // 0 means use the configured default
	Radius      *int
	Policy      string
}

type WidgetOutput struct {
	Paginator paginator.Paginator
	Markers   []paginator.Marker
	Policy    paginator.Policy
	Radius    int
}

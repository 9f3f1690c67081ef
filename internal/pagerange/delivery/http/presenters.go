package http

import (
	"pagination-srv/internal/pagerange"
	"pagination-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type computeReq struct {
	CurrentPage int    `form:"current_page" binding:"required"`
	TotalPages  int    `form:"total_pages"`
	Radius      *int   `form:"radius" binding:"omitempty"`
	Policy      string `form:"policy" binding:"omitempty,oneof=symmetric-union clamped-window"`
}

type widgetReq struct {
	CurrentPage int    `form:"current_page" binding:"required"`
	TotalItems  int64  `form:"total_items"`
	PageSize    int64  `form:"page_size" binding:"omitempty"`
	Radius      *int   `form:"radius" binding:"omitempty"`
	Policy      string `form:"policy" binding:"omitempty,oneof=symmetric-union clamped-window"`
}

func (r computeReq) toInput() pagerange.ComputeInput {
	return pagerange.ComputeInput{
		CurrentPage: r.CurrentPage,
		TotalPages:  r.TotalPages,
		Radius:      r.Radius,
		Policy:      r.Policy,
	}
}

func (r widgetReq) toInput() pagerange.WidgetInput {
	return pagerange.WidgetInput{
		CurrentPage: r.CurrentPage,
		TotalItems:  r.TotalItems,
		PageSize:    r.PageSize,
		Radius:      r.Radius,
		Policy:      r.Policy,
	}
}

// =====================================================
// Response DTOs
// =====================================================

// markerResp is one rendered unit of the control. An ellipsis entry carries no
// page number, so clients cannot navigate to it.
type markerResp struct {
	Type string `json:"type"` // "page" or "ellipsis"
	Page int    `json:"page,omitempty"`
}

type computeResp struct {
	CurrentPage int          `json:"current_page"`
	TotalPages  int          `json:"total_pages"`
	Radius      int          `json:"radius"`
	Policy      string       `json:"policy"`
	Markers     []markerResp `json:"markers"`
}

type widgetResp struct {
	Paginator paginator.PaginatorResponse `json:"paginator"`
	Radius    int                         `json:"radius"`
	Policy    string                      `json:"policy"`
	Markers   []markerResp                `json:"markers"`
}

func newMarkerResps(markers []paginator.Marker) []markerResp {
	resps := make([]markerResp, len(markers))
	for i, m := range markers {
		if m.IsEllipsis() {
			resps[i] = markerResp{Type: "ellipsis"}
			continue
		}
		resps[i] = markerResp{Type: "page", Page: m.Number()}
	}
	return resps
}

func (h *handler) newComputeResp(req computeReq, output pagerange.ComputeOutput) computeResp {
	return computeResp{
		CurrentPage: req.CurrentPage,
		TotalPages:  req.TotalPages,
		Radius:      output.Radius,
		Policy:      string(output.Policy),
		Markers:     newMarkerResps(output.Markers),
	}
}

func (h *handler) newWidgetResp(output pagerange.WidgetOutput) widgetResp {
	return widgetResp{
		Paginator: output.Paginator.ToResponse(),
		Radius:    output.Radius,
		Policy:    string(output.Policy),
		Markers:   newMarkerResps(output.Markers),
	}
}

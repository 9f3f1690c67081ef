package http

import (
	"pagination-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Compute - Compute the page markers for a page-selector control
// @Summary Compute page-range markers
// @Description Compute the ordered sequence of page markers (numbers and ellipses) a pagination control should render for the given current page and page count
// @Tags PageRange
// @Accept json
// @Produce json
// @Param current_page query int true "Current page (1-indexed)"
// @Param total_pages query int false "Total number of pages" default(0)
// @Param radius query int false "Pages shown on each side of the current page" default(2)
// @Param policy query string false "Window policy" Enums(symmetric-union, clamped-window)
// @Success 200 {object} computeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/page-range [get]
func (h *handler) Compute(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processComputeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "pagerange.delivery.http.Compute: processComputeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Compute(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "pagerange.delivery.http.Compute: usecase Compute failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newComputeResp(req, output))
}

// Widget - Compute pagination metadata plus page markers from an item total
// @Summary Compute a pagination widget
// @Description Derive the page count from a total item count and page size, then return the pagination metadata together with the page markers to render
// @Tags PageRange
// @Accept json
// @Produce json
// @Param current_page query int true "Current page (1-indexed)"
// @Param total_items query int false "Total number of items" default(0)
// @Param page_size query int false "Items per page" default(15)
// @Param radius query int false "Pages shown on each side of the current page" default(2)
// @Param policy query string false "Window policy" Enums(symmetric-union, clamped-window)
// @Success 200 {object} widgetResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/page-range/widget [get]
func (h *handler) Widget(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processWidgetRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "pagerange.delivery.http.Widget: processWidgetRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.ComputeWidget(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "pagerange.delivery.http.Widget: usecase ComputeWidget failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newWidgetResp(output))
}

package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processComputeRequest(c *gin.Context) (computeReq, error) {
	var req computeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongQuery
	}
	return req, nil
}

func (h *handler) processWidgetRequest(c *gin.Context) (widgetReq, error) {
	var req widgetReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongQuery
	}
	return req, nil
}

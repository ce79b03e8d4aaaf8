package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "calendar-assistant/pkg/errors"
)

// processExtractReq binds and validates the extraction request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("invalid request body: %v", err)
	}
	return req, req.validate()
}

// processMonthReq binds and validates the year/month query parameters.
func (h *handler) processMonthReq(c *gin.Context) (monthReq, error) {
	var req monthReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequest("year and month must be numbers")
	}
	return req, req.validate()
}

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	pkgErrors "calendar-assistant/pkg/errors"
	"calendar-assistant/pkg/response"
)

// Extract godoc
// @Summary     Extract events from text
// @Description Sends a transcript or task instructions to the language model and appends the resulting events to the session's calendar. The batch is all-or-nothing.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string     false "Session id (defaults to the session cookie)"
// @Param       body         body   extractReq true  "Text to analyse"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Model response unusable"
// @Failure     503 {object} response.Resp "No language model configured"
// @Router      /api/v1/events/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Extract(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// List godoc
// @Summary     List events
// @Description Returns the session's events in insertion order. With month set, only events placed on some day of that month.
// @Tags        Events
// @Produce     json
// @Param       year  query int false "Year (default: current year)"
// @Param       month query int false "Month 1-12"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toListInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event detail
// @Description Returns a single event with its display fields.
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewBadRequest("id is required"), nil)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Month godoc
// @Summary     Month view
// @Description Returns the month grid with the events placed on each day, plus sidebar statistics.
// @Tags        Calendar
// @Produce     json
// @Param       year  query int false "Year (default: current year)"
// @Param       month query int false "Month 1-12 (default: current month)"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Month(ctx, middleware.GetScope(c), req.toMonthInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Month: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// Status godoc
// @Summary     Processing status
// @Description Returns IDLE, PROCESSING, SUCCESS or ERROR for the session's extractions.
// @Tags        Events
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Status(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusResp(output, time.Now()))
}

// ExportICS godoc
// @Summary     Download iCalendar
// @Description Returns the session's events as an .ics file.
// @Tags        Events
// @Produce     text/calendar
// @Success     200 {file} file
// @Router      /api/v1/events.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportICS(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Content)
}

// Screenshot godoc
// @Summary     Screenshot of the month
// @Description Renders the month page in headless Chromium and returns a PNG.
// @Tags        Calendar
// @Produce     png
// @Param       year  query int false "Year (default: current year)"
// @Param       month query int false "Month 1-12 (default: current month)"
// @Success     200 {file} file
// @Failure     503 {object} response.Resp "Screenshots disabled"
// @Router      /api/v1/calendar/screenshot.png [GET]
func (h *handler) Screenshot(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Screenshot(ctx, middleware.GetScope(c), req.toMonthInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Screenshot: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "image/png", output.PNG)
}

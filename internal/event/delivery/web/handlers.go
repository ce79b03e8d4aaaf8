package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/datemath"
)

const pageTemplate = "index.html"

// Index renders the month grid, the input panel and the optional detail view.
func (h *handler) Index(c *gin.Context) {
	f := form{Mode: modeParam(c.Query("mode"))}
	input, err := monthParams(c.Query("year"), c.Query("month"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.render(c, http.StatusOK, input, f, c.Query("event"), "")
}

// Extract handles the input form. On success it redirects to the month of
// the first new event; on failure the page is re-rendered with the input kept.
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	f := form{Mode: modeParam(c.PostForm("mode")), Text: c.PostForm("text")}
	view, err := monthParams(c.PostForm("year"), c.PostForm("month"))
	if err != nil {
		view = event.MonthInput{}
	}

	input := event.ExtractInput{Text: f.Text, Mode: f.Mode}
	if v := c.PostForm("today"); v != "" {
		if today, err := datemath.ParseDate(v); err == nil {
			input.Today = &today
		}
	}

	output, err := h.uc.Extract(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.render(c, statusFor(err), view, f, "", messageFor(err))
		return
	}

	if len(output.Events) > 0 {
		first := output.Events[0].StartDate
		view = event.MonthInput{Year: first.Year, Month: first.Month}
	}
	if view.Year == 0 || view.Month == 0 {
		c.Redirect(http.StatusSeeOther, homeURL(f.Mode))
		return
	}
	c.Redirect(http.StatusSeeOther, monthURL(view.Year, view.Month, f.Mode, ""))
}

func (h *handler) render(c *gin.Context, status int, input event.MonthInput, f form, eventID, errMsg string) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	month, err := h.uc.Month(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Month: %v", err)
		c.String(http.StatusInternalServerError, "failed to build calendar")
		return
	}
	st, err := h.uc.Status(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		c.String(http.StatusInternalServerError, "failed to read status")
		return
	}

	data := newPageData(month.Month, month.Today, st, f)
	data.Error = errMsg
	if eventID != "" {
		d, err := h.uc.Detail(ctx, sc, eventID)
		if err == nil {
			data.Selected = newDetailView(d.Event, monthURL(month.Month.Year, month.Month.Month, f.Mode, ""))
		} else if !errors.Is(err, event.ErrEventNotFound) {
			h.l.Errorf(ctx, "uc.Detail: %v", err)
		}
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(c.Writer, pageTemplate, data); err != nil {
		h.l.Errorf(ctx, "web.render: %v", err)
	}
}

func modeParam(s string) event.Mode {
	mode, err := event.ParseMode(s)
	if err != nil {
		return event.ModeTranscript
	}
	return mode
}

// monthParams parses optional year and month form values.
func monthParams(year, month string) (event.MonthInput, error) {
	var in event.MonthInput
	if year != "" {
		y, err := strconv.Atoi(year)
		if err != nil || y < 1 || y > 9999 {
			return in, event.ErrInvalidMonth
		}
		in.Year = y
	}
	if month != "" {
		m, err := strconv.Atoi(month)
		if err != nil {
			return in, event.ErrInvalidMonth
		}
		if err := event.ValidateMonth(m); err != nil {
			return in, err
		}
		in.Month = time.Month(m)
	}
	return in, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, event.ErrEmptyInput), errors.Is(err, event.ErrInvalidMode):
		return http.StatusBadRequest
	case errors.Is(err, event.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, event.ErrMalformedResponse), errors.Is(err, event.ErrUpstreamFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	if errors.Is(err, event.ErrEmptyInput) {
		return "Please enter a transcript or instructions first."
	}
	return event.MessageFor(err)
}

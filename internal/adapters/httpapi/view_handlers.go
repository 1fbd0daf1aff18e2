package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleMonthGrid returns the six-week grid around ?date.
func (h *Handlers) HandleMonthGrid(c *gin.Context) {
	anchor, err := h.queryDate(c, "date")
	if err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.svc.Calendar.MonthGrid(c.Request.Context(), anchor)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleYearSummary returns per-month maintenance counts.
func (h *Handlers) HandleYearSummary(c *gin.Context) {
	year, err := queryInt(c, "year")
	if err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.svc.Calendar.YearSummary(c.Request.Context(), year)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleSummary returns the site report for ?day.
func (h *Handlers) HandleSummary(c *gin.Context) {
	day, err := h.queryDate(c, "day")
	if err != nil {
		badRequest(c, err)
		return
	}

	report, err := h.svc.Reports.Summary(c.Request.Context(), day)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}


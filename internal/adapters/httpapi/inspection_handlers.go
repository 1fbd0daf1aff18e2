package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/ports/primary"
)

type upsertChecklistBody struct {
	EquipmentName string   `json:"equipment_name"`
	Items         []string `json:"items"`
}

type progressBody struct {
	Items []checklist.Item `json:"items"`
}

type completeInspectionBody struct {
	Items        []checklist.Item `json:"items"`
	GeneralNotes string           `json:"general_notes"`
	Inspector    string           `json:"inspector"`
}

// HandleGetChecklist returns the configured template, or 404 when none exists.
func (h *Handlers) HandleGetChecklist(c *gin.Context) {
	tmpl, err := h.svc.Checklists.GetTemplate(c.Request.Context(), c.Param("equipment_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if tmpl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no checklist configured"})
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// HandleUpsertChecklist creates or replaces a template.
func (h *Handlers) HandleUpsertChecklist(c *gin.Context) {
	var body upsertChecklistBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Checklists.UpsertTemplate(c.Request.Context(), primary.UpsertTemplateRequest{
		EquipmentID:   c.Param("equipment_id"),
		EquipmentName: body.EquipmentName,
		Items:         body.Items,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// HandleResolveItems returns the working item list for an equipment.
func (h *Handlers) HandleResolveItems(c *gin.Context) {
	day, err := h.queryDate(c, "day")
	if err != nil {
		badRequest(c, err)
		return
	}

	resolved, err := h.svc.Inspections.ResolveItems(c.Request.Context(), primary.ResolveItemsRequest{
		EquipmentID:          c.Param("equipment_id"),
		Day:                  day,
		PreferCachedProgress: c.DefaultQuery("resume", "true") != "false",
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// HandleSaveProgress auto-saves the current answers.
func (h *Handlers) HandleSaveProgress(c *gin.Context) {
	var body progressBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	snapshot, err := h.svc.Inspections.SaveProgress(c.Request.Context(), primary.SaveProgressRequest{
		EquipmentID: c.Param("equipment_id"),
		Items:       body.Items,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// HandleDiscardProgress drops today's saved answers.
func (h *Handlers) HandleDiscardProgress(c *gin.Context) {
	if err := h.svc.Inspections.DiscardProgress(c.Request.Context(), c.Param("equipment_id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleCompleteInspection records today's inspection.
func (h *Handlers) HandleCompleteInspection(c *gin.Context) {
	var body completeInspectionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Inspections.CompleteInspection(c.Request.Context(), primary.CompleteInspectionRequest{
		EquipmentID:  c.Param("equipment_id"),
		Items:        body.Items,
		GeneralNotes: body.GeneralNotes,
		Inspector:    body.Inspector,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// HandleDailyStatus returns the status board for a day.
func (h *Handlers) HandleDailyStatus(c *gin.Context) {
	day, err := h.queryDate(c, "day")
	if err != nil {
		badRequest(c, err)
		return
	}

	statuses, err := h.svc.Inspections.DailyStatus(c.Request.Context(), day)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// HandleListInspections lists recorded inspections.
func (h *Handlers) HandleListInspections(c *gin.Context) {
	from, err := h.queryDate(c, "from")
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := h.queryDate(c, "to")
	if err != nil {
		badRequest(c, err)
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		badRequest(c, err)
		return
	}

	records, err := h.svc.Inspections.ListInspections(c.Request.Context(), primary.InspectionFilters{
		EquipmentID: c.Query("equipment_id"),
		From:        from,
		To:          to,
		Limit:       limit,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// HandleGetInspection returns one inspection record.
func (h *Handlers) HandleGetInspection(c *gin.Context) {
	record, err := h.svc.Inspections.GetInspection(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// HandleDeleteInspection removes an inspection record.
func (h *Handlers) HandleDeleteInspection(c *gin.Context) {
	if err := h.svc.Inspections.DeleteInspection(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

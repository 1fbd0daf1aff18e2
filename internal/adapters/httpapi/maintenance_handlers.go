package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/plantops/internal/ports/primary"
)

type createMaintenanceBody struct {
	EquipmentID     string `json:"equipment_id"`
	Type            string `json:"type"`
	ScheduledDate   string `json:"scheduled_date"`
	DurationMinutes int    `json:"duration_minutes"`
	Responsible     string `json:"responsible"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	Notes           string `json:"notes"`
}

type updateMaintenanceBody struct {
	Type            *string `json:"type"`
	ScheduledDate   *string `json:"scheduled_date"`
	DurationMinutes *int    `json:"duration_minutes"`
	Responsible     *string `json:"responsible"`
	Status          *string `json:"status"`
	Priority        *string `json:"priority"`
	Notes           *string `json:"notes"`
}

type rescheduleBody struct {
	Date string `json:"date"`
}

type noteBody struct {
	Note     string `json:"note"`
	Priority string `json:"priority"`
}

// HandleListMaintenance lists maintenance records.
func (h *Handlers) HandleListMaintenance(c *gin.Context) {
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

	records, err := h.svc.Maintenance.ListMaintenance(c.Request.Context(), primary.MaintenanceFilters{
		EquipmentID: c.Query("equipment_id"),
		Status:      c.Query("status"),
		Type:        c.Query("type"),
		From:        from,
		To:          to,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// HandleCreateMaintenance schedules a maintenance record.
func (h *Handlers) HandleCreateMaintenance(c *gin.Context) {
	var body createMaintenanceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	scheduled, err := h.parseDate(body.ScheduledDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	record, err := h.svc.Maintenance.CreateMaintenance(c.Request.Context(), primary.CreateMaintenanceRequest{
		EquipmentID:     body.EquipmentID,
		Type:            body.Type,
		ScheduledDate:   scheduled,
		DurationMinutes: body.DurationMinutes,
		Responsible:     body.Responsible,
		Status:          body.Status,
		Priority:        body.Priority,
		Notes:           body.Notes,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// HandleGetMaintenance returns one record with its display status.
func (h *Handlers) HandleGetMaintenance(c *gin.Context) {
	record, err := h.svc.Maintenance.GetMaintenance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// HandleUpdateMaintenance applies a partial edit.
func (h *Handlers) HandleUpdateMaintenance(c *gin.Context) {
	var body updateMaintenanceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	req := primary.UpdateMaintenanceRequest{
		ID:              c.Param("id"),
		Type:            body.Type,
		DurationMinutes: body.DurationMinutes,
		Responsible:     body.Responsible,
		Status:          body.Status,
		Priority:        body.Priority,
		Notes:           body.Notes,
	}
	if body.ScheduledDate != nil {
		scheduled, err := h.parseDate(*body.ScheduledDate)
		if err != nil {
			badRequest(c, err)
			return
		}
		req.ScheduledDate = &scheduled
	}

	record, err := h.svc.Maintenance.UpdateMaintenance(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// HandleDeleteMaintenance removes a record.
func (h *Handlers) HandleDeleteMaintenance(c *gin.Context) {
	if err := h.svc.Maintenance.DeleteMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleStartMaintenance moves a scheduled record to in_progress.
func (h *Handlers) HandleStartMaintenance(c *gin.Context) {
	h.respondMaintenance(c)(h.svc.Maintenance.StartMaintenance(c.Request.Context(), c.Param("id")))
}

// HandlePostponeMaintenance marks a scheduled record postponed.
func (h *Handlers) HandlePostponeMaintenance(c *gin.Context) {
	h.respondMaintenance(c)(h.svc.Maintenance.PostponeMaintenance(c.Request.Context(), c.Param("id")))
}

// HandleRescheduleMaintenance puts a record back on the schedule.
func (h *Handlers) HandleRescheduleMaintenance(c *gin.Context) {
	var body rescheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	date, err := h.parseDate(body.Date)
	if err != nil {
		badRequest(c, err)
		return
	}

	h.respondMaintenance(c)(h.svc.Maintenance.RescheduleMaintenance(c.Request.Context(), primary.RescheduleMaintenanceRequest{
		ID:   c.Param("id"),
		Date: date,
	}))
}

// HandleCompleteMaintenance marks a record completed. The body is optional.
func (h *Handlers) HandleCompleteMaintenance(c *gin.Context) {
	var body noteBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, err)
			return
		}
	}

	h.respondMaintenance(c)(h.svc.Maintenance.CompleteMaintenance(c.Request.Context(), primary.CompleteMaintenanceRequest{
		ID:   c.Param("id"),
		Note: body.Note,
	}))
}

// HandleAddMaintenanceNote appends a note and returns the raised remark.
func (h *Handlers) HandleAddMaintenanceNote(c *gin.Context) {
	var body noteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	raised, err := h.svc.Maintenance.AddMaintenanceNote(c.Request.Context(), primary.AddMaintenanceNoteRequest{
		ID:       c.Param("id"),
		Note:     body.Note,
		Priority: body.Priority,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, raised)
}

func (h *Handlers) respondMaintenance(c *gin.Context) func(*primary.Maintenance, error) {
	return func(record *primary.Maintenance, err error) {
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/plantops/internal/ports/primary"
)

type createRemarkBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EquipmentID string `json:"equipment_id"`
	Priority    string `json:"priority"`
	Reporter    string `json:"reporter"`
	Assignee    string `json:"assignee"`
}

type statusBody struct {
	Status string `json:"status"`
}

type assignBody struct {
	Assignee string `json:"assignee"`
}

// HandleListRemarks lists remarks.
func (h *Handlers) HandleListRemarks(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		badRequest(c, err)
		return
	}

	remarks, err := h.svc.Remarks.ListRemarks(c.Request.Context(), primary.RemarkFilters{
		Status:      c.Query("status"),
		Source:      c.Query("source"),
		EquipmentID: c.Query("equipment_id"),
		Limit:       limit,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, remarks)
}

// HandleCreateRemark raises a manual remark.
func (h *Handlers) HandleCreateRemark(c *gin.Context) {
	var body createRemarkBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	r, err := h.svc.Remarks.CreateRemark(c.Request.Context(), primary.CreateRemarkRequest(body))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// HandleGetRemark returns one remark.
func (h *Handlers) HandleGetRemark(c *gin.Context) {
	h.respondRemark(c)(h.svc.Remarks.GetRemark(c.Request.Context(), c.Param("id")))
}

// HandleTransitionRemark changes a remark's status.
func (h *Handlers) HandleTransitionRemark(c *gin.Context) {
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	h.respondRemark(c)(h.svc.Remarks.TransitionRemark(c.Request.Context(), primary.TransitionRemarkRequest{
		ID:     c.Param("id"),
		Status: body.Status,
	}))
}

// HandleAddRemarkNote appends a note.
func (h *Handlers) HandleAddRemarkNote(c *gin.Context) {
	var body noteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	h.respondRemark(c)(h.svc.Remarks.AddRemarkNote(c.Request.Context(), primary.AddRemarkNoteRequest{
		ID:   c.Param("id"),
		Note: body.Note,
	}))
}

// HandleAssignRemark sets the assignee.
func (h *Handlers) HandleAssignRemark(c *gin.Context) {
	var body assignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	h.respondRemark(c)(h.svc.Remarks.AssignRemark(c.Request.Context(), primary.AssignRemarkRequest{
		ID:       c.Param("id"),
		Assignee: body.Assignee,
	}))
}

func (h *Handlers) respondRemark(c *gin.Context) func(*primary.Remark, error) {
	return func(r *primary.Remark, err error) {
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

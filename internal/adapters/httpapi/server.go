// Package httpapi exposes the primary ports as a JSON API over gin.
//
// Routes are grouped under /api/v1. The acting person is taken from the
// X-Actor header and every request carries an X-Request-ID, generated when
// the client sends none.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/plantops/internal/logging"
	"github.com/example/plantops/internal/metrics"
	"github.com/example/plantops/internal/ports/primary"
)

// Services bundles the primary ports served over HTTP.
type Services struct {
	Checklists  primary.ChecklistService
	Inspections primary.InspectionService
	Maintenance primary.MaintenanceService
	Remarks     primary.RemarkService
	Calendar    primary.CalendarService
	Reports     primary.ReportService
}

// Options configures the router.
type Options struct {
	Logger   logging.Logger
	Metrics  *metrics.Collectors // nil disables request metrics
	Gatherer prometheus.Gatherer // nil uses the default registry
	Location *time.Location      // zone used to parse day parameters
}

// Handlers holds the HTTP handlers for every primary operation.
type Handlers struct {
	svc    Services
	logger logging.Logger
	loc    *time.Location
}

// NewHandlers creates the handler set.
func NewHandlers(svc Services, logger logging.Logger, loc *time.Location) *Handlers {
	if logger == nil {
		logger = logging.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Handlers{svc: svc, logger: logger, loc: loc}
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(svc Services, opts Options) *gin.Engine {
	h := NewHandlers(svc, opts.Logger, opts.Location)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestContext())
	router.Use(AccessLog(h.logger, opts.Metrics))

	router.GET("/healthz", HandleHealth)

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	RegisterRoutes(router.Group("/api/v1"), h)
	return router
}

// RegisterRoutes registers every /api/v1 endpoint with rg.
//
//	GET    /equipment/:equipment_id/checklist
//	PUT    /equipment/:equipment_id/checklist
//	GET    /equipment/:equipment_id/inspection          resolve items (?day, ?resume)
//	POST   /equipment/:equipment_id/inspection          complete
//	PUT    /equipment/:equipment_id/inspection/progress save progress
//	DELETE /equipment/:equipment_id/inspection/progress discard progress
//	GET    /board                                       daily status (?day)
//	GET    /inspections                                 history
//	GET    /inspections/:id
//	DELETE /inspections/:id
//	GET    /maintenance
//	POST   /maintenance
//	GET    /maintenance/:id
//	PATCH  /maintenance/:id
//	DELETE /maintenance/:id
//	POST   /maintenance/:id/{start,postpone,reschedule,complete,notes}
//	GET    /remarks
//	POST   /remarks
//	GET    /remarks/:id
//	POST   /remarks/:id/{status,notes,assign}
//	GET    /calendar/month                              (?date)
//	GET    /calendar/year                               (?year)
//	GET    /reports/summary                             (?day)
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	equipment := rg.Group("/equipment/:equipment_id")
	{
		equipment.GET("/checklist", h.HandleGetChecklist)
		equipment.PUT("/checklist", h.HandleUpsertChecklist)

		equipment.GET("/inspection", h.HandleResolveItems)
		equipment.POST("/inspection", h.HandleCompleteInspection)
		equipment.PUT("/inspection/progress", h.HandleSaveProgress)
		equipment.DELETE("/inspection/progress", h.HandleDiscardProgress)
	}

	rg.GET("/board", h.HandleDailyStatus)

	inspections := rg.Group("/inspections")
	{
		inspections.GET("", h.HandleListInspections)
		inspections.GET("/:id", h.HandleGetInspection)
		inspections.DELETE("/:id", h.HandleDeleteInspection)
	}

	maintenance := rg.Group("/maintenance")
	{
		maintenance.GET("", h.HandleListMaintenance)
		maintenance.POST("", h.HandleCreateMaintenance)
		maintenance.GET("/:id", h.HandleGetMaintenance)
		maintenance.PATCH("/:id", h.HandleUpdateMaintenance)
		maintenance.DELETE("/:id", h.HandleDeleteMaintenance)
		maintenance.POST("/:id/start", h.HandleStartMaintenance)
		maintenance.POST("/:id/postpone", h.HandlePostponeMaintenance)
		maintenance.POST("/:id/reschedule", h.HandleRescheduleMaintenance)
		maintenance.POST("/:id/complete", h.HandleCompleteMaintenance)
		maintenance.POST("/:id/notes", h.HandleAddMaintenanceNote)
	}

	remarks := rg.Group("/remarks")
	{
		remarks.GET("", h.HandleListRemarks)
		remarks.POST("", h.HandleCreateRemark)
		remarks.GET("/:id", h.HandleGetRemark)
		remarks.POST("/:id/status", h.HandleTransitionRemark)
		remarks.POST("/:id/notes", h.HandleAddRemarkNote)
		remarks.POST("/:id/assign", h.HandleAssignRemark)
	}

	rg.GET("/calendar/month", h.HandleMonthGrid)
	rg.GET("/calendar/year", h.HandleYearSummary)
	rg.GET("/reports/summary", h.HandleSummary)
}

// HandleHealth reports liveness.
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/metrics"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/ports/secondary"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubChecklists implements primary.ChecklistService for testing
type stubChecklists struct {
	template *primary.ChecklistTemplate
}

func (s *stubChecklists) GetTemplate(ctx context.Context, equipmentID string) (*primary.ChecklistTemplate, error) {
	return s.template, nil
}

func (s *stubChecklists) UpsertTemplate(ctx context.Context, req primary.UpsertTemplateRequest) (*primary.UpsertTemplateResponse, error) {
	return &primary.UpsertTemplateResponse{
		Template: &primary.ChecklistTemplate{ID: "CHK-001", EquipmentID: req.EquipmentID, Items: req.Items},
		Created:  true,
	}, nil
}

// stubMaintenance implements the maintenance calls exercised here
type stubMaintenance struct {
	primary.MaintenanceService

	lastCreate primary.CreateMaintenanceRequest
	err        error
}

func (s *stubMaintenance) CreateMaintenance(ctx context.Context, req primary.CreateMaintenanceRequest) (*primary.Maintenance, error) {
	s.lastCreate = req
	if s.err != nil {
		return nil, s.err
	}
	return &primary.Maintenance{ID: "MNT-001", ScheduledDate: req.ScheduledDate.Format(DateLayout)}, nil
}

func (s *stubMaintenance) GetMaintenance(ctx context.Context, id string) (*primary.Maintenance, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &primary.Maintenance{ID: id}, nil
}

func (s *stubMaintenance) StartMaintenance(ctx context.Context, id string) (*primary.Maintenance, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &primary.Maintenance{ID: id, Status: "in_progress", DisplayStatus: "in_progress"}, nil
}

// stubRemarks captures the context of remark creation
type stubRemarks struct {
	primary.RemarkService

	actor     string
	requestID string
}

func (s *stubRemarks) CreateRemark(ctx context.Context, req primary.CreateRemarkRequest) (*primary.Remark, error) {
	s.actor = ctxutil.ActorFromContext(ctx)
	s.requestID = ctxutil.RequestIDFromContext(ctx)
	return &primary.Remark{ID: "r-1", Title: req.Title, Reporter: s.actor}, nil
}

type fixture struct {
	router      *gin.Engine
	checklists  *stubChecklists
	maintenance *stubMaintenance
	remarks     *stubRemarks
	registry    *prometheus.Registry
}

var siteZone = time.FixedZone("UTC+3", 3*60*60)

func newFixture() *fixture {
	f := &fixture{
		checklists:  &stubChecklists{},
		maintenance: &stubMaintenance{},
		remarks:     &stubRemarks{},
		registry:    prometheus.NewRegistry(),
	}
	f.router = NewRouter(Services{
		Checklists:  f.checklists,
		Maintenance: f.maintenance,
		Remarks:     f.remarks,
	}, Options{
		Metrics:  metrics.New(f.registry),
		Gatherer: f.registry,
		Location: siteZone,
	})
	return f
}

func (f *fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("remark x: %w", secondary.ErrNotFound), http.StatusNotFound},
		{"invalid", fmt.Errorf("%w: bad", primary.ErrInvalidRequest), http.StatusBadRequest},
		{"not allowed", primary.NotAllowed(errors.New("already completed")), http.StatusConflict},
		{"other", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestRequestContext_ActorAndRequestID(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/api/v1/remarks", `{"title":"Leak","equipment_id":"EQ-001"}`,
		HeaderActor, "kozlov", HeaderRequestID, "req-42")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "kozlov", f.remarks.actor)
	assert.Equal(t, "req-42", f.remarks.requestID)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
}

func TestRequestContext_GeneratesRequestID(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/api/v1/remarks", `{"title":"Leak","equipment_id":"EQ-001"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, f.remarks.requestID)
	assert.Equal(t, f.remarks.requestID, w.Header().Get(HeaderRequestID))
	assert.Empty(t, f.remarks.actor)
}

func TestCreateMaintenance_ParsesDateInSiteZone(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/api/v1/maintenance", `{"equipment_id":"EQ-001","type":"monthly","scheduled_date":"2025-04-01"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	got := f.maintenance.lastCreate.ScheduledDate
	assert.True(t, got.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, siteZone)))
	assert.Equal(t, "monthly", f.maintenance.lastCreate.Type)
}

func TestCreateMaintenance_BadInput(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/api/v1/maintenance", `{"equipment_id":"EQ-001","type":"monthly","scheduled_date":"01.04.2025"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "expected YYYY-MM-DD")

	w = f.do(http.MethodPost, "/api/v1/maintenance", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceErrorsAreMapped(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"not found", fmt.Errorf("maintenance record MNT-9: %w", secondary.ErrNotFound), http.StatusNotFound, "MNT-9"},
		{"guard", primary.NotAllowed(errors.New("cannot start from completed")), http.StatusConflict, "cannot start"},
		{"internal", errors.New("database is locked"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.maintenance.err = tt.err

			w := f.do(http.MethodPost, "/api/v1/maintenance/MNT-9/start", "")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "database is locked")
		})
	}
}

func TestGetChecklist_Missing(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodGet, "/api/v1/equipment/EQ-001/checklist", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertChecklist_Created(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPut, "/api/v1/equipment/EQ-001/checklist", `{"items":["Safety: Guards in place"]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp primary.UpsertTemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EQ-001", resp.Template.EquipmentID)
	assert.Equal(t, []string{"Safety: Guards in place"}, resp.Template.Items)
}

func TestMetricsEndpoint_RecordsRoutePattern(t *testing.T) {
	f := newFixture()

	f.do(http.MethodGet, "/api/v1/maintenance/MNT-001", "")
	w := f.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "plantops_http_request_duration_seconds")
	assert.Contains(t, body, `route="/api/v1/maintenance/:id"`)
	assert.NotContains(t, body, "MNT-001")
}

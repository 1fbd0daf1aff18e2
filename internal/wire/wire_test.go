package wire

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/plantops/internal/config"
	"github.com/example/plantops/internal/db"
	"github.com/example/plantops/internal/ports/primary"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default(t.TempDir())
	cfg.CacheInMemory = true
	cfg.Location = "UTC"
	return cfg
}

func TestBuild_WiresServicesEndToEnd(t *testing.T) {
	ctx := context.Background()
	c, err := Build(ctx, testConfig(t), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, db.SeedDemo(ctx, c.DB, time.Now().In(c.Location)))

	tmpl, err := c.ChecklistService.UpsertTemplate(ctx, primary.UpsertTemplateRequest{
		EquipmentID: "EQ-004",
		Items:       []string{"Safety: Limit switches work", "Mechanical: Hook latch closes"},
	})
	require.NoError(t, err)
	assert.True(t, tmpl.Created)

	resolved, err := c.InspectionService.ResolveItems(ctx, primary.ResolveItemsRequest{EquipmentID: "EQ-004"})
	require.NoError(t, err)
	require.Len(t, resolved.Items, 2)
	assert.True(t, resolved.FromTemplate)

	items := resolved.Items
	items[0].Status = "critical"
	items[1].Status = "ok"
	resp, err := c.InspectionService.CompleteInspection(ctx, primary.CompleteInspectionRequest{
		EquipmentID: "EQ-004",
		Items:       items,
		Inspector:   "kozlov",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Remarks, 1)

	// The change feed reached the metrics subscriber
	families, err := c.Registry.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "plantops_changes_total")
	assert.Contains(t, names, "plantops_inspection_operational_total")
}

func TestBuild_RejectsBadLocation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Location = "Mars/Olympus"

	_, err := Build(context.Background(), cfg, io.Discard)

	assert.Error(t, err)
}

func TestHandler_ServesAPIAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.DatabasePath = filepath.Join(t.TempDir(), "api.db")
	c, err := Build(context.Background(), cfg, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	handler := c.Handler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "plantops_http_request_duration_seconds"))
}

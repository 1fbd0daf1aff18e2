package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/core/maintenance"
	"github.com/example/plantops/internal/core/progress"
	"github.com/example/plantops/internal/core/remark"
	"github.com/example/plantops/internal/ports/secondary"
)

func TestReportService_Summary(t *testing.T) {
	inspections := &mockInspectionRepository{records: []*secondary.InspectionRecord{
		{ID: "INS-1", EquipmentID: "EQ-001", Date: testDay(2025, 3, 14), CheckResults: []string{"ok", "critical"}},
		{ID: "INS-0", EquipmentID: "EQ-002", Date: testDay(2025, 3, 13), CheckResults: []string{"ok"}},
	}}
	cache := newMockProgressCache()
	require.NoError(t, cache.Set(context.Background(), progress.NewEntry("EQ-002", testNow, nil, testNow.Add(-time.Minute))))

	maint := newMockMaintenanceRepository()
	maint.records["MNT-001"] = &secondary.MaintenanceRecord{ID: "MNT-001", Type: "monthly", Status: "scheduled", ScheduledDate: testDay(2025, 3, 1)}
	maint.records["MNT-002"] = &secondary.MaintenanceRecord{ID: "MNT-002", Type: "monthly", Status: "completed", ScheduledDate: testDay(2025, 3, 2)}
	maint.records["MNT-003"] = &secondary.MaintenanceRecord{ID: "MNT-003", Type: "repair", Status: "scheduled", ScheduledDate: testDay(2025, 3, 20)}

	remarks := newMockRemarkRepository()
	remarks.remarks["A"] = &secondary.RemarkRecord{ID: "A", Priority: "critical", Status: "open"}
	remarks.remarks["B"] = &secondary.RemarkRecord{ID: "B", Priority: "critical", Status: "resolved"}
	remarks.remarks["C"] = &secondary.RemarkRecord{ID: "C", Priority: "low", Status: "in_progress"}

	svc := NewReportService(testEquipment(), inspections, maint, remarks, cache, 0, testEnv(&recordingPublisher{}))

	r, err := svc.Summary(context.Background(), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", r.Day)
	assert.Equal(t, 3, r.EquipmentTotal)
	assert.Equal(t, map[string]int{"working": 1, "maintenance": 1, "decommissioned": 1}, r.EquipmentByStatus)

	assert.Equal(t, 1, r.Inspections.Completed)
	assert.Equal(t, 1, r.Inspections.InProgress)
	assert.Equal(t, 1, r.Inspections.NotStarted)
	assert.Equal(t, 33.3, r.Inspections.Percent)

	assert.Equal(t, 1, r.Operational[inspection.OperationalNotWorking])
	assert.Equal(t, 1, r.Operational[inspection.OperationalMaintenance])
	assert.Equal(t, 1, r.Operational[inspection.OperationalWorking])

	assert.Equal(t, 1, r.Maintenance[maintenance.StatusOverdue])
	assert.Equal(t, 1, r.Maintenance[maintenance.StatusScheduled])
	assert.Equal(t, 1, r.Maintenance[maintenance.StatusCompleted])
	assert.Equal(t, 0, r.Maintenance[maintenance.StatusPostponed])
	assert.Equal(t, 2, r.MaintenanceByType[maintenance.TypeMonthly])
	assert.Equal(t, 1, r.MaintenanceByType[maintenance.TypeRepair])

	assert.Equal(t, 1, r.OpenRemarks[remark.PriorityCritical])
	assert.Equal(t, 1, r.OpenRemarks[remark.PriorityLow])
}

func TestReportService_EmptySite(t *testing.T) {
	svc := NewReportService(newMockEquipmentDirectory(), &mockInspectionRepository{}, newMockMaintenanceRepository(),
		newMockRemarkRepository(), newMockProgressCache(), 0, testEnv(&recordingPublisher{}))

	r, err := svc.Summary(context.Background(), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 0, r.EquipmentTotal)
	assert.Equal(t, 0.0, r.Inspections.Percent)
}

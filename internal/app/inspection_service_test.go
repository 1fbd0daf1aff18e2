package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/core/progress"
	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/ports/secondary"
)

type inspectionFixture struct {
	checklists  *mockChecklistRepository
	inspections *mockInspectionRepository
	cache       *mockProgressCache
	pub         *recordingPublisher
	svc         *InspectionServiceImpl
}

func newInspectionFixture() *inspectionFixture {
	f := &inspectionFixture{
		checklists:  newMockChecklistRepository(),
		inspections: &mockInspectionRepository{},
		cache:       newMockProgressCache(),
		pub:         &recordingPublisher{},
	}
	f.checklists.checklists["EQ-001"] = &secondary.ChecklistRecord{
		ID:          "CHK-001",
		EquipmentID: "EQ-001",
		Items:       []string{"Safety: Guard", "Oil: Level", "broken line"},
	}
	f.svc = NewInspectionService(f.checklists, testEquipment(), f.inspections, f.cache, InspectionConfig{}, testEnv(f.pub))
	return f
}

func TestInspectionService_ResolveItems_FromTemplate(t *testing.T) {
	f := newInspectionFixture()

	got, err := f.svc.ResolveItems(context.Background(), primary.ResolveItemsRequest{EquipmentID: "EQ-001"})
	require.NoError(t, err)

	assert.True(t, got.FromTemplate)
	assert.False(t, got.Resumed)
	assert.Equal(t, "2025-03-14", got.Day)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "EQ-001-0", got.Items[0].ID)
	assert.Equal(t, "Guard", got.Items[0].Text)
	assert.Equal(t, checklist.StatusOK, got.Items[1].Status)
}

func TestInspectionService_ResolveItems_DefaultChecklist(t *testing.T) {
	f := newInspectionFixture()

	got, err := f.svc.ResolveItems(context.Background(), primary.ResolveItemsRequest{EquipmentID: "EQ-002"})
	require.NoError(t, err)

	assert.False(t, got.FromTemplate)
	assert.Len(t, got.Items, checklist.DefaultChecklistSize)
}

func TestInspectionService_ResolveItems_ResumesValidProgress(t *testing.T) {
	f := newInspectionFixture()
	cached := []checklist.Item{
		{Category: "Oil", Text: "Level", Checked: true, Status: checklist.StatusCritical, Notes: "dry"},
		{Category: "Gone", Text: "Removed item", Checked: true, Status: checklist.StatusAttention},
	}
	saved := testNow.Add(-90 * time.Minute)
	require.NoError(t, f.cache.Set(context.Background(), progress.NewEntry("EQ-001", testNow, cached, saved)))

	got, err := f.svc.ResolveItems(context.Background(), primary.ResolveItemsRequest{EquipmentID: "EQ-001", PreferCachedProgress: true})
	require.NoError(t, err)

	assert.True(t, got.Resumed)
	assert.Equal(t, saved, got.SavedAt)
	require.Len(t, got.Items, 2)
	assert.False(t, got.Items[0].Checked)
	assert.Equal(t, checklist.StatusCritical, got.Items[1].Status)
	assert.Equal(t, "dry", got.Items[1].Notes)
}

func TestInspectionService_ResolveItems_IgnoresProgressUnlessAsked(t *testing.T) {
	f := newInspectionFixture()
	cached := []checklist.Item{{Category: "Oil", Text: "Level", Checked: true, Status: checklist.StatusCritical}}
	require.NoError(t, f.cache.Set(context.Background(), progress.NewEntry("EQ-001", testNow, cached, testNow)))

	got, err := f.svc.ResolveItems(context.Background(), primary.ResolveItemsRequest{EquipmentID: "EQ-001"})
	require.NoError(t, err)

	assert.False(t, got.Resumed)
	assert.Equal(t, checklist.StatusOK, got.Items[1].Status)
}

func TestInspectionService_ResolveItems_ExpiredProgressIsDiscarded(t *testing.T) {
	f := newInspectionFixture()
	cached := []checklist.Item{{Category: "Oil", Text: "Level", Checked: true, Status: checklist.StatusCritical}}
	saved := testNow.Add(-2*time.Hour - time.Second)
	require.NoError(t, f.cache.Set(context.Background(), progress.NewEntry("EQ-001", testNow, cached, saved)))

	got, err := f.svc.ResolveItems(context.Background(), primary.ResolveItemsRequest{EquipmentID: "EQ-001", PreferCachedProgress: true})
	require.NoError(t, err)

	assert.False(t, got.Resumed)
	assert.Equal(t, checklist.StatusOK, got.Items[1].Status)
	assert.Equal(t, []string{"2025-03-14/EQ-001"}, f.cache.deleted)
}

func TestInspectionService_ResolveItems_CacheFailureStartsFresh(t *testing.T) {
	f := newInspectionFixture()
	f.cache.getErr = errBoom

	got, err := f.svc.ResolveItems(context.Background(), primary.ResolveItemsRequest{EquipmentID: "EQ-001", PreferCachedProgress: true})

	require.NoError(t, err)
	assert.False(t, got.Resumed)
}

func TestInspectionService_SaveAndDiscardProgress(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()
	items := []checklist.Item{{ID: "EQ-001-0", Category: "Safety", Text: "Guard", Checked: true, Status: checklist.StatusOK}}

	snap, err := f.svc.SaveProgress(ctx, primary.SaveProgressRequest{EquipmentID: "EQ-001", Items: items})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.ItemCount)
	assert.Equal(t, testNow.Add(progress.ValidityWindow), snap.ExpiresAt)
	assert.Contains(t, f.cache.entries, "2025-03-14/EQ-001")

	require.NoError(t, f.svc.DiscardProgress(ctx, "EQ-001"))
	assert.NotContains(t, f.cache.entries, "2025-03-14/EQ-001")

	assert.Equal(t, []string{secondary.ActionSaved, secondary.ActionDiscarded}, f.pub.actions(secondary.TopicInspection))
	assert.ErrorIs(t, f.svc.DiscardProgress(ctx, ""), primary.ErrInvalidRequest)
}

func completionItems() []checklist.Item {
	return []checklist.Item{
		{ID: "EQ-001-0", Category: "Safety", Text: "Guard", Checked: true, Status: checklist.StatusOK, Notes: "fine"},
		{ID: "EQ-001-1", Category: "Oil", Text: "Level", Checked: true, Status: checklist.StatusCritical, Notes: "dry"},
		{ID: "EQ-001-2", Category: "Belt", Text: "Tension", Checked: true, Status: checklist.StatusAttention},
		{ID: "EQ-001-3", Category: "Belt", Text: "Wear", Checked: true, Status: checklist.StatusAttention, Notes: "frayed"},
	}
}

func TestInspectionService_CompleteInspection(t *testing.T) {
	f := newInspectionFixture()
	ctx := ctxutil.WithActorID(context.Background(), "ivanov")
	require.NoError(t, f.cache.Set(ctx, progress.NewEntry("EQ-001", testNow, completionItems(), testNow)))

	resp, err := f.svc.CompleteInspection(ctx, primary.CompleteInspectionRequest{
		EquipmentID:  "EQ-001",
		Items:        completionItems(),
		GeneralNotes: "Area needs cleaning",
	})
	require.NoError(t, err)

	assert.Equal(t, "ivanov", resp.Record.Inspector)
	assert.Equal(t, "2025-03-14", resp.Record.Date)
	assert.Equal(t, []checklist.CheckStatus{"ok", "critical", "attention", "attention"}, resp.Record.CheckResults)
	assert.Equal(t, []string{
		"Guard: fine",
		"Level: dry",
		"Wear: frayed",
		inspection.GeneralNotesPrefix + "Area needs cleaning",
	}, resp.Record.Comments)

	assert.Equal(t, inspection.OperationalNotWorking, resp.Status.Operational)
	assert.Equal(t, 3, resp.Status.IssueCount)
	assert.Equal(t, inspection.SessionCompleted, resp.Status.Session)

	// critical + attention with notes + general
	require.Len(t, resp.Remarks, 3)
	assert.Equal(t, "critical", resp.Remarks[0].Priority)
	assert.Equal(t, "EQ-001-1", resp.Remarks[0].ItemID)
	assert.Equal(t, "medium", resp.Remarks[1].Priority)
	assert.Equal(t, "low", resp.Remarks[2].Priority)
	for _, r := range resp.Remarks {
		assert.Equal(t, "inspection", r.Source)
		assert.Equal(t, "open", r.Status)
		assert.Equal(t, resp.Record.ID, r.SourceID)
	}

	assert.Empty(t, f.cache.entries)
	assert.Len(t, f.inspections.remarks, 3)

	last := f.pub.events[len(f.pub.events)-1]
	assert.Equal(t, secondary.ActionCompleted, last.Action)
	assert.Equal(t, "3", last.Attrs["issues"])
}

func TestInspectionService_CompleteInspection_AttentionThreshold(t *testing.T) {
	tests := []struct {
		name      string
		attention int
		want      inspection.OperationalStatus
	}{
		{name: "two attention items still working", attention: 2, want: inspection.OperationalWorking},
		{name: "three attention items need maintenance", attention: 3, want: inspection.OperationalMaintenance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInspectionFixture()
			items := make([]checklist.Item, 4)
			for i := range items {
				items[i] = checklist.Item{ID: checklist.ItemID("EQ-002", i), Category: "C", Text: "I", Status: checklist.StatusOK}
				if i < tt.attention {
					items[i].Status = checklist.StatusAttention
				}
			}

			resp, err := f.svc.CompleteInspection(context.Background(), primary.CompleteInspectionRequest{
				EquipmentID: "EQ-002", Items: items, Inspector: "petrova",
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, resp.Status.Operational)
			assert.Empty(t, resp.Remarks)
		})
	}
}

func TestInspectionService_CompleteInspection_PersistenceFailure(t *testing.T) {
	f := newInspectionFixture()
	f.inspections.completeErr = errBoom
	ctx := context.Background()
	require.NoError(t, f.cache.Set(ctx, progress.NewEntry("EQ-001", testNow, completionItems(), testNow)))

	_, err := f.svc.CompleteInspection(ctx, primary.CompleteInspectionRequest{
		EquipmentID: "EQ-001", Items: completionItems(), Inspector: "ivanov",
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, f.cache.entries, "2025-03-14/EQ-001")
	assert.Empty(t, f.inspections.remarks)
	assert.Empty(t, f.pub.events)
}

func TestInspectionService_CompleteInspection_Guards(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	_, err := f.svc.CompleteInspection(ctx, primary.CompleteInspectionRequest{
		EquipmentID: "EQ-404", Items: completionItems(), Inspector: "ivanov",
	})
	assert.ErrorIs(t, err, primary.ErrNotAllowed)

	_, err = f.svc.CompleteInspection(ctx, primary.CompleteInspectionRequest{
		EquipmentID: "EQ-001", Items: completionItems(),
	})
	assert.ErrorIs(t, err, primary.ErrNotAllowed)

	_, err = f.svc.CompleteInspection(ctx, primary.CompleteInspectionRequest{EquipmentID: "EQ-001", Inspector: "ivanov"})
	assert.ErrorIs(t, err, primary.ErrInvalidRequest)
}

func TestInspectionService_CompleteInspection_SameDayReplaces(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()
	req := primary.CompleteInspectionRequest{EquipmentID: "EQ-001", Items: completionItems(), Inspector: "ivanov"}

	first, err := f.svc.CompleteInspection(ctx, req)
	require.NoError(t, err)
	second, err := f.svc.CompleteInspection(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Record.ID, second.ReplacedID)
	assert.Len(t, f.inspections.records, 1)
	assert.Contains(t, f.pub.actions(secondary.TopicInspection), secondary.ActionReplaced)
}

func TestInspectionService_DailyStatus(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	_, err := f.svc.CompleteInspection(ctx, primary.CompleteInspectionRequest{
		EquipmentID: "EQ-001", Items: completionItems(), Inspector: "ivanov", GeneralNotes: "dusty",
	})
	require.NoError(t, err)
	require.NoError(t, f.cache.Set(ctx, progress.NewEntry("EQ-002", testNow, completionItems(), testNow.Add(-time.Hour))))
	require.NoError(t, f.cache.Set(ctx, progress.NewEntry("EQ-003", testNow, completionItems(), testNow.Add(-3*time.Hour))))

	statuses, err := f.svc.DailyStatus(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, inspection.SessionCompleted, statuses[0].Session)
	assert.Equal(t, inspection.OperationalNotWorking, statuses[0].Operational)
	assert.Equal(t, "ivanov", statuses[0].Inspector)
	assert.Equal(t, "dusty", statuses[0].Notes)

	assert.Equal(t, inspection.SessionInProgress, statuses[1].Session)
	assert.Equal(t, inspection.OperationalMaintenance, statuses[1].Operational)

	// expired progress does not count; unknown directory status falls back to working
	assert.Equal(t, inspection.SessionNotStarted, statuses[2].Session)
	assert.Equal(t, inspection.OperationalWorking, statuses[2].Operational)
}

func TestInspectionService_History(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	resp, err := f.svc.CompleteInspection(ctx, primary.CompleteInspectionRequest{
		EquipmentID: "EQ-001", Items: completionItems(), Inspector: "ivanov",
	})
	require.NoError(t, err)

	list, err := f.svc.ListInspections(ctx, primary.InspectionFilters{EquipmentID: "EQ-001", From: testDay(2025, 3, 1)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].IssueCount)

	got, err := f.svc.GetInspection(ctx, resp.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, inspection.OperationalNotWorking, got.Operational)

	require.NoError(t, f.svc.DeleteInspection(ctx, resp.Record.ID))
	_, err = f.svc.GetInspection(ctx, resp.Record.ID)
	assert.ErrorIs(t, err, secondary.ErrNotFound)
}

package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/plantops/internal/adapters/sqlite"
	"github.com/example/plantops/internal/ports/secondary"
)

func TestRemarkRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewRemarkRepository(setupTestDB(t))

	record := &secondary.RemarkRecord{
		ID:          "RM-1",
		Title:       "Loose guard",
		Description: "Left guard rattles",
		EquipmentID: "EQ-001",
		Source:      "manual",
		Priority:    "high",
		Status:      "open",
		Reporter:    "ivanov",
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
	require.NoError(t, repo.Create(ctx, record))

	got, err := repo.GetByID(ctx, "RM-1")
	require.NoError(t, err)
	assert.Equal(t, "Loose guard", got.Title)
	assert.Empty(t, got.Notes)
	assert.True(t, got.ResolvedAt.IsZero())

	resolved := stamp.Add(2 * time.Hour)
	got.Status = "resolved"
	got.Assignee = "petrov"
	got.Notes = []string{"tightened"}
	got.UpdatedAt = resolved
	got.ResolvedAt = resolved
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, "RM-1")
	require.NoError(t, err)
	assert.Equal(t, "resolved", updated.Status)
	assert.Equal(t, "petrov", updated.Assignee)
	assert.Equal(t, []string{"tightened"}, updated.Notes)
	assert.True(t, resolved.Equal(updated.ResolvedAt))
}

func TestRemarkRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewRemarkRepository(setupTestDB(t))

	_, err := repo.GetByID(ctx, "RM-404")
	assert.ErrorIs(t, err, secondary.ErrNotFound)

	err = repo.Update(ctx, &secondary.RemarkRecord{ID: "RM-404", Status: "open", UpdatedAt: stamp})
	assert.ErrorIs(t, err, secondary.ErrNotFound)
}

func TestRemarkRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewRemarkRepository(setupTestDB(t))

	seed := []struct {
		id, source, status, equipment string
		offset                        time.Duration
	}{
		{"RM-1", "inspection", "open", "EQ-001", 0},
		{"RM-2", "maintenance", "open", "EQ-002", time.Minute},
		{"RM-3", "manual", "resolved", "EQ-001", 2 * time.Minute},
	}
	for _, s := range seed {
		require.NoError(t, repo.Create(ctx, &secondary.RemarkRecord{
			ID: s.id, Title: s.id, EquipmentID: s.equipment, Source: s.source,
			Priority: "medium", Status: s.status, CreatedAt: stamp.Add(s.offset), UpdatedAt: stamp,
		}))
	}

	tests := []struct {
		name    string
		filters secondary.RemarkFilters
		wantIDs []string
	}{
		{name: "all newest first", wantIDs: []string{"RM-3", "RM-2", "RM-1"}},
		{name: "open", filters: secondary.RemarkFilters{Status: "open"}, wantIDs: []string{"RM-2", "RM-1"}},
		{name: "source", filters: secondary.RemarkFilters{Source: "maintenance"}, wantIDs: []string{"RM-2"}},
		{name: "equipment", filters: secondary.RemarkFilters{EquipmentID: "EQ-001"}, wantIDs: []string{"RM-3", "RM-1"}},
		{name: "limit", filters: secondary.RemarkFilters{Limit: 1}, wantIDs: []string{"RM-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filters)
			require.NoError(t, err)

			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

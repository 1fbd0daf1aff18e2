package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/example/plantops/internal/core/progress"
	"github.com/example/plantops/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

var errBoom = errors.New("boom")

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, secondary.ErrNotFound)
}

// mockEquipmentDirectory implements secondary.EquipmentDirectory for testing.
type mockEquipmentDirectory struct {
	equipment []*secondary.EquipmentRecord
	getErr    error
}

func newMockEquipmentDirectory(records ...*secondary.EquipmentRecord) *mockEquipmentDirectory {
	return &mockEquipmentDirectory{equipment: records}
}

func (m *mockEquipmentDirectory) List(ctx context.Context) ([]*secondary.EquipmentRecord, error) {
	return m.equipment, nil
}

func (m *mockEquipmentDirectory) GetByID(ctx context.Context, id string) (*secondary.EquipmentRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, e := range m.equipment {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, notFound("equipment", id)
}

// mockTaskDirectory implements secondary.TaskDirectory for testing.
type mockTaskDirectory struct {
	tasks    []*secondary.TaskRecord
	from, to time.Time
}

func (m *mockTaskDirectory) ListDue(ctx context.Context, from, to time.Time) ([]*secondary.TaskRecord, error) {
	m.from, m.to = from, to
	var out []*secondary.TaskRecord
	for _, t := range m.tasks {
		if !t.DueDate.Before(from) && t.DueDate.Before(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

// mockChecklistRepository implements secondary.ChecklistRepository for testing.
type mockChecklistRepository struct {
	checklists map[string]*secondary.ChecklistRecord // by equipment
	getErr     error
	nextID     int
}

func newMockChecklistRepository() *mockChecklistRepository {
	return &mockChecklistRepository{checklists: make(map[string]*secondary.ChecklistRecord)}
}

func (m *mockChecklistRepository) GetByEquipment(ctx context.Context, equipmentID string) (*secondary.ChecklistRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, ok := m.checklists[equipmentID]; ok {
		return c, nil
	}
	return nil, notFound("checklist for equipment", equipmentID)
}

func (m *mockChecklistRepository) Create(ctx context.Context, c *secondary.ChecklistRecord) error {
	if c.ID == "" {
		m.nextID++
		c.ID = fmt.Sprintf("CHK-%03d", m.nextID)
	}
	m.checklists[c.EquipmentID] = c
	return nil
}

func (m *mockChecklistRepository) Update(ctx context.Context, c *secondary.ChecklistRecord) error {
	if _, ok := m.checklists[c.EquipmentID]; !ok {
		return notFound("checklist", c.ID)
	}
	m.checklists[c.EquipmentID] = c
	return nil
}

// mockInspectionRepository implements secondary.InspectionRepository for testing.
type mockInspectionRepository struct {
	records     []*secondary.InspectionRecord
	remarks     []*secondary.RemarkRecord
	completeErr error
}

func (m *mockInspectionRepository) Complete(ctx context.Context, record *secondary.InspectionRecord, remarks []*secondary.RemarkRecord) (string, error) {
	if m.completeErr != nil {
		return "", m.completeErr
	}
	var replaced string
	kept := m.records[:0]
	for _, r := range m.records {
		if r.EquipmentID == record.EquipmentID && r.Date.Equal(record.Date) {
			replaced = r.ID
			continue
		}
		kept = append(kept, r)
	}
	m.records = append(kept, record)
	m.remarks = append(m.remarks, remarks...)
	return replaced, nil
}

func (m *mockInspectionRepository) GetByID(ctx context.Context, id string) (*secondary.InspectionRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, notFound("inspection", id)
}

func (m *mockInspectionRepository) List(ctx context.Context, filters secondary.InspectionFilters) ([]*secondary.InspectionRecord, error) {
	var out []*secondary.InspectionRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		r := m.records[i]
		if filters.EquipmentID != "" && r.EquipmentID != filters.EquipmentID {
			continue
		}
		if !filters.From.IsZero() && r.Date.Before(filters.From) {
			continue
		}
		if !filters.To.IsZero() && r.Date.After(filters.To) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockInspectionRepository) Delete(ctx context.Context, id string) error {
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return notFound("inspection", id)
}

// mockMaintenanceRepository implements secondary.MaintenanceRepository for testing.
type mockMaintenanceRepository struct {
	records   map[string]*secondary.MaintenanceRecord
	raised    []*secondary.RemarkRecord
	updateErr error
	nextID    int
}

func newMockMaintenanceRepository() *mockMaintenanceRepository {
	return &mockMaintenanceRepository{records: make(map[string]*secondary.MaintenanceRecord)}
}

func (m *mockMaintenanceRepository) Create(ctx context.Context, r *secondary.MaintenanceRecord) error {
	if r.ID == "" {
		m.nextID++
		r.ID = fmt.Sprintf("MNT-%03d", m.nextID)
	}
	copied := *r
	m.records[r.ID] = &copied
	return nil
}

func (m *mockMaintenanceRepository) GetByID(ctx context.Context, id string) (*secondary.MaintenanceRecord, error) {
	if r, ok := m.records[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, notFound("maintenance record", id)
}

func (m *mockMaintenanceRepository) Update(ctx context.Context, r *secondary.MaintenanceRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.records[r.ID]; !ok {
		return notFound("maintenance record", r.ID)
	}
	copied := *r
	m.records[r.ID] = &copied
	return nil
}

func (m *mockMaintenanceRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return notFound("maintenance record", id)
	}
	delete(m.records, id)
	return nil
}

func (m *mockMaintenanceRepository) List(ctx context.Context, filters secondary.MaintenanceFilters) ([]*secondary.MaintenanceRecord, error) {
	var out []*secondary.MaintenanceRecord
	for _, r := range m.records {
		if filters.EquipmentID != "" && r.EquipmentID != filters.EquipmentID {
			continue
		}
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		if filters.Type != "" && r.Type != filters.Type {
			continue
		}
		if !filters.From.IsZero() && r.ScheduledDate.Before(filters.From) {
			continue
		}
		if !filters.To.IsZero() && r.ScheduledDate.After(filters.To) {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.Before(out[j].ScheduledDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockMaintenanceRepository) AppendNote(ctx context.Context, id, note string, at time.Time, raised *secondary.RemarkRecord) error {
	r, ok := m.records[id]
	if !ok {
		return notFound("maintenance record", id)
	}
	if r.Notes != "" {
		r.Notes += "\n"
	}
	r.Notes += note
	r.UpdatedAt = at
	if raised != nil {
		m.raised = append(m.raised, raised)
	}
	return nil
}

// mockRemarkRepository implements secondary.RemarkRepository for testing.
type mockRemarkRepository struct {
	remarks map[string]*secondary.RemarkRecord
}

func newMockRemarkRepository() *mockRemarkRepository {
	return &mockRemarkRepository{remarks: make(map[string]*secondary.RemarkRecord)}
}

func (m *mockRemarkRepository) Create(ctx context.Context, r *secondary.RemarkRecord) error {
	copied := *r
	m.remarks[r.ID] = &copied
	return nil
}

func (m *mockRemarkRepository) GetByID(ctx context.Context, id string) (*secondary.RemarkRecord, error) {
	if r, ok := m.remarks[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, notFound("remark", id)
}

func (m *mockRemarkRepository) Update(ctx context.Context, r *secondary.RemarkRecord) error {
	if _, ok := m.remarks[r.ID]; !ok {
		return notFound("remark", r.ID)
	}
	copied := *r
	m.remarks[r.ID] = &copied
	return nil
}

func (m *mockRemarkRepository) List(ctx context.Context, filters secondary.RemarkFilters) ([]*secondary.RemarkRecord, error) {
	var out []*secondary.RemarkRecord
	for _, r := range m.remarks {
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		if filters.Source != "" && r.Source != filters.Source {
			continue
		}
		if filters.EquipmentID != "" && r.EquipmentID != filters.EquipmentID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// mockProgressCache implements secondary.ProgressCache for testing.
type mockProgressCache struct {
	entries   map[string]progress.Entry
	deleted   []string
	getErr    error
	deleteErr error
}

func newMockProgressCache() *mockProgressCache {
	return &mockProgressCache{entries: make(map[string]progress.Entry)}
}

func cacheKey(equipmentID, day string) string {
	return day + "/" + equipmentID
}

func (m *mockProgressCache) Get(ctx context.Context, equipmentID, day string) (*progress.Entry, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if e, ok := m.entries[cacheKey(equipmentID, day)]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *mockProgressCache) Set(ctx context.Context, entry progress.Entry) error {
	m.entries[cacheKey(entry.EquipmentID, entry.Day)] = entry
	return nil
}

func (m *mockProgressCache) Delete(ctx context.Context, equipmentID, day string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	key := cacheKey(equipmentID, day)
	m.deleted = append(m.deleted, key)
	delete(m.entries, key)
	return nil
}

func (m *mockProgressCache) ListDay(ctx context.Context, day string) ([]progress.Entry, error) {
	var out []progress.Entry
	for _, e := range m.entries {
		if e.Day == day {
			out = append(out, e)
		}
	}
	return out, nil
}

// recordingPublisher captures published change events.
type recordingPublisher struct {
	events []secondary.ChangeEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event secondary.ChangeEvent) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) actions(topic secondary.Topic) []string {
	var out []string
	for _, e := range p.events {
		if e.Topic == topic {
			out = append(out, e.Action)
		}
	}
	return out
}

// ============================================================================
// Fixtures
// ============================================================================

// testNow is 2025-03-14 10:30 UTC, a Friday.
var testNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func testEnv(pub *recordingPublisher) Env {
	return Env{
		Now:      func() time.Time { return testNow },
		Location: time.UTC,
		Changes:  pub,
	}
}

func testDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testEquipment() *mockEquipmentDirectory {
	return newMockEquipmentDirectory(
		&secondary.EquipmentRecord{ID: "EQ-001", Name: "Press", Type: "press", Status: "working"},
		&secondary.EquipmentRecord{ID: "EQ-002", Name: "Lathe", Type: "lathe", Status: "maintenance"},
		&secondary.EquipmentRecord{ID: "EQ-003", Name: "Crane", Type: "crane", Status: "decommissioned"},
	)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/example/plantops/internal/core/checklist"
	"github.com/example/plantops/internal/core/inspection"
	"github.com/example/plantops/internal/core/progress"
	"github.com/example/plantops/internal/core/remark"
	"github.com/example/plantops/internal/ctxutil"
	"github.com/example/plantops/internal/ports/primary"
	"github.com/example/plantops/internal/ports/secondary"
)

// inspectionCompleted is the completion status stored on every record.
const inspectionCompleted = "completed"

// InspectionServiceImpl implements the InspectionService interface.
type InspectionServiceImpl struct {
	checklistRepo  secondary.ChecklistRepository
	equipment      secondary.EquipmentDirectory
	inspectionRepo secondary.InspectionRepository
	cache          secondary.ProgressCache
	defaultSize    int
	window         time.Duration
	board          *dailyBoard
	env            Env
}

// InspectionConfig holds the inspection policy knobs.
type InspectionConfig struct {
	// DefaultChecklistSize is how many catalog items an equipment without a
	// template gets. Non-positive uses checklist.DefaultChecklistSize.
	DefaultChecklistSize int

	// ProgressWindow is how long saved progress may be resumed.
	// Non-positive uses progress.ValidityWindow.
	ProgressWindow time.Duration
}

// NewInspectionService creates a new InspectionService with injected dependencies.
func NewInspectionService(
	checklistRepo secondary.ChecklistRepository,
	equipment secondary.EquipmentDirectory,
	inspectionRepo secondary.InspectionRepository,
	cache secondary.ProgressCache,
	cfg InspectionConfig,
	env Env,
) *InspectionServiceImpl {
	env = env.withDefaults()
	if cfg.DefaultChecklistSize <= 0 {
		cfg.DefaultChecklistSize = checklist.DefaultChecklistSize
	}
	if cfg.ProgressWindow <= 0 {
		cfg.ProgressWindow = progress.ValidityWindow
	}
	return &InspectionServiceImpl{
		checklistRepo:  checklistRepo,
		equipment:      equipment,
		inspectionRepo: inspectionRepo,
		cache:          cache,
		defaultSize:    cfg.DefaultChecklistSize,
		window:         cfg.ProgressWindow,
		board: &dailyBoard{
			equipment:   equipment,
			inspections: inspectionRepo,
			cache:       cache,
			window:      cfg.ProgressWindow,
			env:         env,
		},
		env: env,
	}
}

// ResolveItems merges the equipment's template with resumable progress.
func (s *InspectionServiceImpl) ResolveItems(ctx context.Context, req primary.ResolveItemsRequest) (*primary.ResolvedItems, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}
	day := s.env.day(req.Day)

	var lines []string
	template, err := s.checklistRepo.GetByEquipment(ctx, req.EquipmentID)
	switch {
	case errors.Is(err, secondary.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	default:
		lines = template.Items
	}

	var entry *progress.Entry
	if req.PreferCachedProgress {
		entry = s.loadProgress(ctx, req.EquipmentID, day)
	}

	var cached []checklist.Item
	if entry != nil {
		cached = entry.Items
	}

	resolved := &primary.ResolvedItems{
		EquipmentID:  req.EquipmentID,
		Day:          progress.DayKey(day),
		Items:        checklist.Resolve(req.EquipmentID, lines, s.defaultSize, cached),
		FromTemplate: len(checklist.ParseTemplate(lines)) > 0,
		Resumed:      entry != nil,
	}
	if entry != nil {
		resolved.SavedAt = entry.SavedAt
	}
	return resolved, nil
}

// loadProgress returns a resumable entry, discarding an expired one.
// Cache failures are logged and treated as a miss.
func (s *InspectionServiceImpl) loadProgress(ctx context.Context, equipmentID string, day time.Time) *progress.Entry {
	key := progress.DayKey(day)
	entry, err := s.cache.Get(ctx, equipmentID, key)
	if err != nil {
		s.env.Logger.Warn(ctx, "progress cache read failed", "equipment_id", equipmentID, "day", key, "error", err)
		return nil
	}
	if entry == nil {
		return nil
	}
	if !entry.IsValid(s.env.Now(), s.window) {
		s.env.Logger.Info(ctx, "saved progress expired", "equipment_id", equipmentID, "day", key, "saved_at", entry.SavedAt)
		if err := s.cache.Delete(ctx, equipmentID, key); err != nil {
			s.env.Logger.Warn(ctx, "failed to drop expired progress", "equipment_id", equipmentID, "error", err)
		}
		return nil
	}
	return entry
}

// SaveProgress overwrites today's saved answers.
func (s *InspectionServiceImpl) SaveProgress(ctx context.Context, req primary.SaveProgressRequest) (*primary.ProgressSnapshot, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}

	entry := progress.NewEntry(req.EquipmentID, s.env.day(time.Time{}), req.Items, s.env.Now())
	if err := s.cache.Set(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	s.env.publish(ctx, secondary.TopicInspection, secondary.ActionSaved, "", req.EquipmentID, nil)
	return &primary.ProgressSnapshot{
		EquipmentID: entry.EquipmentID,
		Day:         entry.Day,
		ItemCount:   len(entry.Items),
		SavedAt:     entry.SavedAt,
		ExpiresAt:   entry.ExpiresAt(s.window),
	}, nil
}

// DiscardProgress drops today's saved answers.
func (s *InspectionServiceImpl) DiscardProgress(ctx context.Context, equipmentID string) error {
	if equipmentID == "" {
		return fmt.Errorf("%w: equipment id is required", primary.ErrInvalidRequest)
	}
	if err := s.cache.Delete(ctx, equipmentID, progress.DayKey(s.env.day(time.Time{}))); err != nil {
		return fmt.Errorf("failed to discard progress: %w", err)
	}
	s.env.publish(ctx, secondary.TopicInspection, secondary.ActionDiscarded, "", equipmentID, nil)
	return nil
}

// CompleteInspection persists a finished session with the remarks it raises,
// then clears today's saved progress.
func (s *InspectionServiceImpl) CompleteInspection(ctx context.Context, req primary.CompleteInspectionRequest) (*primary.CompleteInspectionResponse, error) {
	if err := primary.Validate(req); err != nil {
		return nil, err
	}

	inspector := req.Inspector
	if inspector == "" {
		inspector = ctxutil.ActorFromContext(ctx)
	}

	eq, err := lookupEquipment(ctx, s.equipment, req.EquipmentID)
	if err != nil {
		return nil, err
	}

	guardCtx := inspection.CompleteContext{
		EquipmentID:     req.EquipmentID,
		EquipmentExists: eq != nil,
		Inspector:       inspector,
		Items:           req.Items,
	}
	if result := inspection.CanComplete(guardCtx); !result.Allowed {
		return nil, primary.NotAllowed(result.Error())
	}

	now := s.env.Now()
	today := s.env.day(now)
	counts := inspection.CountItems(req.Items)
	operational := inspection.DeriveOperational(counts)

	record := &secondary.InspectionRecord{
		ID:            uuid.NewString(),
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		Date:          today,
		CheckResults:  fromCheckStatuses(inspection.CheckResults(req.Items)),
		Comments:      inspection.BuildComments(req.Items, req.GeneralNotes),
		Inspector:     inspector,
		Status:        inspectionCompleted,
		CreatedAt:     now,
	}

	drafts := inspection.PlanRemarks(eq.Name, req.Items, req.GeneralNotes)
	remarks := make([]*secondary.RemarkRecord, len(drafts))
	for i, d := range drafts {
		remarks[i] = &secondary.RemarkRecord{
			ID:            uuid.NewString(),
			Title:         d.Title,
			Description:   d.Description,
			EquipmentID:   eq.ID,
			EquipmentName: eq.Name,
			Source:        string(remark.SourceInspection),
			SourceID:      record.ID,
			ItemID:        d.ItemID,
			Priority:      string(d.Priority),
			Status:        string(remark.StatusOpen),
			Reporter:      inspector,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	replacedID, err := s.inspectionRepo.Complete(ctx, record, remarks)
	if err != nil {
		s.env.Logger.Error(ctx, "failed to record inspection", "equipment_id", eq.ID, "error", err)
		return nil, fmt.Errorf("failed to record inspection: %w", err)
	}

	if err := s.cache.Delete(ctx, eq.ID, progress.DayKey(today)); err != nil {
		s.env.Logger.Warn(ctx, "failed to clear saved progress", "equipment_id", eq.ID, "error", err)
	}

	s.env.Logger.Info(ctx, "inspection completed",
		"inspection_id", record.ID,
		"equipment_id", eq.ID,
		"critical", counts.Critical,
		"attention", counts.Attention,
		"operational", string(operational),
		"remarks", len(remarks),
	)
	if replacedID != "" {
		s.env.Logger.Info(ctx, "same-day inspection replaced", "equipment_id", eq.ID, "replaced_id", replacedID)
		s.env.publish(ctx, secondary.TopicInspection, secondary.ActionReplaced, replacedID, eq.ID, nil)
	}
	s.env.publish(ctx, secondary.TopicInspection, secondary.ActionCompleted, record.ID, eq.ID, map[string]string{
		"issues":  strconv.Itoa(counts.TotalIssues()),
		"remarks": strconv.Itoa(len(remarks)),
		"status":  string(operational),
	})

	raised := make([]*primary.Remark, len(remarks))
	for i, r := range remarks {
		raised[i] = recordToRemark(r)
	}

	return &primary.CompleteInspectionResponse{
		Record: recordToInspection(record),
		Status: &primary.EquipmentInspectionStatus{
			EquipmentID:   eq.ID,
			EquipmentName: eq.Name,
			Session:       inspection.SessionCompleted,
			Inspector:     inspector,
			InspectedAt:   now,
			IssueCount:    counts.TotalIssues(),
			Operational:   operational,
			Notes:         req.GeneralNotes,
		},
		Remarks:    raised,
		ReplacedID: replacedID,
	}, nil
}

// DailyStatus derives every equipment's inspection status for day.
func (s *InspectionServiceImpl) DailyStatus(ctx context.Context, day time.Time) ([]*primary.EquipmentInspectionStatus, error) {
	rows, err := s.board.rows(ctx, s.env.day(day))
	if err != nil {
		return nil, err
	}

	statuses := make([]*primary.EquipmentInspectionStatus, len(rows))
	for i, row := range rows {
		st := &primary.EquipmentInspectionStatus{
			EquipmentID:   row.equipment.ID,
			EquipmentName: row.equipment.Name,
			Session:       row.state.Session,
			IssueCount:    row.state.IssueCount,
			Operational:   row.state.Operational,
		}
		if row.record != nil {
			st.Inspector = row.record.Inspector
			st.InspectedAt = row.record.CreatedAt
			st.Notes = inspection.GeneralNotes(row.record.Comments)
		}
		statuses[i] = st
	}
	return statuses, nil
}

// ListInspections lists recorded inspections, newest first.
func (s *InspectionServiceImpl) ListInspections(ctx context.Context, filters primary.InspectionFilters) ([]*primary.Inspection, error) {
	if err := primary.Validate(filters); err != nil {
		return nil, err
	}

	query := secondary.InspectionFilters{EquipmentID: filters.EquipmentID, Limit: filters.Limit}
	if !filters.From.IsZero() {
		query.From = s.env.day(filters.From)
	}
	if !filters.To.IsZero() {
		query.To = s.env.day(filters.To)
	}

	records, err := s.inspectionRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	out := make([]*primary.Inspection, len(records))
	for i, r := range records {
		out[i] = recordToInspection(r)
	}
	return out, nil
}

// GetInspection retrieves a recorded inspection.
func (s *InspectionServiceImpl) GetInspection(ctx context.Context, id string) (*primary.Inspection, error) {
	record, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToInspection(record), nil
}

// DeleteInspection removes a recorded inspection. Remarks it raised are kept.
func (s *InspectionServiceImpl) DeleteInspection(ctx context.Context, id string) error {
	record, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.inspectionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.env.publish(ctx, secondary.TopicInspection, secondary.ActionDeleted, id, record.EquipmentID, nil)
	return nil
}

func recordToInspection(r *secondary.InspectionRecord) *primary.Inspection {
	results := toCheckStatuses(r.CheckResults)
	counts := inspection.CountStatuses(results)
	return &primary.Inspection{
		ID:            r.ID,
		EquipmentID:   r.EquipmentID,
		EquipmentName: r.EquipmentName,
		Date:          formatDay(r.Date),
		CheckResults:  results,
		Comments:      r.Comments,
		Inspector:     r.Inspector,
		Status:        r.Status,
		Operational:   inspection.DeriveOperational(counts),
		IssueCount:    counts.TotalIssues(),
		CreatedAt:     r.CreatedAt,
	}
}

var _ primary.InspectionService = (*InspectionServiceImpl)(nil)

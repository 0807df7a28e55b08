package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	basestore "github.com/syduc993/hr-management-system-sub000/basestore/v1"
	"github.com/syduc993/hr-management-system-sub000/cache"
	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
	"github.com/syduc993/hr-management-system-sub000/utils"
)

// WorkHistoryInput is the caller-facing shape for creating or updating an
// assignment.
type WorkHistoryInput struct {
	EmployeeID string   `json:"employeeId" validate:"required"`
	RequestNo  string   `json:"requestNo" validate:"required"`
	FromDate   string   `json:"fromDate" validate:"required"`
	ToDate     string   `json:"toDate" validate:"required"`
	HourlyRate *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
}

// WorkHistoryService is the assignment ledger: which employee worked under
// which staffing request, over which dates, at which rate. Every write
// validates against the parent request window and the employee's other
// assignments before touching the store, then sweeps the hours caches.
//
// The validate-then-write sequence is serialized with a per-process mutex.
// The record store has no locking of its own, so this only closes the
// overlap race for a single instance; concurrent instances can still both
// pass the check against stale listings.
type WorkHistoryService struct {
	store    RecordStore
	cache    *cache.Cache
	tn       *timekit.Normalizer
	logger   *slog.Logger
	validate *validator.Validate
	cacheTTL time.Duration

	mu sync.Mutex
}

func NewWorkHistoryService(store RecordStore, c *cache.Cache, tn *timekit.Normalizer, logger *slog.Logger, cacheTTL time.Duration) *WorkHistoryService {
	return &WorkHistoryService{
		store:    store,
		cache:    c,
		tn:       tn,
		logger:   logger,
		validate: validator.New(),
		cacheTTL: cacheTTL,
	}
}

// Add validates and records a new assignment. Validation order: field
// shape, date parsing and ordering, parent request existence and window,
// then cross-assignment overlap. Only after all of it passes is the store
// written.
func (s *WorkHistoryService) Add(ctx context.Context, input WorkHistoryInput) (model.WorkHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.validateInput(ctx, input, "")
	if err != nil {
		return model.WorkHistoryEntry{}, err
	}

	fields := map[string]any{
		"employeeId": entry.EmployeeID,
		"requestNo":  entry.RequestNo,
		"fromDate":   s.tn.DateString(entry.FromDate),
		"toDate":     s.tn.DateString(entry.ToDate),
	}
	if entry.HourlyRate != nil {
		fields["hourlyRate"] = *entry.HourlyRate
	}

	rec, err := s.store.Insert(ctx, model.TableWorkHistory, fields)
	if err != nil {
		return model.WorkHistoryEntry{}, NewStoreError("insert work history", err)
	}
	entry.ID = rec.ID

	s.cache.InvalidateHoursRelated()
	return entry, nil
}

// Update re-runs the full validation (excluding the entry itself from the
// overlap check) and patches the record.
func (s *WorkHistoryService) Update(ctx context.Context, id string, input WorkHistoryInput) (model.WorkHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.validateInput(ctx, input, id)
	if err != nil {
		return model.WorkHistoryEntry{}, err
	}

	fields := map[string]any{
		"employeeId": entry.EmployeeID,
		"requestNo":  entry.RequestNo,
		"fromDate":   s.tn.DateString(entry.FromDate),
		"toDate":     s.tn.DateString(entry.ToDate),
	}
	if entry.HourlyRate != nil {
		fields["hourlyRate"] = *entry.HourlyRate
	}

	rec, err := s.store.UpdateByID(ctx, model.TableWorkHistory, id, fields)
	if err != nil {
		if basestore.IsNotFound(err) {
			return model.WorkHistoryEntry{}, NewNotFoundError("work history entry %s does not exist", id)
		}
		return model.WorkHistoryEntry{}, NewStoreError("update work history", err)
	}
	entry.ID = rec.ID

	s.cache.InvalidateHoursRelated()
	return entry, nil
}

// Delete removes an assignment. No date validation applies; the caches are
// still swept.
func (s *WorkHistoryService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteByID(ctx, model.TableWorkHistory, id); err != nil {
		if basestore.IsNotFound(err) {
			return NewNotFoundError("work history entry %s does not exist", id)
		}
		return NewStoreError("delete work history", err)
	}

	s.cache.InvalidateHoursRelated()
	return nil
}

// GetByEmployee returns the employee's assignments.
func (s *WorkHistoryService) GetByEmployee(ctx context.Context, employeeID string) ([]model.WorkHistoryEntry, error) {
	entries, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.Filter(entries, func(e model.WorkHistoryEntry) bool {
		return e.EmployeeID == employeeID
	}), nil
}

// CheckExists is the duplicate guard used before creating an assignment
// elsewhere in the system.
func (s *WorkHistoryService) CheckExists(ctx context.Context, employeeID, requestNo string) (bool, error) {
	entries, err := s.fetchAll(ctx)
	if err != nil {
		return false, err
	}
	match := utils.Find(entries, func(e model.WorkHistoryEntry) bool {
		return e.EmployeeID == employeeID && e.RequestNo == requestNo
	})
	return match != nil, nil
}

// validateInput runs every check the ledger guarantees. excludeID carves
// the entry being updated out of the overlap scan.
func (s *WorkHistoryService) validateInput(ctx context.Context, input WorkHistoryInput, excludeID string) (model.WorkHistoryEntry, error) {
	var zero model.WorkHistoryEntry

	if err := s.validate.Struct(input); err != nil {
		return zero, NewValidationError("invalid work history input: %v", err)
	}

	fromDate, err := s.tn.ParseDate(input.FromDate)
	if err != nil {
		return zero, NewValidationError("fromDate %q is not a valid YYYY-MM-DD date", input.FromDate)
	}
	toDate, err := s.tn.ParseDate(input.ToDate)
	if err != nil {
		return zero, NewValidationError("toDate %q is not a valid YYYY-MM-DD date", input.ToDate)
	}
	if toDate.Before(fromDate) {
		return zero, NewValidationError("toDate %s is before fromDate %s", input.ToDate, input.FromDate)
	}

	requests, err := s.fetchRequests(ctx)
	if err != nil {
		return zero, err
	}
	requestByNo := make(map[string]model.StaffingRequest, len(requests))
	for _, req := range requests {
		requestByNo[req.RequestNo] = req
	}

	parent, ok := requestByNo[input.RequestNo]
	if !ok {
		return zero, NewNotFoundError("staffing request %s does not exist", input.RequestNo)
	}

	if s.tn.IsBefore(fromDate, parent.FromDate) || s.tn.IsAfter(toDate, parent.ToDate) {
		return zero, NewValidationError(
			"assignment window %s..%s is outside request %s window %s..%s",
			input.FromDate, input.ToDate, parent.RequestNo,
			s.tn.DateString(parent.FromDate), s.tn.DateString(parent.ToDate))
	}

	entries, err := s.fetchAll(ctx)
	if err != nil {
		return zero, err
	}

	for _, other := range entries {
		if other.EmployeeID != input.EmployeeID || other.ID == excludeID {
			continue
		}
		// The window an existing assignment occupies is its own request's
		// window, not its attendance data.
		otherReq, ok := requestByNo[other.RequestNo]
		if !ok {
			s.logger.Warn("work history entry references missing request, skipping in overlap check",
				"entry", other.ID, "requestNo", other.RequestNo)
			continue
		}
		if rangesOverlap(s.tn, fromDate, toDate, otherReq.FromDate, otherReq.ToDate) {
			return zero, NewConflictError(
				"employee %s already assigned to request %s over %s..%s, colliding with %s..%s",
				input.EmployeeID, other.RequestNo,
				s.tn.DateString(otherReq.FromDate), s.tn.DateString(otherReq.ToDate),
				input.FromDate, input.ToDate)
		}
	}

	return model.WorkHistoryEntry{
		EmployeeID: input.EmployeeID,
		RequestNo:  input.RequestNo,
		FromDate:   fromDate,
		ToDate:     toDate,
		HourlyRate: input.HourlyRate,
	}, nil
}

// rangesOverlap treats both ranges as inclusive at day granularity.
func rangesOverlap(tn *timekit.Normalizer, fromA, toA, fromB, toB time.Time) bool {
	return !tn.IsAfter(fromA, toB) && !tn.IsAfter(fromB, toA)
}

func (s *WorkHistoryService) fetchAll(ctx context.Context) ([]model.WorkHistoryEntry, error) {
	if cached, ok := cache.GetAs[[]model.WorkHistoryEntry](s.cache, cache.KeyWorkHistoryAll); ok {
		return cached, nil
	}

	records, err := s.store.ListAll(ctx, model.TableWorkHistory, nil)
	if err != nil {
		return nil, NewStoreError("list work history", err)
	}

	entries := make([]model.WorkHistoryEntry, 0, len(records))
	for _, rec := range records {
		entry, err := decodeWorkHistoryEntry(rec, s.tn)
		if err != nil {
			s.logger.Warn("skipping malformed work history record", "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	s.cache.Set(cache.KeyWorkHistoryAll, entries, s.cacheTTL)
	return entries, nil
}

func (s *WorkHistoryService) fetchRequests(ctx context.Context) ([]model.StaffingRequest, error) {
	records, err := s.store.ListAll(ctx, model.TableRecruitmentRequests, nil)
	if err != nil {
		return nil, NewStoreError("list staffing requests", err)
	}

	requests := make([]model.StaffingRequest, 0, len(records))
	for _, rec := range records {
		req, err := decodeStaffingRequest(rec, s.tn)
		if err != nil {
			s.logger.Warn("skipping malformed staffing request record", "error", err)
			continue
		}
		requests = append(requests, req)
	}
	return requests, nil
}

package core

import (
	"context"
	"log/slog"
	"time"

	basestore "github.com/syduc993/hr-management-system-sub000/basestore/v1"
	"github.com/syduc993/hr-management-system-sub000/cache"
	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
	"github.com/syduc993/hr-management-system-sub000/utils"
)

// AttendanceService reads raw punches from the record store and derives
// per-day worked hours. Read paths degrade to empty results on store
// failure so dependent summaries show zero instead of erroring.
type AttendanceService struct {
	store    RecordStore
	cache    *cache.Cache
	tn       *timekit.Normalizer
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewAttendanceService(store RecordStore, c *cache.Cache, tn *timekit.Normalizer, logger *slog.Logger, cacheTTL time.Duration) *AttendanceService {
	return &AttendanceService{
		store:    store,
		cache:    c,
		tn:       tn,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// AttendanceFilters narrow GetAttendanceLogs output. Applied client-side:
// the store's own filtering is best-effort only.
type AttendanceFilters struct {
	EmployeeID string
	Position   string
	Date       string // YYYY-MM-DD
}

// GetAttendanceLogs returns the decoded attendance events, full list cached
// for the configured TTL. A store failure yields an empty slice, not an
// error.
func (s *AttendanceService) GetAttendanceLogs(ctx context.Context, filters AttendanceFilters) []model.AttendanceEvent {
	events := s.fetchAll(ctx)

	if filters.EmployeeID != "" {
		events = utils.Filter(events, func(ev model.AttendanceEvent) bool {
			return ev.EmployeeID == filters.EmployeeID
		})
	}
	if filters.Position != "" {
		events = utils.Filter(events, func(ev model.AttendanceEvent) bool {
			return ev.Position == filters.Position
		})
	}
	if filters.Date != "" {
		events = utils.Filter(events, func(ev model.AttendanceEvent) bool {
			return s.tn.DateString(ev.Timestamp) == filters.Date
		})
	}
	return events
}

// GetEmployeeHours returns per-day hours for every employee that has at
// least one punch, keyed by employee id.
func (s *AttendanceService) GetEmployeeHours(ctx context.Context) map[string][]model.DailyHoursResult {
	if cached, ok := cache.GetAs[map[string][]model.DailyHoursResult](s.cache, cache.KeyEmployeeHours); ok {
		return cached
	}

	results := ComputeAllEmployeeHours(s.tn, s.logger, s.fetchAll(ctx))
	s.cache.Set(cache.KeyEmployeeHours, results, s.cacheTTL)
	return results
}

// AddEvent records a new punch. Unlike reads, a store failure here
// propagates: a swallowed write would silently lose attendance data.
func (s *AttendanceService) AddEvent(ctx context.Context, ev model.AttendanceEvent) (model.AttendanceEvent, error) {
	if ev.EmployeeID == "" {
		return model.AttendanceEvent{}, NewValidationError("employeeId is required")
	}
	if ev.Type != model.EventCheckin && ev.Type != model.EventCheckout {
		return model.AttendanceEvent{}, NewValidationError("type must be checkin or checkout, got %q", ev.Type)
	}

	ts := s.tn.ToCivilTime(ev.Timestamp)
	fields := map[string]any{
		"employeeId": ev.EmployeeID,
		"type":       string(ev.Type),
		"position":   ev.Position,
		"timestamp":  ts.Format(time.RFC3339),
		"notes":      ev.Notes,
	}

	rec, err := s.store.Insert(ctx, model.TableAttendanceLogs, fields)
	if err != nil {
		return model.AttendanceEvent{}, NewStoreError("insert attendance event", err)
	}

	s.cache.InvalidateHoursRelated()

	ev.ID = rec.ID
	ev.Timestamp = ts
	return ev, nil
}

func (s *AttendanceService) fetchAll(ctx context.Context) []model.AttendanceEvent {
	if cached, ok := cache.GetAs[[]model.AttendanceEvent](s.cache, cache.KeyAttendanceLogs); ok {
		return cached
	}

	records, err := s.store.ListAll(ctx, model.TableAttendanceLogs, nil)
	if err != nil {
		s.logger.Error("attendance fetch failed, degrading to empty log list", "error", err)
		return []model.AttendanceEvent{}
	}

	events := make([]model.AttendanceEvent, 0, len(records))
	for _, rec := range records {
		ev, err := decodeAttendanceEvent(rec, s.tn)
		if err != nil {
			s.logger.Warn("skipping malformed attendance record", "error", err)
			continue
		}
		events = append(events, ev)
	}

	s.cache.Set(cache.KeyAttendanceLogs, events, s.cacheTTL)
	return events
}

var _ RecordStore = (*basestore.TableEndpoint)(nil)

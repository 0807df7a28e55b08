package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/syduc993/hr-management-system-sub000/cache"
	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
)

// RecruitmentService produces the per-staffing-request hours rollup that
// billing and compliance reporting consume. Purely derived data: every
// source table is read-only here and any store failure degrades that source
// to empty, so a broken table shows up as zeros rather than a 500.
type RecruitmentService struct {
	store    RecordStore
	cache    *cache.Cache
	tn       *timekit.Normalizer
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewRecruitmentService(store RecordStore, c *cache.Cache, tn *timekit.Normalizer, logger *slog.Logger, cacheTTL time.Duration) *RecruitmentService {
	return &RecruitmentService{
		store:    store,
		cache:    c,
		tn:       tn,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// Summarize builds one summary per staffing request that has at least one
// assigned employee, preserving the store's request order. Requests with no
// assignments are omitted entirely. Per-employee totals come from the
// precomputed hours rollup table; rows for the same employee accumulate.
func (s *RecruitmentService) Summarize(ctx context.Context) []model.RequestHoursSummary {
	if cached, ok := cache.GetAs[[]model.RequestHoursSummary](s.cache, cache.KeyRecruitmentSummary); ok {
		return cached
	}

	requests := s.listRequests(ctx)
	entries := s.listWorkHistory(ctx)
	employees := s.listEmployees(ctx)
	hoursByEmployee := s.sumHoursRows(ctx)

	employeeByID := make(map[string]model.Employee, len(employees))
	for _, emp := range employees {
		employeeByID[emp.EmployeeID] = emp
	}

	entriesByRequest := make(map[string][]model.WorkHistoryEntry)
	for _, entry := range entries {
		entriesByRequest[entry.RequestNo] = append(entriesByRequest[entry.RequestNo], entry)
	}

	summaries := make([]model.RequestHoursSummary, 0, len(requests))
	for _, req := range requests {
		assigned := entriesByRequest[req.RequestNo]
		if len(assigned) == 0 {
			continue
		}

		var lines []model.EmployeeHours
		var total float64
		for _, entry := range assigned {
			emp, ok := employeeByID[entry.EmployeeID]
			if !ok {
				s.logger.Warn("work history entry references unknown employee, skipping",
					"employeeId", entry.EmployeeID, "requestNo", req.RequestNo)
				continue
			}
			hours := hoursByEmployee[entry.EmployeeID]
			lines = append(lines, model.EmployeeHours{
				EmployeeID: emp.EmployeeID,
				FullName:   emp.FullName,
				TotalHours: hours,
			})
			total += hours
		}
		if len(lines) == 0 {
			continue
		}

		summaries = append(summaries, model.RequestHoursSummary{
			RequestNo:         req.RequestNo,
			Department:        req.Department,
			Status:            req.Status,
			FromDate:          req.FromDate,
			ToDate:            req.ToDate,
			TotalEmployees:    len(lines),
			TotalHours:        FormatDuration(total),
			TotalHoursNumeric: total,
			Employees:         lines,
		})
	}

	s.cache.Set(cache.KeyRecruitmentSummary, summaries, s.cacheTTL)
	return summaries
}

func (s *RecruitmentService) listRequests(ctx context.Context) []model.StaffingRequest {
	records, err := s.store.ListAll(ctx, model.TableRecruitmentRequests, nil)
	if err != nil {
		s.logger.Error("staffing request fetch failed, degrading to empty", "error", err)
		return nil
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
	return requests
}

func (s *RecruitmentService) listWorkHistory(ctx context.Context) []model.WorkHistoryEntry {
	records, err := s.store.ListAll(ctx, model.TableWorkHistory, nil)
	if err != nil {
		s.logger.Error("work history fetch failed, degrading to empty", "error", err)
		return nil
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
	return entries
}

func (s *RecruitmentService) listEmployees(ctx context.Context) []model.Employee {
	if cached, ok := cache.GetAs[[]model.Employee](s.cache, cache.KeyEmployeesAll); ok {
		return cached
	}
	records, err := s.store.ListAll(ctx, model.TableEmployees, nil)
	if err != nil {
		s.logger.Error("employee fetch failed, degrading to empty", "error", err)
		return nil
	}
	employees := make([]model.Employee, 0, len(records))
	for _, rec := range records {
		emp, err := decodeEmployee(rec)
		if err != nil {
			s.logger.Warn("skipping malformed employee record", "error", err)
			continue
		}
		employees = append(employees, emp)
	}
	s.cache.Set(cache.KeyEmployeesAll, employees, s.cacheTTL)
	return employees
}

// sumHoursRows folds the rollup table into employeeId -> total hours.
// Duplicate rows for one employee add up; the table is append-oriented and
// rows are never assumed unique.
func (s *RecruitmentService) sumHoursRows(ctx context.Context) map[string]float64 {
	totals := make(map[string]float64)
	records, err := s.store.ListAll(ctx, model.TableEmployeeHoursSummary, nil)
	if err != nil {
		s.logger.Error("hours summary fetch failed, degrading to empty", "error", err)
		return totals
	}
	for _, rec := range records {
		row, err := decodeEmployeeHoursRow(rec)
		if err != nil {
			s.logger.Warn("skipping malformed hours summary record", "error", err)
			continue
		}
		totals[row.EmployeeID] += row.TotalHours
	}
	return totals
}

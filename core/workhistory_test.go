package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syduc993/hr-management-system-sub000/cache"
	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
	"github.com/syduc993/hr-management-system-sub000/utils"
)

func newWorkHistoryService(store *fakeStore) (*WorkHistoryService, *cache.Cache) {
	c := cache.New()
	tn := timekit.NewNormalizer(nil)
	return NewWorkHistoryService(store, c, tn, discardLogger(), time.Minute), c
}

func seedRequest(store *fakeStore, requestNo, from, to string) {
	store.seed(model.TableRecruitmentRequests, map[string]any{
		"requestNo":  requestNo,
		"department": "Sự kiện",
		"status":     "active",
		"quantity":   float64(2),
		"fromDate":   from,
		"toDate":     to,
		"position":   "PG",
	})
}

func TestWorkHistoryAdd(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	svc, _ := newWorkHistoryService(store)

	entry, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
		HourlyRate: utils.Ptr(35000.0),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "REQ-001", entry.RequestNo)
	require.NotNil(t, entry.HourlyRate)
	assert.Equal(t, 35000.0, *entry.HourlyRate)

	entries, err := svc.GetByEmployee(context.Background(), "NV001")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-01-05", timekit.NewNormalizer(nil).DateString(entries[0].FromDate))
}

func TestWorkHistoryAddRejectsMissingFields(t *testing.T) {
	store := newFakeStore()
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Add(context.Background(), WorkHistoryInput{EmployeeID: "NV001"})
	assert.True(t, IsCode(err, CodeValidation))
}

func TestWorkHistoryAddRejectsNegativeRate(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
		HourlyRate: utils.Ptr(-1.0),
	})
	assert.True(t, IsCode(err, CodeValidation))
}

func TestWorkHistoryAddRejectsReversedDates(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-10",
		ToDate:     "2025-01-05",
	})
	assert.True(t, IsCode(err, CodeValidation))
}

func TestWorkHistoryAddUnknownRequest(t *testing.T) {
	store := newFakeStore()
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-404",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
	})
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestWorkHistoryAddOutsideRequestWindow(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-10")
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-15",
	})
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeValidation))
	assert.Contains(t, err.Error(), "REQ-001")
}

func TestWorkHistoryAddOverlapConflict(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-10")
	seedRequest(store, "REQ-002", "2025-01-05", "2025-01-15")
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-01",
		ToDate:     "2025-01-10",
	})
	require.NoError(t, err)

	// The second assignment collides because the first one occupies its
	// request's whole window.
	_, err = svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-002",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-15",
	})
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeConflict))
	assert.Contains(t, err.Error(), "REQ-001")
	assert.Contains(t, err.Error(), "2025-01-01..2025-01-10")
}

func TestWorkHistoryAddDifferentEmployeesNoConflict(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-10")
	seedRequest(store, "REQ-002", "2025-01-05", "2025-01-15")
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-01",
		ToDate:     "2025-01-10",
	})
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV002",
		RequestNo:  "REQ-002",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-15",
	})
	assert.NoError(t, err)
}

func TestWorkHistoryUpdateExcludesSelfFromOverlap(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	svc, _ := newWorkHistoryService(store)

	entry, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
	})
	require.NoError(t, err)

	// Shifting the same entry inside the same request window must not
	// conflict with itself.
	updated, err := svc.Update(context.Background(), entry.ID, WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-06",
		ToDate:     "2025-01-12",
	})
	require.NoError(t, err)
	assert.Equal(t, entry.ID, updated.ID)
}

func TestWorkHistoryUpdateMissingEntry(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Update(context.Background(), "rec999", WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
	})
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestWorkHistoryDelete(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	svc, c := newWorkHistoryService(store)

	entry, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
	})
	require.NoError(t, err)

	c.Set(cache.KeyRecruitmentSummary, []model.RequestHoursSummary{}, time.Minute)
	require.NoError(t, svc.Delete(context.Background(), entry.ID))

	_, ok := cache.GetAs[[]model.RequestHoursSummary](c, cache.KeyRecruitmentSummary)
	assert.False(t, ok, "delete must sweep the derived caches")

	entries, err := svc.GetByEmployee(context.Background(), "NV001")
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.True(t, IsCode(svc.Delete(context.Background(), entry.ID), CodeNotFound))
}

func TestWorkHistoryWriteInvalidatesCaches(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	svc, c := newWorkHistoryService(store)

	c.Set(cache.KeyEmployeeHours, map[string][]model.DailyHoursResult{}, time.Minute)
	c.Set(cache.KeyWorkHistoryAll, []model.WorkHistoryEntry{}, time.Minute)

	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
	})
	require.NoError(t, err)

	_, ok := cache.GetAs[map[string][]model.DailyHoursResult](c, cache.KeyEmployeeHours)
	assert.False(t, ok)
	_, ok = cache.GetAs[[]model.WorkHistoryEntry](c, cache.KeyWorkHistoryAll)
	assert.False(t, ok)
}

func TestWorkHistoryCheckExists(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	svc, _ := newWorkHistoryService(store)

	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
	})
	require.NoError(t, err)

	exists, err := svc.CheckExists(context.Background(), "NV001", "REQ-001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.CheckExists(context.Background(), "NV001", "REQ-002")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWorkHistorySkipsOrphanedEntriesInOverlapCheck(t *testing.T) {
	store := newFakeStore()
	seedRequest(store, "REQ-001", "2025-01-01", "2025-01-31")
	store.seed(model.TableWorkHistory, map[string]any{
		"employeeId": "NV001",
		"requestNo":  "REQ-GONE",
		"fromDate":   "2025-01-01",
		"toDate":     "2025-01-31",
	})
	svc, _ := newWorkHistoryService(store)

	// The orphan spans the whole month but its request no longer exists,
	// so it cannot block new assignments.
	_, err := svc.Add(context.Background(), WorkHistoryInput{
		EmployeeID: "NV001",
		RequestNo:  "REQ-001",
		FromDate:   "2025-01-05",
		ToDate:     "2025-01-10",
	})
	assert.NoError(t, err)
}

func TestWorkHistoryGetByEmployeeFilters(t *testing.T) {
	store := newFakeStore()
	store.seed(model.TableWorkHistory, map[string]any{
		"employeeId": "NV001", "requestNo": "REQ-001",
		"fromDate": "2025-01-01", "toDate": "2025-01-10",
	})
	store.seed(model.TableWorkHistory, map[string]any{
		"employeeId": "NV002", "requestNo": "REQ-002",
		"fromDate": "2025-02-01", "toDate": "2025-02-10",
	})
	svc, _ := newWorkHistoryService(store)

	entries, err := svc.GetByEmployee(context.Background(), "NV002")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "REQ-002", entries[0].RequestNo)

	all := utils.Map(entries, func(e model.WorkHistoryEntry) string { return e.EmployeeID })
	assert.Equal(t, []string{"NV002"}, all)
}

package timeentry

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ifzc/easy-record-working-api/internal/messaging/kafka"
	timeentryerrors "github.com/ifzc/easy-record-working-api/internal/timeentry/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	entries   []*TimeEntry
	employees map[string]*EmployeeRef
	projects  map[string]*ProjectRef
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		employees: make(map[string]*EmployeeRef),
		projects:  make(map[string]*ProjectRef),
	}
}

func (f *fakeRepo) addEmployee(name string) string {
	id := uuid.New()
	f.employees[id.String()] = &EmployeeRef{ID: id, Name: name, Type: "regular", IsActive: true}
	return id.String()
}

func (f *fakeRepo) addInactiveEmployee(name string) string {
	id := uuid.New()
	f.employees[id.String()] = &EmployeeRef{ID: id, Name: name, Type: "regular", IsActive: false}
	return id.String()
}

func (f *fakeRepo) addProject(name string) string {
	id := uuid.New()
	f.projects[id.String()] = &ProjectRef{ID: id, Name: name}
	return id.String()
}

func (f *fakeRepo) WithTx(_ *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(_ context.Context, e *TimeEntry) error {
	cp := *e
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, e *TimeEntry) error {
	for i := range f.entries {
		if f.entries[i].ID == e.ID {
			cp := *e
			f.entries[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindActiveByID(_ context.Context, tenantID, id string) (*TimeEntry, error) {
	for _, e := range f.entries {
		if e.TenantID.String() == tenantID && e.ID.String() == id && e.State == StateActive {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindByEmployeeAndDate(_ context.Context, tenantID, employeeID string, workDate time.Time, includeDeleted bool) (*TimeEntry, error) {
	for _, e := range f.entries {
		if e.TenantID.String() != tenantID || e.EmployeeID.String() != employeeID || !e.WorkDate.Equal(workDate) {
			continue
		}
		if !includeDeleted && e.State != StateActive {
			continue
		}
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) HasActiveDuplicate(_ context.Context, tenantID, employeeID string, workDate time.Time, excludeID string) (bool, error) {
	for _, e := range f.entries {
		if e.TenantID.String() == tenantID &&
			e.EmployeeID.String() == employeeID &&
			e.WorkDate.Equal(workDate) &&
			e.State == StateActive &&
			e.ID.String() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListByDate(_ context.Context, tenantID string, workDate time.Time, _ ListFilter) ([]TimeEntry, int64, error) {
	var out []TimeEntry
	for _, e := range f.entries {
		if e.TenantID.String() == tenantID && e.WorkDate.Equal(workDate) && e.State == StateActive {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) FindRange(_ context.Context, tenantID string, start, end time.Time, filter RangeFilter) ([]TimeEntry, error) {
	if filter.EmployeeIDs != nil && len(filter.EmployeeIDs) == 0 {
		return nil, nil
	}
	var out []TimeEntry
	for _, e := range f.entries {
		if e.TenantID.String() != tenantID || e.State != StateActive {
			continue
		}
		if e.WorkDate.Before(start) || e.WorkDate.After(end) {
			continue
		}
		if filter.EmployeeID != "" && e.EmployeeID.String() != filter.EmployeeID {
			continue
		}
		cp := *e
		cp.Employee = f.employees[e.EmployeeID.String()]
		if e.ProjectID != nil {
			cp.Project = f.projects[e.ProjectID.String()]
		}
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeRepo) FindEmployee(_ context.Context, tenantID, employeeID string) (*EmployeeRef, error) {
	if emp, ok := f.employees[employeeID]; ok {
		return emp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindActiveProject(_ context.Context, tenantID, projectID string) (*ProjectRef, error) {
	if proj, ok := f.projects[projectID]; ok {
		return proj, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindEmployeeIDsByClass(_ context.Context, _, employeeType, workType string) ([]string, error) {
	var ids []string
	for id, emp := range f.employees {
		if employeeType != "" && emp.Type != employeeType {
			continue
		}
		if workType != "" && (emp.WorkType == nil || *emp.WorkType != workType) {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeRepo) activeCount() int {
	n := 0
	for _, e := range f.entries {
		if e.State == StateActive {
			n++
		}
	}
	return n
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(_ *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(_ context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(_ context.Context, _ int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(_ context.Context, _ string) error   { return nil }
func (f *fakeOutbox) MarkFailed(_ context.Context, _, _ string) error { return nil }

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func ptr[T any](v T) *T { return &v }

func TestCreateEntryDefaults(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeRepo()
	empID := repo.addEmployee("Alice")
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	res, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{
		EmployeeID: empID,
		WorkDate:   "2026-03-02",
		Remark:     ptr("  roof work  "),
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, res.NormalHours)
	assert.Equal(t, 0.0, res.OvertimeHours)
	assert.Equal(t, 8.0, res.TotalHours)
	assert.Equal(t, 1.0, res.WorkUnits)
	assert.Equal(t, "Alice", res.EmployeeName)
	require.NotNil(t, res.Remark)
	assert.Equal(t, "roof work", *res.Remark)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntryInvalidHours(t *testing.T) {
	db, _ := newTxDB(t)
	repo := newFakeRepo()
	empID := repo.addEmployee("Alice")
	svc := NewService(db, repo, nil)

	for _, hours := range []float64{-1, 7.3, 0.25} {
		_, err := svc.Create(context.Background(), uuid.NewString(), CreateTimeEntryRequest{
			EmployeeID:  empID,
			WorkDate:    "2026-03-02",
			NormalHours: ptr(hours),
		})
		assert.ErrorIs(t, err, timeentryerrors.ErrInvalidHours, "hours=%v", hours)
	}
}

func TestCreateEntryEmployeeNotFound(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := NewService(db, newFakeRepo(), nil)

	_, err := svc.Create(context.Background(), uuid.NewString(), CreateTimeEntryRequest{
		EmployeeID: uuid.NewString(),
		WorkDate:   "2026-03-02",
	})
	assert.ErrorIs(t, err, timeentryerrors.ErrEmployeeNotFound)
}

func TestCreateEntryEmployeeInactive(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := newFakeRepo()
	retired := repo.addInactiveEmployee("Retired")
	svc := NewService(db, repo, nil)

	_, err := svc.Create(context.Background(), uuid.NewString(), CreateTimeEntryRequest{
		EmployeeID: retired,
		WorkDate:   "2026-03-02",
	})
	assert.ErrorIs(t, err, timeentryerrors.ErrEmployeeInactive)
}

func TestCreateEntryDuplicate(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := newFakeRepo()
	empID := repo.addEmployee("Alice")
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	req := CreateTimeEntryRequest{EmployeeID: empID, WorkDate: "2026-03-02"}
	_, err := svc.Create(context.Background(), tid, req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), tid, req)
	assert.ErrorIs(t, err, timeentryerrors.ErrDuplicateEntry)
	assert.Equal(t, 1, repo.activeCount())
}

func TestCreateEntryRestoresDeletedRow(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeRepo()
	empID := repo.addEmployee("Alice")
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	created, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{
		EmployeeID:  empID,
		WorkDate:    "2026-03-02",
		NormalHours: ptr(4.0),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), tid, created.ID))
	assert.Equal(t, 0, repo.activeCount())

	restored, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{
		EmployeeID:    empID,
		WorkDate:      "2026-03-02",
		NormalHours:   ptr(8.0),
		OvertimeHours: 2.0,
	})
	require.NoError(t, err)

	// same row comes back, reactivated with the new hours
	assert.Equal(t, created.ID, restored.ID)
	assert.Equal(t, 8.0, restored.NormalHours)
	assert.Equal(t, 2.0, restored.OvertimeHours)
	assert.Equal(t, 1, len(repo.entries))
	assert.Equal(t, 1, repo.activeCount())
}

func TestUpdateEntryCollision(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := newFakeRepo()
	empID := repo.addEmployee("Alice")
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	first, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: empID, WorkDate: "2026-03-02"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: empID, WorkDate: "2026-03-03"})
	require.NoError(t, err)

	// moving the second entry onto the first one's day must conflict
	_, err = svc.Update(context.Background(), tid, first.ID, UpdateTimeEntryRequest{
		EmployeeID:  empID,
		WorkDate:    "2026-03-03",
		NormalHours: 8,
	})
	assert.ErrorIs(t, err, timeentryerrors.ErrDuplicateEntry)
}

func TestBatchCreateOutcomes(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeRepo()
	alice := repo.addEmployee("Alice")
	ghost := uuid.NewString()
	outbox := &fakeOutbox{}
	svc := NewServiceWithOutbox(db, repo, outbox, nil)
	tid := uuid.NewString()

	// pre-existing cell for alice on the first day
	_, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: alice, WorkDate: "2026-03-02"})
	require.NoError(t, err)

	res, err := svc.BatchCreate(context.Background(), tid, BatchCreateTimeEntriesRequest{
		// duplicates in the input collapse to first-seen order
		EmployeeIDs: []string{alice, ghost, alice},
		WorkDates:   []string{"2026-03-02", "2026-03-03", "2026-03-02"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 3, res.Skipped)
	require.Len(t, res.Details, 4)

	assert.Equal(t, BatchCreateDetail{EmployeeID: alice, WorkDate: "2026-03-02", Status: BatchStatusSkipped, Reason: "already exists"}, res.Details[0])
	assert.Equal(t, BatchCreateDetail{EmployeeID: alice, WorkDate: "2026-03-03", Status: BatchStatusCreated}, res.Details[1])
	assert.Equal(t, BatchCreateDetail{EmployeeID: ghost, WorkDate: "2026-03-02", Status: BatchStatusSkipped, Reason: "employee not found"}, res.Details[2])
	assert.Equal(t, BatchCreateDetail{EmployeeID: ghost, WorkDate: "2026-03-03", Status: BatchStatusSkipped, Reason: "employee not found"}, res.Details[3])

	require.Len(t, outbox.created, 1)
	assert.Equal(t, "time_entry_batch_created", outbox.created[0].EventType)
	assert.Equal(t, kafka.OutboxStatusPending, outbox.created[0].Status)
}

func TestBatchCreateSkipsInactiveEmployee(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeRepo()
	alice := repo.addEmployee("Alice")
	retired := repo.addInactiveEmployee("Retired")
	svc := NewService(db, repo, nil)

	res, err := svc.BatchCreate(context.Background(), uuid.NewString(), BatchCreateTimeEntriesRequest{
		EmployeeIDs: []string{alice, retired},
		WorkDates:   []string{"2026-03-02"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Details, 2)
	assert.Equal(t, BatchCreateDetail{EmployeeID: retired, WorkDate: "2026-03-02", Status: BatchStatusSkipped, Reason: "employee not found"}, res.Details[1])
}

func TestBatchCreateEmpty(t *testing.T) {
	db, _ := newTxDB(t)
	svc := NewService(db, newFakeRepo(), nil)

	_, err := svc.BatchCreate(context.Background(), uuid.NewString(), BatchCreateTimeEntriesRequest{
		EmployeeIDs: []string{},
		WorkDates:   []string{"2026-03-02"},
	})
	assert.ErrorIs(t, err, timeentryerrors.ErrEmptyBatch)
}

func TestBatchCreateAllSkippedWritesNoEvent(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeRepo()
	outbox := &fakeOutbox{}
	svc := NewServiceWithOutbox(db, repo, outbox, nil)

	res, err := svc.BatchCreate(context.Background(), uuid.NewString(), BatchCreateTimeEntriesRequest{
		EmployeeIDs: []string{uuid.NewString()},
		WorkDates:   []string{"2026-03-02"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Empty(t, outbox.created)
}

func TestSummaryMonthZeroFill(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeRepo()
	alice := repo.addEmployee("Alice")
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: alice, WorkDate: "2026-02-03", OvertimeHours: 3})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: alice, WorkDate: "2026-02-10", NormalHours: ptr(4.0)})
	require.NoError(t, err)

	res, err := svc.Summary(context.Background(), tid, SummaryQuery{Month: "2026-02"})
	require.NoError(t, err)

	require.Len(t, res, 28)
	assert.Equal(t, "2026-02-01", res[0].Date)
	assert.Equal(t, "2026-02-28", res[27].Date)

	feb3 := res[2]
	assert.Equal(t, 8.0, feb3.NormalHours)
	assert.Equal(t, 3.0, feb3.OvertimeHours)
	assert.Equal(t, 11.0, feb3.TotalHours)
	assert.Equal(t, 1.5, feb3.TotalWorkUnits)
	assert.Equal(t, 1, feb3.Headcount)

	feb10 := res[9]
	assert.Equal(t, 4.0, feb10.NormalHours)
	assert.Equal(t, 0.5, feb10.TotalWorkUnits)

	// every other day is present but zeroed
	assert.Equal(t, DailySummaryResponse{Date: "2026-02-02"}, res[1])
}

func TestSummaryDateWinsOverMonth(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeRepo()
	alice := repo.addEmployee("Alice")
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: alice, WorkDate: "2026-02-03"})
	require.NoError(t, err)

	res, err := svc.Summary(context.Background(), tid, SummaryQuery{Date: "2026-02-03", Month: "2026-01"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "2026-02-03", res[0].Date)
}

func TestSummaryMissingRange(t *testing.T) {
	db, _ := newTxDB(t)
	svc := NewService(db, newFakeRepo(), nil)

	_, err := svc.Summary(context.Background(), uuid.NewString(), SummaryQuery{})
	assert.ErrorIs(t, err, timeentryerrors.ErrMissingRange)
}

func TestSummaryByProjectGroupsAndSorts(t *testing.T) {
	db, mock := newTxDB(t)
	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}

	repo := newFakeRepo()
	alice := repo.addEmployee("Alice")
	bob := repo.addEmployee("Bob")
	carol := repo.addEmployee("Carol")
	site := repo.addProject("Site A")
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	// Site A: alice 8+6 (2.0 units) + carol 8 (1.0); unassigned: bob 8+3 (1.5)
	_, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: alice, WorkDate: "2026-03-02", ProjectID: &site, OvertimeHours: 6})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: bob, WorkDate: "2026-03-02", OvertimeHours: 3})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: carol, WorkDate: "2026-03-02", ProjectID: &site})
	require.NoError(t, err)

	res, err := svc.SummaryByProject(context.Background(), tid, SummaryQuery{Date: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, "Site A", res[0].ProjectName)
	require.NotNil(t, res[0].ProjectID)
	assert.Equal(t, site, *res[0].ProjectID)
	assert.Equal(t, 22.0, res[0].TotalHours)
	assert.Equal(t, 3.0, res[0].WorkUnits)

	assert.Equal(t, "unassigned", res[1].ProjectName)
	assert.Nil(t, res[1].ProjectID)
	assert.Equal(t, 11.0, res[1].TotalHours)
	assert.Equal(t, 1.5, res[1].WorkUnits)
}

func TestSummaryByEmployeeTieBreaksOnName(t *testing.T) {
	db, mock := newTxDB(t)
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}

	repo := newFakeRepo()
	bob := repo.addEmployee("Bob")
	alice := repo.addEmployee("Alice")
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: bob, WorkDate: "2026-03-02"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), tid, CreateTimeEntryRequest{EmployeeID: alice, WorkDate: "2026-03-02"})
	require.NoError(t, err)

	res, err := svc.SummaryByEmployee(context.Background(), tid, SummaryQuery{Date: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, res, 2)

	// equal units, so names decide the order
	assert.Equal(t, "Alice", res[0].EmployeeName)
	assert.Equal(t, "Bob", res[1].EmployeeName)
	assert.Equal(t, alice, res[0].EmployeeID)
}

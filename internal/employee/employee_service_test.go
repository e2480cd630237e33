package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
	"time"

	employeeerrors "github.com/ifzc/easy-record-working-api/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employees []Employee
}

func (f *fakeEmployeeRepo) WithTx(_ *sql.Tx) Repository { return f }

func (f *fakeEmployeeRepo) Create(_ context.Context, e *Employee) error {
	f.employees = append(f.employees, *e)
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *Employee) error {
	for i := range f.employees {
		if f.employees[i].ID == e.ID {
			f.employees[i] = *e
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, tenantID, id string) (*Employee, error) {
	for i := range f.employees {
		if f.employees[i].TenantID.String() == tenantID && f.employees[i].ID.String() == id {
			return &f.employees[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByName(_ context.Context, tenantID, name string) (*Employee, error) {
	for i := range f.employees {
		if f.employees[i].TenantID.String() == tenantID && f.employees[i].Name == name {
			return &f.employees[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, tenantID string, _ ListQuery) ([]Employee, int64, error) {
	var out []Employee
	for _, e := range f.employees {
		if e.TenantID.String() == tenantID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) FindActive(_ context.Context, tenantID string) ([]Employee, error) {
	var out []Employee
	for _, e := range f.employees {
		if e.TenantID.String() == tenantID && e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, tenantID, id string) error {
	for i := range f.employees {
		if f.employees[i].TenantID.String() == tenantID && f.employees[i].ID.String() == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCreateEmployee(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rdb, rmock := redismock.NewClientMock()
	repo := &fakeEmployeeRepo{}
	svc := NewService(db, repo, rdb)
	tid := uuid.NewString()

	rmock.ExpectDel(OptionsKey(tid)).SetVal(1)

	workType := "electrician"
	res, err := svc.Create(context.Background(), tid, CreateEmployeeRequest{
		Name:     "  Alice  ",
		WorkType: &workType,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", res.Name)
	assert.Equal(t, TypeRegular, res.Type)
	assert.True(t, res.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCreateEmployeeDuplicateName(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeEmployeeRepo{}
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	_, err := svc.Create(context.Background(), tid, CreateEmployeeRequest{Name: "Alice"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), tid, CreateEmployeeRequest{Name: "Alice"})
	assert.ErrorIs(t, err, employeeerrors.ErrDuplicateName)
}

func TestGetOptionsCachesResult(t *testing.T) {
	db, _ := newTxDB(t)
	rdb, rmock := redismock.NewClientMock()
	repo := &fakeEmployeeRepo{}
	tid := uuid.NewString()
	repo.employees = append(repo.employees, Employee{
		ID: uuid.New(), TenantID: uuid.MustParse(tid), Name: "Alice", Type: TypeRegular, IsActive: true,
	})
	svc := NewService(db, repo, rdb)

	expected := []EmployeeOption{{
		ID:   repo.employees[0].ID.String(),
		Name: "Alice",
		Type: TypeRegular,
	}}
	payload, err := json.Marshal(expected)
	require.NoError(t, err)

	rmock.ExpectGet(OptionsKey(tid)).RedisNil()
	rmock.ExpectSet(OptionsKey(tid), payload, time.Hour).SetVal("OK")

	res, err := svc.GetOptions(context.Background(), tid)
	require.NoError(t, err)
	assert.Equal(t, expected, res)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestGetOptionsServedFromCache(t *testing.T) {
	db, _ := newTxDB(t)
	rdb, rmock := redismock.NewClientMock()
	tid := uuid.NewString()

	cached := []EmployeeOption{{ID: uuid.NewString(), Name: "Cached", Type: TypeRegular}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	rmock.ExpectGet(OptionsKey(tid)).SetVal(string(payload))

	// nil-safe: the repo would panic if touched, which a cache hit must not do
	svc := NewService(db, &fakeEmployeeRepo{}, rdb)
	res, err := svc.GetOptions(context.Background(), tid)
	require.NoError(t, err)
	assert.Equal(t, cached, res)
}

func TestUpdateEmployeeDeactivates(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeEmployeeRepo{}
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	created, err := svc.Create(context.Background(), tid, CreateEmployeeRequest{Name: "Alice"})
	require.NoError(t, err)

	inactive := false
	res, err := svc.Update(context.Background(), tid, created.ID, UpdateEmployeeRequest{
		Name:     "Alice",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, res.IsActive)

	options, err := svc.GetOptions(context.Background(), tid)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestImportCSV(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeEmployeeRepo{}
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	// Bob already exists before the import
	_, err := svc.Create(context.Background(), tid, CreateEmployeeRequest{Name: "Bob"})
	require.NoError(t, err)

	csvData := strings.Join([]string{
		"name,type,work_type,phone,remark",
		"Alice,regular,electrician,555-0100,",
		"Bob,temporary,,,",
		"Alice,,,,",
		"Dora,manager,,,",
		"Eve,temporary,painter,,night shift",
	}, "\n")

	res, err := svc.ImportCSV(context.Background(), tid, strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Skipped)
	require.Len(t, res.Details, 5)

	assert.Equal(t, importStatusImported, res.Details[0].Status)
	assert.Equal(t, "name already exists", res.Details[1].Reason)
	assert.Equal(t, "duplicate name in file", res.Details[2].Reason)
	assert.Equal(t, "type must be regular or temporary", res.Details[3].Reason)
	assert.Equal(t, importStatusImported, res.Details[4].Status)

	eve, err := repo.FindByName(context.Background(), tid, "Eve")
	require.NoError(t, err)
	require.NotNil(t, eve.WorkType)
	assert.Equal(t, "painter", *eve.WorkType)
}

func TestImportCSVEmpty(t *testing.T) {
	db, _ := newTxDB(t)
	svc := NewService(db, &fakeEmployeeRepo{}, nil)

	_, err := svc.ImportCSV(context.Background(), uuid.NewString(), strings.NewReader("name,type,work_type,phone,remark\n"))
	assert.ErrorIs(t, err, employeeerrors.ErrEmptyImport)
}

func TestExportCSVRoundTrip(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeEmployeeRepo{}
	svc := NewService(db, repo, nil)
	tid := uuid.NewString()

	remark := "crew lead"
	_, err := svc.Create(context.Background(), tid, CreateEmployeeRequest{Name: "Alice", Type: TypeTemporary, Remark: &remark})
	require.NoError(t, err)

	data, err := svc.ExportCSV(context.Background(), tid)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,type,work_type,phone,remark", lines[0])
	assert.Equal(t, "Alice,temporary,,,crew lead", lines[1])
}

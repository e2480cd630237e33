package timeentry

import (
	"context"
	"database/sql"
	"time"

	"github.com/ifzc/easy-record-working-api/internal/tenant"

	"gorm.io/gorm"
)

// ListFilter narrows the single-day listing. Keyword matches the
// employee name.
type ListFilter struct {
	Keyword      string
	EmployeeType string
	ProjectID    string
	Sort         string
	Offset       int
	Limit        int
}

// RangeFilter narrows a date-range query. A non-nil EmployeeIDs slice
// means membership filtering (employee type / work type already
// resolved to ids); an empty non-nil slice matches nothing.
type RangeFilter struct {
	EmployeeID  string
	EmployeeIDs []string
	ProjectID   string
}

//go:generate mockgen -source=timeentry_repo.go -destination=mock/timeentry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *TimeEntry) error
	Update(ctx context.Context, e *TimeEntry) error
	FindActiveByID(ctx context.Context, tenantID, id string) (*TimeEntry, error)
	FindByEmployeeAndDate(ctx context.Context, tenantID, employeeID string, workDate time.Time, includeDeleted bool) (*TimeEntry, error)
	HasActiveDuplicate(ctx context.Context, tenantID, employeeID string, workDate time.Time, excludeID string) (bool, error)
	ListByDate(ctx context.Context, tenantID string, workDate time.Time, f ListFilter) ([]TimeEntry, int64, error)
	FindRange(ctx context.Context, tenantID string, start, end time.Time, f RangeFilter) ([]TimeEntry, error)
	FindEmployee(ctx context.Context, tenantID, employeeID string) (*EmployeeRef, error)
	FindActiveProject(ctx context.Context, tenantID, projectID string) (*ProjectRef, error)
	FindEmployeeIDsByClass(ctx context.Context, tenantID, employeeType, workType string) ([]string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) FindActiveByID(ctx context.Context, tenantID, id string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("state = ?", StateActive).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, tenantID, employeeID string, workDate time.Time, includeDeleted bool) (*TimeEntry, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", workDate.Format("2006-01-02"))

	if !includeDeleted {
		q = q.Where("state = ?", StateActive)
	}

	var e TimeEntry
	err := q.First(&e).Error
	return &e, err
}

func (r *repository) HasActiveDuplicate(ctx context.Context, tenantID, employeeID string, workDate time.Time, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&TimeEntry{}).
		Scopes(tenant.Scope(tenantID)).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", workDate.Format("2006-01-02")).
		Where("state = ?", StateActive)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByDate(ctx context.Context, tenantID string, workDate time.Time, f ListFilter) ([]TimeEntry, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&TimeEntry{}).
		Scopes(tenant.Scope(tenantID)).
		Where("time_entries.work_date = ?", workDate.Format("2006-01-02")).
		Where("time_entries.state = ?", StateActive)

	if f.Keyword != "" || f.EmployeeType != "" {
		q = q.Joins("JOIN employees ON employees.id = time_entries.employee_id")
		if f.Keyword != "" {
			q = q.Where("employees.name LIKE ?", "%"+f.Keyword+"%")
		}
		if f.EmployeeType != "" {
			q = q.Where("employees.type = ?", f.EmployeeType)
		}
	}

	if f.ProjectID != "" {
		q = q.Where("time_entries.project_id = ?", f.ProjectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case "hours_asc":
		q = q.Order("time_entries.normal_hours + time_entries.overtime_hours ASC")
	case "hours_desc":
		q = q.Order("time_entries.normal_hours + time_entries.overtime_hours DESC")
	default:
		q = q.Order("time_entries.updated_at DESC")
	}

	var entries []TimeEntry
	err := q.
		Preload("Employee").
		Preload("Project").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&entries).Error
	return entries, total, err
}

func (r *repository) FindRange(ctx context.Context, tenantID string, start, end time.Time, f RangeFilter) ([]TimeEntry, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("work_date >= ?", start.Format("2006-01-02")).
		Where("work_date <= ?", end.Format("2006-01-02")).
		Where("state = ?", StateActive)

	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if f.EmployeeIDs != nil {
		if len(f.EmployeeIDs) == 0 {
			return nil, nil
		}
		q = q.Where("employee_id IN ?", f.EmployeeIDs)
	}
	if f.ProjectID != "" {
		q = q.Where("project_id = ?", f.ProjectID)
	}

	var entries []TimeEntry
	err := q.
		Preload("Employee").
		Preload("Project").
		Order("work_date ASC").
		Find(&entries).Error
	return entries, err
}

// FindEmployee does not filter on is_active: callers decide whether an
// inactive employee is an error or a skip.
func (r *repository) FindEmployee(ctx context.Context, tenantID, employeeID string) (*EmployeeRef, error) {
	var emp EmployeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(tenantID)).
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		First(&emp).Error
	return &emp, err
}

func (r *repository) FindActiveProject(ctx context.Context, tenantID, projectID string) (*ProjectRef, error) {
	var proj ProjectRef
	err := r.db.WithContext(ctx).
		Table("projects").
		Scopes(tenant.Scope(tenantID)).
		Where("id = ?", projectID).
		Where("deleted_at IS NULL").
		First(&proj).Error
	return &proj, err
}

func (r *repository) FindEmployeeIDsByClass(ctx context.Context, tenantID, employeeType, workType string) ([]string, error) {
	q := r.db.WithContext(ctx).
		Table("employees").
		Select("id::text").
		Scopes(tenant.Scope(tenantID)).
		Where("deleted_at IS NULL")

	if employeeType != "" {
		q = q.Where("type = ?", employeeType)
	}
	if workType != "" {
		q = q.Where("work_type = ?", workType)
	}

	var ids []string
	err := q.Scan(&ids).Error
	return ids, err
}

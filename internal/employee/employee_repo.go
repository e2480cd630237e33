package employee

import (
	"context"
	"database/sql"

	"github.com/ifzc/easy-record-working-api/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, tenantID, id string) (*Employee, error)
	FindByName(ctx context.Context, tenantID, name string) (*Employee, error)
	List(ctx context.Context, tenantID string, q ListQuery) ([]Employee, int64, error)
	FindActive(ctx context.Context, tenantID string) ([]Employee, error)
	Delete(ctx context.Context, tenantID, id string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) FindByID(ctx context.Context, tenantID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByName(ctx context.Context, tenantID, name string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&e, "name = ?", name).Error
	return &e, err
}

func (r *repository) List(ctx context.Context, tenantID string, q ListQuery) ([]Employee, int64, error) {
	dbq := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(tenantID))

	if q.Keyword != "" {
		dbq = dbq.Where("name LIKE ?", "%"+q.Keyword+"%")
	}
	if q.Type != "" {
		dbq = dbq.Where("type = ?", q.Type)
	}
	if q.WorkType != "" {
		dbq = dbq.Where("work_type = ?", q.WorkType)
	}
	switch q.Active {
	case "true":
		dbq = dbq.Where("is_active = ?", true)
	case "false":
		dbq = dbq.Where("is_active = ?", false)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Employee
	err := dbq.
		Order("created_at ASC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&out).Error
	return out, total, err
}

func (r *repository) FindActive(ctx context.Context, tenantID string) ([]Employee, error) {
	var out []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) Delete(ctx context.Context, tenantID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package project

import (
	"context"

	"github.com/ifzc/easy-record-working-api/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, tenantID, id string) (*Project, error)
	FindByName(ctx context.Context, tenantID, name string) (*Project, error)
	FindByCode(ctx context.Context, tenantID, code string) (*Project, error)
	List(ctx context.Context, tenantID string, q ListQuery) ([]Project, int64, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) FindByID(ctx context.Context, tenantID, id string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByName(ctx context.Context, tenantID, name string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&p, "name = ?", name).Error
	return &p, err
}

func (r *repository) FindByCode(ctx context.Context, tenantID, code string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&p, "code = ?", code).Error
	return &p, err
}

func (r *repository) List(ctx context.Context, tenantID string, q ListQuery) ([]Project, int64, error) {
	dbq := r.db.WithContext(ctx).
		Model(&Project{}).
		Scopes(tenant.Scope(tenantID))

	if q.Keyword != "" {
		kw := "%" + q.Keyword + "%"
		dbq = dbq.Where("name LIKE ? OR code LIKE ?", kw, kw)
	}
	if q.Status != "" {
		dbq = dbq.Where("status = ?", q.Status)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Project
	err := dbq.
		Order("created_at ASC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&out).Error
	return out, total, err
}

func (r *repository) Delete(ctx context.Context, tenantID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Delete(&Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package auth

import (
	"context"

	"github.com/ifzc/easy-record-working-api/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	FindTenantByCode(ctx context.Context, code string) (*Tenant, error)
	FindTenantByID(ctx context.Context, id string) (*Tenant, error)
	FindUserByAccount(ctx context.Context, tenantID, account string) (*User, error)
	FindUsersByAccount(ctx context.Context, account string) ([]User, error)
	FindUserByID(ctx context.Context, tenantID, id string) (*User, error)
	UpdateUser(ctx context.Context, u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindTenantByCode(ctx context.Context, code string) (*Tenant, error) {
	var t Tenant
	err := r.db.WithContext(ctx).First(&t, "code = ?", code).Error
	return &t, err
}

func (r *repository) FindTenantByID(ctx context.Context, id string) (*Tenant, error) {
	var t Tenant
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindUserByAccount(ctx context.Context, tenantID, account string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&u, "account = ?", account).Error
	return &u, err
}

// FindUsersByAccount looks across all tenants, used for bare-account
// logins. The caller rejects the login when more than one row comes back.
func (r *repository) FindUsersByAccount(ctx context.Context, account string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("account = ?", account).
		Limit(2).
		Find(&users).Error
	return users, err
}

func (r *repository) FindUserByID(ctx context.Context, tenantID, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) UpdateUser(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

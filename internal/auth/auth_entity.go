package auth

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Tenant is an isolated customer workspace. Code is the short handle
// users type when logging in as tenant/account.
type Tenant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tenant) TableName() string {
	return "tenants"
}

// User is a login account scoped to one tenant. Account is unique
// within the tenant, not globally.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_users_tenant_account"`
	Account      string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_tenant_account"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	DisplayName  *string   `gorm:"type:varchar(100)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'member'"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

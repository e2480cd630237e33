package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeRegular   = "regular"
	TypeTemporary = "temporary"
)

// Employee is a worker whose hours get recorded. Type distinguishes
// payroll class (regular vs temporary); WorkType is a free-form trade
// label such as "electrician".
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Type      string    `gorm:"type:varchar(20);not null;default:'regular'"`
	WorkType  *string   `gorm:"type:varchar(50)"`
	Phone     *string   `gorm:"type:varchar(30)"`
	Remark    *string   `gorm:"type:varchar(500)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

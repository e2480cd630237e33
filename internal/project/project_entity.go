package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Project is an optional bucket a time entry can be charged to.
type Project struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Code             *string    `gorm:"type:varchar(50)"`
	Status           string     `gorm:"type:varchar(20);not null;default:active"`
	PlannedStartDate *time.Time `gorm:"type:date"`
	PlannedEndDate   *time.Time `gorm:"type:date"`
	Remark           *string    `gorm:"type:varchar(500)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}

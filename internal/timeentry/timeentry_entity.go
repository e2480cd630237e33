package timeentry

import (
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle tag of an entry. Deleted rows stay in the
// table so a later booking for the same (tenant, employee, date) can
// restore them in place.
type State string

const (
	StateActive  State = "active"
	StateDeleted State = "deleted"
)

// TimeEntry is one employee-day booking. At most one active row may
// exist per (tenant_id, employee_id, work_date); the partial unique
// index uq_time_entries_active_key enforces that under concurrent
// writers.
type TimeEntry struct {
	ID            uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	TenantID      uuid.UUID    `gorm:"column:tenant_id;type:uuid;not null;index"`
	EmployeeID    uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;index"`
	ProjectID     *uuid.UUID   `gorm:"column:project_id;type:uuid"`
	WorkDate      time.Time    `gorm:"column:work_date;type:date;not null;index"`
	NormalHours   float64      `gorm:"column:normal_hours;type:decimal(4,1);not null"`
	OvertimeHours float64      `gorm:"column:overtime_hours;type:decimal(4,1);not null"`
	Remark        *string      `gorm:"column:remark;type:text"`
	State         State        `gorm:"column:state;type:varchar(10);not null;default:active"`
	CreatedAt     time.Time    `gorm:"column:created_at"`
	UpdatedAt     time.Time    `gorm:"column:updated_at"`
	Employee      *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	Project       *ProjectRef  `gorm:"foreignKey:ProjectID;references:ID"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

func (e *TimeEntry) IsDeleted() bool {
	return e.State == StateDeleted
}

// MarkDeleted transitions active -> deleted. The row is retained.
func (e *TimeEntry) MarkDeleted() {
	e.State = StateDeleted
}

// Restore transitions deleted -> active.
func (e *TimeEntry) Restore() {
	e.State = StateActive
}

// EmployeeRef is the read-only projection of the employees table this
// package joins for display and eligibility checks.
type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"column:name"`
	Type     string    `gorm:"column:type"`
	WorkType *string   `gorm:"column:work_type"`
	IsActive bool      `gorm:"column:is_active"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

type ProjectRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (ProjectRef) TableName() string {
	return "projects"
}

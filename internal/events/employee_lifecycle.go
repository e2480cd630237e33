package events

import "time"

const EmployeeLifecycleTopic = "labor.employee.lifecycle.v1"

// EmployeeLifecycleEvent is published when an employee is created or
// imported, so downstream consumers (payroll exports, BI) can sync.
type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"` // employee_created | employee_imported
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	TenantID   string    `json:"tenant_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

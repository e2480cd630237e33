package events

import "time"

const TimeEntryBatchTopic = "labor.time_entry.batch.v1"

// TimeEntryBatchEvent summarizes one accepted batch booking.
type TimeEntryBatchEvent struct {
	EventType  string    `json:"event_type"` // time_entry_batch_created
	RequestID  string    `json:"request_id,omitempty"`
	TenantID   string    `json:"tenant_id"`
	Total      int       `json:"total"`
	Created    int       `json:"created"`
	Skipped    int       `json:"skipped"`
	OccurredAt time.Time `json:"occurred_at"`
}

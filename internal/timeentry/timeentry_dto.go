package timeentry

// NormalHours defaults to a full 8-hour day when the field is absent,
// hence the pointers on the create-shaped requests.

type CreateTimeEntryRequest struct {
	EmployeeID    string   `json:"employee_id" binding:"required,uuid"`
	ProjectID     *string  `json:"project_id" binding:"omitempty,uuid"`
	WorkDate      string   `json:"work_date" binding:"required"`
	NormalHours   *float64 `json:"normal_hours"`
	OvertimeHours float64  `json:"overtime_hours"`
	Remark        *string  `json:"remark"`
}

type UpdateTimeEntryRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	ProjectID     *string `json:"project_id" binding:"omitempty,uuid"`
	WorkDate      string  `json:"work_date" binding:"required"`
	NormalHours   float64 `json:"normal_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Remark        *string `json:"remark"`
}

type BatchCreateTimeEntriesRequest struct {
	EmployeeIDs   []string `json:"employee_ids" binding:"required,dive,uuid"`
	WorkDates     []string `json:"work_dates" binding:"required"`
	ProjectID     *string  `json:"project_id" binding:"omitempty,uuid"`
	NormalHours   *float64 `json:"normal_hours"`
	OvertimeHours float64  `json:"overtime_hours"`
	Remark        *string  `json:"remark"`
}

type TimeEntryResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	EmployeeType  string  `json:"employee_type"`
	WorkType      *string `json:"work_type,omitempty"`
	ProjectID     *string `json:"project_id,omitempty"`
	ProjectName   *string `json:"project_name,omitempty"`
	WorkDate      string  `json:"work_date"`
	NormalHours   float64 `json:"normal_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Remark        *string `json:"remark,omitempty"`
	TotalHours    float64 `json:"total_hours"`
	WorkUnits     float64 `json:"work_units"`
	CreatedAt     string  `json:"created_at"`
}

const (
	BatchStatusCreated = "created"
	BatchStatusSkipped = "skipped"
)

type BatchCreateDetail struct {
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

type BatchCreateResult struct {
	Total   int                 `json:"total"`
	Created int                 `json:"created"`
	Skipped int                 `json:"skipped"`
	Details []BatchCreateDetail `json:"details"`
}

type DailySummaryResponse struct {
	Date           string  `json:"date"`
	NormalHours    float64 `json:"normal_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	TotalHours     float64 `json:"total_hours"`
	TotalWorkUnits float64 `json:"total_work_units"`
	Headcount      int     `json:"headcount"`
}

type ProjectSummaryResponse struct {
	ProjectID   *string `json:"project_id,omitempty"`
	ProjectName string  `json:"project_name"`
	TotalHours  float64 `json:"total_hours"`
	WorkUnits   float64 `json:"work_units"`
}

type EmployeeSummaryResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	TotalHours   float64 `json:"total_hours"`
	WorkUnits    float64 `json:"work_units"`
}

// ListQuery mirrors the query string of GET /time-entries.
type ListQuery struct {
	Date         string
	Keyword      string
	EmployeeType string
	ProjectID    string
	Sort         string
	Page         int
	PageSize     int
}

// SummaryQuery mirrors the query string of the summary endpoints.
// Exactly one of Date/Month must be set.
type SummaryQuery struct {
	Date         string
	Month        string
	EmployeeID   string
	EmployeeType string
	WorkType     string
	ProjectID    string
}

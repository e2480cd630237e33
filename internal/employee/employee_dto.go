package employee

type CreateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Type     string  `json:"type" binding:"omitempty,oneof=regular temporary"`
	WorkType *string `json:"work_type" binding:"omitempty,max=50"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Remark   *string `json:"remark" binding:"omitempty,max=500"`
}

type UpdateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Type     string  `json:"type" binding:"omitempty,oneof=regular temporary"`
	WorkType *string `json:"work_type" binding:"omitempty,max=50"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Remark   *string `json:"remark" binding:"omitempty,max=500"`
	IsActive *bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	WorkType *string `json:"work_type,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Remark   *string `json:"remark,omitempty"`
	IsActive bool    `json:"is_active"`
}

// EmployeeOption is the slim shape the time-entry grid uses to render
// its employee picker.
type EmployeeOption struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	WorkType *string `json:"work_type,omitempty"`
}

type ListQuery struct {
	Keyword  string
	Type     string
	WorkType string
	Active   string // "", "true", "false"
	Page     int
	PageSize int
}

// ImportResult reports a CSV import row by row.
type ImportResult struct {
	Total    int            `json:"total"`
	Imported int            `json:"imported"`
	Skipped  int            `json:"skipped"`
	Details  []ImportDetail `json:"details,omitempty"`
}

type ImportDetail struct {
	Line   int    `json:"line"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

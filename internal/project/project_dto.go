package project

type CreateProjectRequest struct {
	Name             string  `json:"name" binding:"required,max=100"`
	Code             *string `json:"code" binding:"omitempty,max=50"`
	Status           *string `json:"status" binding:"omitempty,oneof=active archived"`
	PlannedStartDate *string `json:"planned_start_date" binding:"omitempty,datetime=2006-01-02"`
	PlannedEndDate   *string `json:"planned_end_date" binding:"omitempty,datetime=2006-01-02"`
	Remark           *string `json:"remark" binding:"omitempty,max=500"`
}

type UpdateProjectRequest struct {
	Name             string  `json:"name" binding:"required,max=100"`
	Code             *string `json:"code" binding:"omitempty,max=50"`
	Status           *string `json:"status" binding:"omitempty,oneof=active archived"`
	PlannedStartDate *string `json:"planned_start_date" binding:"omitempty,datetime=2006-01-02"`
	PlannedEndDate   *string `json:"planned_end_date" binding:"omitempty,datetime=2006-01-02"`
	Remark           *string `json:"remark" binding:"omitempty,max=500"`
}

type ProjectResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Code             *string `json:"code,omitempty"`
	Status           string  `json:"status"`
	PlannedStartDate *string `json:"planned_start_date,omitempty"`
	PlannedEndDate   *string `json:"planned_end_date,omitempty"`
	Remark           *string `json:"remark,omitempty"`
}

type ListQuery struct {
	Keyword  string
	Status   string // "", "active", "archived"
	Page     int
	PageSize int
}

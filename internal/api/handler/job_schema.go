package handler

type createJobRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location"    validate:"required"`
	Urgency     string   `json:"urgency"     validate:"omitempty,oneof=urgent normal flexible"`
	BudgetMin   *float64 `json:"budget_min"  validate:"omitempty,gt=0"`
	BudgetMax   *float64 `json:"budget_max"  validate:"omitempty,gt=0"`
	ServiceID   *int64   `json:"service_id"`
}

type updateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open quoted in_progress completed cancelled"`
}

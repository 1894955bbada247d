package request

// CreateAdvanceRequest represents a create cash advance request
type CreateAdvanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Date       string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Notes      string  `json:"notes"`
}

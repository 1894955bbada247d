package request

// MarkAttendanceRequest represents a mark attendance request.
// Status is one of present, absent, half-day.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required"`
}

// UpdateAttendanceRequest represents an attendance status change
type UpdateAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required"`
}

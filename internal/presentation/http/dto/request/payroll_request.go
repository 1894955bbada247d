package request

// GeneratePayrollRequest represents a payroll batch request
type GeneratePayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

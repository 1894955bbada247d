package request

// CreateEmployeeRequest represents a create employee request.
// Dates are accepted as YYYY-MM-DD.
type CreateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Role        string  `json:"role" binding:"max=100"`
	JoiningDate string  `json:"joining_date" binding:"omitempty,datetime=2006-01-02"`
	BasicSalary float64 `json:"basic_salary" binding:"gte=0"`
}

// UpdateEmployeeRequest represents a partial employee update
type UpdateEmployeeRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Role        *string  `json:"role" binding:"omitempty,max=100"`
	JoiningDate *string  `json:"joining_date" binding:"omitempty,datetime=2006-01-02"`
	BasicSalary *float64 `json:"basic_salary" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

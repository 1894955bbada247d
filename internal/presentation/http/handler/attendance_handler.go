package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/request"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// AttendanceHandler handles attendance-related HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Mark handles marking attendance for a day
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req request.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		response.BadRequest(c, "Invalid date")
		return
	}
	status, ok := enum.ParseAttendanceStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Status must be present, absent or half-day")
		return
	}

	attendance, err := h.attendanceService.MarkAttendance(c.Request.Context(), &service.MarkAttendanceInput{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Attendance marked successfully", attendance)
}

// Update handles changing the status of an existing attendance row
func (h *AttendanceHandler) Update(c *gin.Context) {
	var req request.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		response.BadRequest(c, "Invalid date")
		return
	}
	status, ok := enum.ParseAttendanceStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Status must be present, absent or half-day")
		return
	}

	attendance, err := h.attendanceService.UpdateAttendance(c.Request.Context(), employeeID, date, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Attendance updated successfully", attendance)
}

// Daily handles listing all attendance for one day (defaults to today)
func (h *AttendanceHandler) Daily(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, ok := parseDate(raw)
		if !ok {
			response.BadRequest(c, "Invalid date")
			return
		}
		date = parsed
	}

	rows, err := h.attendanceService.GetDailyAttendance(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Attendance retrieved successfully", rows)
}

// Monthly handles listing one employee's attendance for a month
func (h *AttendanceHandler) Monthly(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	now := time.Now()
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))

	rows, err := h.attendanceService.GetMonthlyAttendance(c.Request.Context(), employeeID, month, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Attendance retrieved successfully", rows)
}

// Delete handles removing an attendance row
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid attendance ID")
		return
	}

	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Attendance deleted successfully", nil)
}

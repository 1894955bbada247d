package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AttendanceStatus represents an employee's attendance for a single day
type AttendanceStatus int

const (
	AttendancePresent AttendanceStatus = 0
	AttendanceAbsent  AttendanceStatus = 1
	AttendanceHalfDay AttendanceStatus = 2
)

func (s AttendanceStatus) String() string {
	names := [...]string{"present", "absent", "half-day"}
	if int(s) < 0 || int(s) >= len(names) {
		return "present"
	}
	return names[s]
}

// ParseAttendanceStatus maps a request string to a status
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	switch s {
	case "present":
		return AttendancePresent, true
	case "absent":
		return AttendanceAbsent, true
	case "half-day":
		return AttendanceHalfDay, true
	default:
		return AttendancePresent, false
	}
}

// IsValid reports whether the status is one of the known values
func (s AttendanceStatus) IsValid() bool {
	return s >= AttendancePresent && s <= AttendanceHalfDay
}

func (s AttendanceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AttendanceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = AttendanceStatus(i)
		return nil
	}
	switch str {
	case "present":
		*s = AttendancePresent
	case "absent":
		*s = AttendanceAbsent
	case "half-day":
		*s = AttendanceHalfDay
	}
	return nil
}

func (s AttendanceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *AttendanceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AttendancePresent
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = AttendanceStatus(v)
	case int:
		*s = AttendanceStatus(v)
	}
	return nil
}

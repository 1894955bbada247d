package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SalaryStatus represents the payment state of a computed salary record.
// A record only exists once the payroll run has computed it; the status
// tracks whether the amount has actually been paid out.
type SalaryStatus int

const (
	SalaryPending SalaryStatus = 0
	SalaryPaid    SalaryStatus = 1
)

func (s SalaryStatus) String() string {
	names := [...]string{"pending", "paid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

func (s SalaryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SalaryStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SalaryStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = SalaryPending
	case "paid":
		*s = SalaryPaid
	}
	return nil
}

func (s SalaryStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SalaryStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SalaryPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SalaryStatus(v)
	case int:
		*s = SalaryStatus(v)
	}
	return nil
}

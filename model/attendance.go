package model

// Attendance statuses.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
)

func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}

// AttendanceDocument is the full contents of database.json.
type AttendanceDocument struct {
	Attendance []AttendanceRecord `json:"attendance"`
}

// AttendanceRecord is one check-in event for an employee. CheckOut stays nil
// until the employee checks out; a record with a nil CheckOut is "open".
// Dates are YYYY-MM-DD, clock fields are HH:MM:SS local wall-clock.
type AttendanceRecord struct {
	EmployeeID        int     `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	Department        string  `json:"department"`
	Date              string  `json:"date"`
	CheckIn           *string `json:"check_in"`
	CheckOut          *string `json:"check_out"`
	Status            string  `json:"status"`
	Timestamp         string  `json:"timestamp"`
	CorrectionApplied bool    `json:"correction_applied,omitempty"`
	CorrectionDate    string  `json:"correction_date,omitempty"`
}

func (r *AttendanceRecord) Open() bool {
	return r.CheckOut == nil
}

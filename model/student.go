package model

// StudentsDocument is the full contents of students.json.
type StudentsDocument struct {
	Classes  []string  `json:"classes"`
	Students []Student `json:"students"`
}

type Student struct {
	ID                int                           `json:"id"`
	Name              string                        `json:"name"`
	Class             string                        `json:"class"`
	ParentContact     string                        `json:"parent_contact"`
	ParentEmail       string                        `json:"parent_email"`
	DOB               string                        `json:"dob"`
	Age               int                           `json:"age"`
	Address           string                        `json:"address"`
	HealthStatus      string                        `json:"health_status"`
	Allergies         string                        `json:"allergies"`
	EmergencyContact  string                        `json:"emergency_contact"`
	EnrollmentDate    string                        `json:"enrollment_date"`
	AcademicResults   map[string]map[string]float64 `json:"academic_results"`
	AttendanceRecord  AttendanceTally               `json:"attendance_record"`
	MonthlyAttendance map[string]MonthlyAttendance  `json:"monthly_attendance"`
	TermAttendance    map[string]TermAttendance     `json:"term_attendance"`
}

// AttendanceTally is the cumulative day-marking counter. It is deliberately
// independent of MonthlyAttendance and TermAttendance; the three
// representations are never reconciled with each other.
type AttendanceTally struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

func (t AttendanceTally) Total() int {
	return t.Present + t.Absent + t.Late
}

// MonthlyAttendance is a per-month snapshot keyed by "YYYY-MM".
type MonthlyAttendance struct {
	PresentDates []string       `json:"present_dates"`
	Summary      MonthlySummary `json:"summary"`
}

type MonthlySummary struct {
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	MonthDays int `json:"month_days"`
}

// TermAttendance is the canonical per-term summary used by term reporting.
type TermAttendance struct {
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	TotalDays int `json:"total_days"`
}

// StudentUpdate enumerates the mutable student fields. Nil fields are left
// untouched.
type StudentUpdate struct {
	Name             *string `json:"name,omitempty"`
	Class            *string `json:"class,omitempty"`
	ParentContact    *string `json:"parent_contact,omitempty"`
	ParentEmail      *string `json:"parent_email,omitempty"`
	DOB              *string `json:"dob,omitempty"`
	Address          *string `json:"address,omitempty"`
	HealthStatus     *string `json:"health_status,omitempty"`
	Allergies        *string `json:"allergies,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
}

func (s *Student) Apply(u StudentUpdate) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Class != nil {
		s.Class = *u.Class
	}
	if u.ParentContact != nil {
		s.ParentContact = *u.ParentContact
	}
	if u.ParentEmail != nil {
		s.ParentEmail = *u.ParentEmail
	}
	if u.DOB != nil {
		s.DOB = *u.DOB
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
	if u.HealthStatus != nil {
		s.HealthStatus = *u.HealthStatus
	}
	if u.EmergencyContact != nil {
		s.EmergencyContact = *u.EmergencyContact
	}
	if u.Allergies != nil {
		s.Allergies = *u.Allergies
	}
}

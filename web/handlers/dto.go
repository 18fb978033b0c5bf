package handlers

import "greenwood.com/sis/model"

type CreateStudentRequest struct {
	Name             string `json:"name" binding:"required"`
	Class            string `json:"class" binding:"required"`
	ParentContact    string `json:"parent_contact"`
	ParentEmail      string `json:"parent_email"`
	DOB              string `json:"dob"`
	Address          string `json:"address"`
	HealthStatus     string `json:"health_status"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergency_contact"`
}

type UpdateResultsRequest struct {
	Term    string  `json:"term" binding:"required"`
	Subject string  `json:"subject" binding:"required"`
	Score   float64 `json:"score" binding:"min=0,max=100"`
}

type MarkAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
}

type MonthlyAttendanceRequest struct {
	MonthKey    string   `json:"month_key" binding:"required"`
	PresentDays []string `json:"present_days"`
}

type TermAttendanceRequest struct {
	TermKey     string `json:"term_key" binding:"required"`
	PresentDays *int   `json:"present_days" binding:"required"`
}

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type CheckInRequest struct {
	EmployeeID int `json:"employee_id" binding:"required"`
}

type GradeRequest struct {
	Grade string `json:"grade" binding:"required"`
}

type EmployeeHoursRequest struct {
	Daily  *float64 `json:"daily"`
	Weekly *float64 `json:"weekly"`
}

type StandardHoursRequest struct {
	Daily        float64 `json:"daily" binding:"required"`
	Weekly       float64 `json:"weekly" binding:"required"`
	OvertimeRate float64 `json:"overtime_rate" binding:"required"`
}

type SubmitCorrectionRequest struct {
	EmployeeID     int                   `json:"employee_id" binding:"required"`
	EmployeeName   string                `json:"employee_name" binding:"required"`
	OriginalDate   string                `json:"original_date" binding:"required"`
	OriginalStatus string                `json:"original_status"`
	Reason         string                `json:"reason" binding:"required"`
	Patch          model.CorrectionPatch `json:"requested_changes" binding:"required"`
}

type ProcessCorrectionRequest struct {
	Decision    string `json:"decision" binding:"required,oneof=Approved Rejected"`
	ProcessedBy string `json:"processed_by" binding:"required"`
	Notes       string `json:"notes"`
}

type CreateAnnouncementRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	Author    string   `json:"author" binding:"required"`
	AuthorID  int      `json:"author_id"`
	Priority  string   `json:"priority"`
	VisibleTo []string `json:"visible_to"`
}

type MarkReadRequest struct {
	EmployeeID int `json:"employee_id" binding:"required"`
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type TermDaysRequest struct {
	TermKey string `json:"term_key" binding:"required"`
	Days    int    `json:"days" binding:"required,min=1"`
}

package model

import "strconv"

// WorkingHoursDocument is the full contents of working_hours.json.
// EmployeeSettings is keyed by the employee id rendered as a string.
type WorkingHoursDocument struct {
	StandardDailyHours  float64                  `json:"standard_daily_hours"`
	StandardWeeklyHours float64                  `json:"standard_weekly_hours"`
	OvertimeRate        float64                  `json:"overtime_rate"`
	EmployeeSettings    map[string]EmployeeHours `json:"employee_settings"`
}

// EmployeeHours is a partial per-employee override of the standard hours.
type EmployeeHours struct {
	Daily  *float64 `json:"daily,omitempty"`
	Weekly *float64 `json:"weekly,omitempty"`
}

// EffectiveDailyHours resolves the overtime threshold for an employee: the
// per-employee daily override when set, otherwise the standard daily hours.
func (d *WorkingHoursDocument) EffectiveDailyHours(employeeID int) float64 {
	if s, ok := d.EmployeeSettings[strconv.Itoa(employeeID)]; ok && s.Daily != nil {
		return *s.Daily
	}
	return d.StandardDailyHours
}

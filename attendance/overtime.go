package attendance

import (
	"math"

	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

type OvertimeSummary struct {
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	OvertimePay   float64 `json:"overtime_pay"`
	RegularHours  float64 `json:"regular_hours"`
}

// CalculateOvertime aggregates worked hours for an employee across an
// inclusive date range. A record contributes only when both clock fields
// parse as HH:MM:SS; hours above the employee's effective daily threshold
// count as overtime, paid at the configured rate.
//
// The subtraction is naive wall-clock time-of-day arithmetic. A record whose
// check-out clock reads earlier than its check-in (an overnight shift) is
// skipped: shifts spanning midnight are not supported.
func (e *Engine) CalculateOvertime(employeeID int, startDate, endDate string) (OvertimeSummary, error) {
	records, err := e.EmployeeAttendance(employeeID, startDate, endDate)
	if err != nil {
		return OvertimeSummary{}, err
	}

	hoursDoc, err := e.db.WorkingHours.Load()
	if err != nil {
		return OvertimeSummary{}, err
	}
	dailyHours := hoursDoc.EffectiveDailyHours(employeeID)
	rate := hoursDoc.OvertimeRate

	var total, overtime, pay float64
	for _, r := range records {
		hours, ok := workedHours(r)
		if !ok {
			continue
		}
		total += hours
		if hours > dailyHours {
			ot := hours - dailyHours
			overtime += ot
			pay += ot * rate
		}
	}

	return OvertimeSummary{
		TotalHours:    round2(total),
		OvertimeHours: round2(overtime),
		OvertimePay:   round2(pay),
		RegularHours:  round2(total - overtime),
	}, nil
}

func workedHours(r model.AttendanceRecord) (float64, bool) {
	if r.CheckIn == nil || r.CheckOut == nil {
		return 0, false
	}
	ci, err := utils.ParseClock(*r.CheckIn)
	if err != nil {
		return 0, false
	}
	co, err := utils.ParseClock(*r.CheckOut)
	if err != nil {
		return 0, false
	}
	delta := co.Sub(ci)
	if delta < 0 {
		return 0, false
	}
	return delta.Hours(), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

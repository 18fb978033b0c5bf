package attendance

import (
	"fmt"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

// RecordCheckIn opens today's attendance record for the employee. An
// employee can hold at most one open record per day: checking in again
// before checking out fails rather than creating a duplicate.
func (e *Engine) RecordCheckIn(employeeID int, employeeName, department string) error {
	today := utils.Today()

	return e.db.Attendance.Transact(func(doc *model.AttendanceDocument) error {
		for i := range doc.Attendance {
			r := &doc.Attendance[i]
			if r.EmployeeID == employeeID && r.Date == today && r.Open() {
				return fmt.Errorf("%w: employee %d already checked in on %s",
					core.ErrInvalidState, employeeID, today)
			}
		}

		doc.Attendance = append(doc.Attendance, model.AttendanceRecord{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Department:   department,
			Date:         today,
			CheckIn:      utils.Ptr(utils.ClockNow()),
			CheckOut:     nil,
			Status:       model.StatusPresent,
			Timestamp:    utils.NowISO(),
		})
		return nil
	})
}

// RecordCheckOut closes the most recently opened record for the employee
// today. Having nothing to close is reported, never silently ignored.
func (e *Engine) RecordCheckOut(employeeID int) error {
	today := utils.Today()

	return e.db.Attendance.Transact(func(doc *model.AttendanceDocument) error {
		for i := len(doc.Attendance) - 1; i >= 0; i-- {
			r := &doc.Attendance[i]
			if r.EmployeeID == employeeID && r.Date == today && r.Open() {
				r.CheckOut = utils.Ptr(utils.ClockNow())
				return nil
			}
		}
		return fmt.Errorf("%w: no open attendance record for employee %d on %s",
			core.ErrNotFound, employeeID, today)
	})
}

// HasCheckedInToday reports whether the employee has an open record today.
// The UI uses this to decide between the check-in and check-out affordances.
func (e *Engine) HasCheckedInToday(employeeID int) (bool, error) {
	doc, err := e.db.Attendance.Load()
	if err != nil {
		return false, err
	}
	today := utils.Today()
	for i := range doc.Attendance {
		r := &doc.Attendance[i]
		if r.EmployeeID == employeeID && r.Date == today && r.Open() {
			return true, nil
		}
	}
	return false, nil
}

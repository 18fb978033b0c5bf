// Package attendance implements employee check-in/check-out tracking,
// overtime calculation, student attendance summaries, and the attendance
// correction workflow.
package attendance

import (
	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

type Engine struct {
	db *core.Manager
}

func NewEngine(db *core.Manager) *Engine {
	return &Engine{db: db}
}

// TodayAttendance returns every attendance record dated today.
func (e *Engine) TodayAttendance() ([]model.AttendanceRecord, error) {
	return e.AttendanceByDate(utils.Today())
}

func (e *Engine) AttendanceByDate(date string) ([]model.AttendanceRecord, error) {
	doc, err := e.db.Attendance.Load()
	if err != nil {
		return nil, err
	}
	return utils.Filter(doc.Attendance, func(r model.AttendanceRecord) bool {
		return r.Date == date
	}), nil
}

// AttendanceByRange returns records whose date falls in [start, end]
// inclusive. Dates are zero-padded ISO strings, so lexicographic comparison
// is chronological.
func (e *Engine) AttendanceByRange(start, end string) ([]model.AttendanceRecord, error) {
	doc, err := e.db.Attendance.Load()
	if err != nil {
		return nil, err
	}
	return utils.Filter(doc.Attendance, func(r model.AttendanceRecord) bool {
		return start <= r.Date && r.Date <= end
	}), nil
}

// EmployeeAttendance returns an employee's records, optionally bounded by an
// inclusive date range. Empty bounds mean the full history. An unknown
// employee yields an empty list, not an error.
func (e *Engine) EmployeeAttendance(employeeID int, start, end string) ([]model.AttendanceRecord, error) {
	doc, err := e.db.Attendance.Load()
	if err != nil {
		return nil, err
	}
	return utils.Filter(doc.Attendance, func(r model.AttendanceRecord) bool {
		if r.EmployeeID != employeeID {
			return false
		}
		if start != "" && end != "" {
			return start <= r.Date && r.Date <= end
		}
		return true
	}), nil
}

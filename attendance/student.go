package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

// MarkStudentAttendance increments the student's cumulative tally for one
// school day. Status is "present", "absent" or "late".
func (e *Engine) MarkStudentAttendance(studentID int, status string) error {
	status = strings.ToLower(status)
	if status != "present" && status != "absent" && status != "late" {
		return fmt.Errorf("%w: unknown attendance status %q", core.ErrInvalidInput, status)
	}

	return e.db.Students.Transact(func(doc *model.StudentsDocument) error {
		for i := range doc.Students {
			s := &doc.Students[i]
			if s.ID != studentID {
				continue
			}
			switch status {
			case "present":
				s.AttendanceRecord.Present++
			case "absent":
				s.AttendanceRecord.Absent++
			case "late":
				s.AttendanceRecord.Late++
			}
			return nil
		}
		return fmt.Errorf("%w: student %d", core.ErrNotFound, studentID)
	})
}

// SaveStudentMonthlyAttendance stores a per-month snapshot. monthKey is
// "YYYY-MM". Each entry of presentDays is either a bare day number ("14") or
// a full ISO date; days outside the month's calendar range are dropped.
// The snapshot never feeds back into the cumulative tally.
func (e *Engine) SaveStudentMonthlyAttendance(studentID int, monthKey string, presentDays []string) error {
	year, month, err := parseMonthKey(monthKey)
	if err != nil {
		return err
	}
	numDays := utils.DaysInMonth(year, month)

	var normalized []string
	for _, d := range presentDays {
		day, err := parseDayNumber(d)
		if err != nil {
			continue
		}
		if day < 1 || day > numDays {
			continue
		}
		normalized = append(normalized,
			time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
	}
	if normalized == nil {
		normalized = []string{}
	}

	return e.db.Students.Transact(func(doc *model.StudentsDocument) error {
		for i := range doc.Students {
			s := &doc.Students[i]
			if s.ID != studentID {
				continue
			}
			if s.MonthlyAttendance == nil {
				s.MonthlyAttendance = map[string]model.MonthlyAttendance{}
			}
			s.MonthlyAttendance[monthKey] = model.MonthlyAttendance{
				PresentDates: normalized,
				Summary: model.MonthlySummary{
					Present:   len(normalized),
					Absent:    numDays - len(normalized),
					MonthDays: numDays,
				},
			}
			return nil
		}
		return fmt.Errorf("%w: student %d", core.ErrNotFound, studentID)
	})
}

func (e *Engine) StudentMonthlyAttendance(studentID int, monthKey string) (model.MonthlyAttendance, error) {
	doc, err := e.db.Students.Load()
	if err != nil {
		return model.MonthlyAttendance{}, err
	}
	for i := range doc.Students {
		if doc.Students[i].ID == studentID {
			return doc.Students[i].MonthlyAttendance[monthKey], nil
		}
	}
	return model.MonthlyAttendance{}, nil
}

// SaveStudentTermAttendance stores the canonical per-term summary. The term
// length comes from the settings' per-term map, falling back to the global
// default; presentDays is clamped into [0, total]. Term summaries are never
// merged into the cumulative tally, to avoid double counting.
func (e *Engine) SaveStudentTermAttendance(studentID int, termKey string, presentDays int) error {
	settings, err := e.db.Settings.Load()
	if err != nil {
		return err
	}
	totalDays := settings.TermTotalDays(termKey)

	if presentDays < 0 {
		presentDays = 0
	}
	if presentDays > totalDays {
		presentDays = totalDays
	}

	return e.db.Students.Transact(func(doc *model.StudentsDocument) error {
		for i := range doc.Students {
			s := &doc.Students[i]
			if s.ID != studentID {
				continue
			}
			if s.TermAttendance == nil {
				s.TermAttendance = map[string]model.TermAttendance{}
			}
			s.TermAttendance[termKey] = model.TermAttendance{
				Present:   presentDays,
				Absent:    totalDays - presentDays,
				TotalDays: totalDays,
			}
			return nil
		}
		return fmt.Errorf("%w: student %d", core.ErrNotFound, studentID)
	})
}

func parseMonthKey(monthKey string) (year, month int, err error) {
	parts := strings.SplitN(monthKey, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: month key %q is not YYYY-MM", core.ErrInvalidInput, monthKey)
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || month < 1 || month > 12 || year < 1 {
		return 0, 0, fmt.Errorf("%w: month key %q is not YYYY-MM", core.ErrInvalidInput, monthKey)
	}
	return year, month, nil
}

// parseDayNumber accepts "14", "2024-02-14", or any dash-separated form
// whose last segment is the day of month.
func parseDayNumber(s string) (int, error) {
	segs := strings.Split(strings.TrimSpace(s), "-")
	return strconv.Atoi(segs[len(segs)-1])
}

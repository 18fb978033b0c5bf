package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

func record(empID int, date, checkIn, checkOut string) model.AttendanceRecord {
	r := model.AttendanceRecord{
		EmployeeID: empID,
		Date:       date,
		Status:     model.StatusPresent,
	}
	if checkIn != "" {
		r.CheckIn = utils.Ptr(checkIn)
	}
	if checkOut != "" {
		r.CheckOut = utils.Ptr(checkOut)
	}
	return r
}

func saveHours(t *testing.T, m *core.Manager, doc model.WorkingHoursDocument) {
	t.Helper()
	require.NoError(t, m.WorkingHours.Save(doc))
}

func TestCalculateOvertimeSingleDay(t *testing.T) {
	e, m := newTestEngine(t)
	saveHours(t, m, model.WorkingHoursDocument{
		StandardDailyHours:  8,
		StandardWeeklyHours: 40,
		OvertimeRate:        1.5,
		EmployeeSettings:    map[string]model.EmployeeHours{},
	})
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			record(7, "2024-09-02", "08:00:00", "17:30:00"),
		},
	}))

	got, err := e.CalculateOvertime(7, "2024-09-01", "2024-09-30")
	require.NoError(t, err)
	assert.Equal(t, OvertimeSummary{
		TotalHours:    9.5,
		OvertimeHours: 1.5,
		OvertimePay:   2.25,
		RegularHours:  8,
	}, got)
}

func TestCalculateOvertimeEmployeeOverride(t *testing.T) {
	e, m := newTestEngine(t)
	saveHours(t, m, model.WorkingHoursDocument{
		StandardDailyHours: 8,
		OvertimeRate:       2,
		EmployeeSettings: map[string]model.EmployeeHours{
			"7": {Daily: utils.Ptr(6.0)},
		},
	})
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			record(7, "2024-09-02", "09:00:00", "16:00:00"), // 7h against a 6h override
		},
	}))

	got, err := e.CalculateOvertime(7, "2024-09-01", "2024-09-30")
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.TotalHours)
	assert.Equal(t, 1.0, got.OvertimeHours)
	assert.Equal(t, 2.0, got.OvertimePay)
	assert.Equal(t, 6.0, got.RegularHours)
}

func TestCalculateOvertimeSkipsUnusableRecords(t *testing.T) {
	e, m := newTestEngine(t)
	saveHours(t, m, model.WorkingHoursDocument{StandardDailyHours: 8, OvertimeRate: 1.5})
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			record(7, "2024-09-02", "08:00:00", ""),         // still open
			record(7, "2024-09-03", "22:00:00", "06:00:00"), // overnight, unsupported
			record(7, "2024-09-04", "08:00:00", "16:00:00"), // the only countable day
			record(9, "2024-09-04", "08:00:00", "20:00:00"), // someone else
		},
	}))

	got, err := e.CalculateOvertime(7, "2024-09-01", "2024-09-30")
	require.NoError(t, err)
	assert.Equal(t, 8.0, got.TotalHours)
	assert.Equal(t, 0.0, got.OvertimeHours)
}

func TestCalculateOvertimeRangeIsInclusive(t *testing.T) {
	e, m := newTestEngine(t)
	saveHours(t, m, model.WorkingHoursDocument{StandardDailyHours: 8, OvertimeRate: 1.5})
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			record(7, "2024-08-31", "08:00:00", "16:00:00"),
			record(7, "2024-09-01", "08:00:00", "16:00:00"),
			record(7, "2024-09-30", "08:00:00", "16:00:00"),
			record(7, "2024-10-01", "08:00:00", "16:00:00"),
		},
	}))

	got, err := e.CalculateOvertime(7, "2024-09-01", "2024-09-30")
	require.NoError(t, err)
	assert.Equal(t, 16.0, got.TotalHours)
}

// Pushing a single day further past the threshold grows overtime by exactly
// the extra hours, and pay by extra hours times the rate.
func TestCalculateOvertimeMonotonic(t *testing.T) {
	e, m := newTestEngine(t)
	saveHours(t, m, model.WorkingHoursDocument{StandardDailyHours: 8, OvertimeRate: 1.5})

	baseline := model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			record(7, "2024-09-02", "08:00:00", "17:00:00"), // 9h, 1h OT
		},
	}
	require.NoError(t, m.Attendance.Save(baseline))
	before, err := e.CalculateOvertime(7, "2024-09-01", "2024-09-30")
	require.NoError(t, err)

	longer := model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			record(7, "2024-09-02", "08:00:00", "19:00:00"), // 11h, 3h OT
		},
	}
	require.NoError(t, m.Attendance.Save(longer))
	after, err := e.CalculateOvertime(7, "2024-09-01", "2024-09-30")
	require.NoError(t, err)

	assert.Equal(t, 2.0, after.OvertimeHours-before.OvertimeHours)
	assert.Equal(t, 3.0, after.OvertimePay-before.OvertimePay)
}

func TestCalculateOvertimeRounding(t *testing.T) {
	e, m := newTestEngine(t)
	saveHours(t, m, model.WorkingHoursDocument{StandardDailyHours: 8, OvertimeRate: 1.5})
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			record(7, "2024-09-02", "08:00:00", "16:20:00"), // 8h20m = 8.3333...
		},
	}))

	got, err := e.CalculateOvertime(7, "2024-09-01", "2024-09-30")
	require.NoError(t, err)
	assert.Equal(t, 8.33, got.TotalHours)
	assert.Equal(t, 0.33, got.OvertimeHours)
	assert.Equal(t, 0.5, got.OvertimePay)
	assert.Equal(t, 8.0, got.RegularHours)
}

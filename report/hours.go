package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

// WorkingHoursReport writes an employee's attendance rows for the inclusive
// date range together with the overtime summary for the same period.
func (g *Generator) WorkingHoursReport(employeeID int, startDate, endDate string) (string, error) {
	employee, err := g.Directory.Employee(employeeID)
	if err != nil {
		return "", err
	}
	records, err := g.Engine.EmployeeAttendance(employeeID, startDate, endDate)
	if err != nil {
		return "", err
	}
	summary, err := g.Engine.CalculateOvertime(employeeID, startDate, endDate)
	if err != nil {
		return "", err
	}

	rows := make([][]interface{}, 0, len(records)+1)
	for i, r := range records {
		rows = append(rows, []interface{}{
			i + 1, r.Date, clockOrNA(r.CheckIn), clockOrNA(r.CheckOut),
			hoursWorkedLabel(r), r.Status,
		})
	}
	rows = append(rows, []interface{}{
		"SUMMARY",
		fmt.Sprintf("%s to %s", startDate, endDate),
		fmt.Sprintf("Regular: %.2fh", summary.RegularHours),
		fmt.Sprintf("Overtime: %.2fh", summary.OvertimeHours),
		fmt.Sprintf("Total: %.2fh", summary.TotalHours),
		fmt.Sprintf("Overtime pay: %.2f", summary.OvertimePay),
	})

	f := excelize.NewFile()
	const sheet = "Attendance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}
	headers := []string{"No.", "Date", "Check-in", "Check-out", "Hours Worked", "Status"}
	if err := writeSheet(f, sheet, headers, rows); err != nil {
		f.Close()
		return "", err
	}

	path := g.reportPath("employee_hours_" + employee.Name)
	if err := save(f, path); err != nil {
		return "", err
	}
	return path, nil
}

func clockOrNA(clock *string) string {
	if clock == nil || *clock == "" {
		return "N/A"
	}
	return *clock
}

func hoursWorkedLabel(r model.AttendanceRecord) string {
	if r.CheckIn == nil || r.CheckOut == nil {
		return "N/A"
	}
	in, err := utils.ParseClock(*r.CheckIn)
	if err != nil {
		return "N/A"
	}
	out, err := utils.ParseClock(*r.CheckOut)
	if err != nil {
		return "N/A"
	}
	delta := out.Sub(in)
	if delta < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", delta.Hours())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

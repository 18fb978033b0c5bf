package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"greenwood.com/sis/attendance"
	"greenwood.com/sis/core"
	"greenwood.com/sis/directory"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

func newTestGenerator(t *testing.T) (*Generator, *core.Manager) {
	t.Helper()
	m, err := core.NewManager(t.TempDir())
	require.NoError(t, err)
	d := directory.New(m)
	g, err := NewGenerator(t.TempDir(), attendance.NewEngine(m), d)
	require.NoError(t, err)
	return g, m
}

func openSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestStudentsRoster(t *testing.T) {
	g, _ := newTestGenerator(t)

	_, err := g.Directory.AddStudent(directory.NewStudent{
		Name: "Amina Yusuf", Class: "Grade 11", DOB: "2009-03-14",
	})
	require.NoError(t, err)

	path, err := g.StudentsRoster("")
	require.NoError(t, err)

	rows := openSheet(t, path, "Students")
	require.Len(t, rows, 3) // header + seeded student + added student
	assert.Equal(t, "Full Name", rows[0][2])
	assert.Equal(t, "Michael Chen", rows[1][2])
	assert.Equal(t, "Amina Yusuf", rows[2][2])
}

func TestStudentsRosterClassFilter(t *testing.T) {
	g, _ := newTestGenerator(t)

	_, err := g.Directory.AddStudent(directory.NewStudent{
		Name: "Amina Yusuf", Class: "Grade 11", DOB: "2009-03-14",
	})
	require.NoError(t, err)

	path, err := g.StudentsRoster("Grade 11")
	require.NoError(t, err)

	rows := openSheet(t, path, "Students")
	require.Len(t, rows, 2)
	assert.Equal(t, "Amina Yusuf", rows[1][2])
}

func TestStudentResultsWorkbook(t *testing.T) {
	g, _ := newTestGenerator(t)

	require.NoError(t, g.Directory.UpdateStudentResults(1, "Term 1", "Mathematics", 92))
	require.NoError(t, g.Directory.UpdateStudentResults(1, "Term 1", "English", 74))
	require.NoError(t, g.Directory.UpdateStudentResults(1, "Term 2", "Mathematics", 55))

	path, err := g.StudentResults(1)
	require.NoError(t, err)

	rows := openSheet(t, path, "Results")
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Term", "Subject", "Score", "Grade", "Remarks"}, rows[0])
	assert.Equal(t, []string{"Term 1", "English", "74", "C", "Satisfactory"}, rows[1])
	assert.Equal(t, []string{"Term 1", "Mathematics", "92", "A", "Excellent"}, rows[2])
	assert.Equal(t, []string{"Term 2", "Mathematics", "55", "F", "Fail"}, rows[3])

	info := openSheet(t, path, "Student Info")
	require.NotEmpty(t, info)
	assert.Equal(t, []string{"Student Name", "Michael Chen"}, info[1])
}

func TestStudentResultsUnknownStudent(t *testing.T) {
	g, _ := newTestGenerator(t)

	_, err := g.StudentResults(404)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestWorkingHoursReport(t *testing.T) {
	g, m := newTestGenerator(t)

	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			{
				EmployeeID: 1, EmployeeName: "John Smith", Department: "Teaching",
				Date: "2024-09-02", CheckIn: utils.Ptr("08:00:00"),
				CheckOut: utils.Ptr("17:30:00"), Status: model.StatusPresent,
			},
			{
				EmployeeID: 1, EmployeeName: "John Smith", Department: "Teaching",
				Date: "2024-09-03", CheckIn: utils.Ptr("09:00:00"),
				CheckOut: nil, Status: model.StatusPresent,
			},
		},
	}))

	path, err := g.WorkingHoursReport(1, "2024-09-01", "2024-09-30")
	require.NoError(t, err)

	rows := openSheet(t, path, "Attendance")
	require.Len(t, rows, 4) // header + two records + summary
	assert.Equal(t, []string{"1", "2024-09-02", "08:00:00", "17:30:00", "9.50", "Present"}, rows[1])
	assert.Equal(t, "N/A", rows[2][3])
	assert.Equal(t, "SUMMARY", rows[3][0])
	assert.Contains(t, rows[3][4], "9.50")
}

func TestWorkingHoursReportUnknownEmployee(t *testing.T) {
	g, _ := newTestGenerator(t)

	_, err := g.WorkingHoursReport(404, "2024-09-01", "2024-09-30")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

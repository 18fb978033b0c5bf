package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

func TestAddStudent(t *testing.T) {
	d, _ := newTestDirectory(t)

	// Seed roster holds student 1 ("Michael Chen", Grade 10).
	id, err := d.AddStudent(NewStudent{
		Name:  "Sarah Okafor",
		Class: "Grade 9",
		DOB:   "2009-03-20",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	s, err := d.Student(2)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Okafor", s.Name)
	assert.Equal(t, "Good", s.HealthStatus)
	assert.NotEmpty(t, s.EnrollmentDate)
	assert.Greater(t, s.Age, 0)
}

func TestAddStudentDuplicateRejected(t *testing.T) {
	d, _ := newTestDirectory(t)

	_, err := d.AddStudent(NewStudent{Name: "michael chen", Class: "Grade 10"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	// Same name in a different class is fine.
	_, err = d.AddStudent(NewStudent{Name: "Michael Chen", Class: "Grade 11"})
	assert.NoError(t, err)
}

func TestAddStudentRegistersNewClass(t *testing.T) {
	d, _ := newTestDirectory(t)

	_, err := d.AddStudent(NewStudent{Name: "Lena Park", Class: "Kindergarten"})
	require.NoError(t, err)

	classes, err := d.Classes()
	require.NoError(t, err)
	assert.Contains(t, classes, "Kindergarten")
}

func TestUpdateStudentRecalculatesAge(t *testing.T) {
	d, _ := newTestDirectory(t)

	require.NoError(t, d.UpdateStudent(1, model.StudentUpdate{
		DOB:     utils.Ptr("2010-01-01"),
		Address: utils.Ptr("9 New Rd"),
	}))

	s, err := d.Student(1)
	require.NoError(t, err)
	assert.Equal(t, "9 New Rd", s.Address)
	assert.Equal(t, utils.CalculateAge("2010-01-01"), s.Age)
}

func TestRemoveStudent(t *testing.T) {
	d, _ := newTestDirectory(t)

	require.NoError(t, d.RemoveStudent(1))
	_, err := d.Student(1)
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = d.RemoveStudent(1)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSearchStudents(t *testing.T) {
	d, _ := newTestDirectory(t)
	_, err := d.AddStudent(NewStudent{Name: "Sarah Okafor", Class: "Grade 9"})
	require.NoError(t, err)

	found, err := d.SearchStudents("chen")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Michael Chen", found[0].Name)

	found, err = d.SearchStudents("  ")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestUpdateStudentResults(t *testing.T) {
	d, _ := newTestDirectory(t)

	require.NoError(t, d.UpdateStudentResults(1, "Term 1", "Math", 92))
	require.NoError(t, d.UpdateStudentResults(1, "Term 1", "Science", 78))

	results, err := d.StudentResults(1)
	require.NoError(t, err)
	assert.Equal(t, 92.0, results["Term 1"]["Math"])
	assert.Equal(t, 78.0, results["Term 1"]["Science"])

	for _, score := range []float64{-1, 101} {
		err := d.UpdateStudentResults(1, "Term 1", "Math", score)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
	}

	err = d.UpdateStudentResults(99, "Term 1", "Math", 50)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestAttendanceSummary(t *testing.T) {
	d, m := newTestDirectory(t)

	summary, err := d.AttendanceSummary(1)
	require.NoError(t, err)
	assert.Equal(t, "No attendance records", summary)

	doc, err := m.Students.Load()
	require.NoError(t, err)
	doc.Students[0].AttendanceRecord = model.AttendanceTally{Present: 3, Absent: 1, Late: 0}
	require.NoError(t, m.Students.Save(doc))

	summary, err = d.AttendanceSummary(1)
	require.NoError(t, err)
	assert.Contains(t, summary, "Michael Chen")
	assert.Contains(t, summary, "Present: 3 (75.0%)")
	assert.Contains(t, summary, "Total Days: 4")
}

func TestAcademicSummary(t *testing.T) {
	d, _ := newTestDirectory(t)

	// Seeded terms exist but hold no scores yet.
	summary, err := d.AcademicSummary(1)
	require.NoError(t, err)
	assert.Equal(t, "No academic results available", summary)

	require.NoError(t, d.UpdateStudentResults(1, "Term 1", "Science", 78.5))
	require.NoError(t, d.UpdateStudentResults(1, "Term 1", "Math", 92))
	require.NoError(t, d.UpdateStudentResults(1, "Term 2", "Math", 88))

	summary, err = d.AcademicSummary(1)
	require.NoError(t, err)
	assert.Equal(t,
		"Academic Results:\n\nTerm 1:\n  Math: 92/100\n  Science: 78.5/100\n\nTerm 2:\n  Math: 88/100",
		summary)

	_, err = d.AcademicSummary(99)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestStudentsGroupedByClass(t *testing.T) {
	d, _ := newTestDirectory(t)
	_, err := d.AddStudent(NewStudent{Name: "Aaron Bell", Class: "Grade 10"})
	require.NoError(t, err)

	grouped, err := d.StudentsGroupedByClass()
	require.NoError(t, err)
	require.Len(t, grouped["Grade 10"], 2)
	// Sorted by name inside the bucket.
	assert.Equal(t, "Aaron Bell", grouped["Grade 10"][0].Name)
	assert.Equal(t, "Michael Chen", grouped["Grade 10"][1].Name)
}

func TestImportStudentsCSV(t *testing.T) {
	d, _ := newTestDirectory(t)
	_, err := d.AddStudent(NewStudent{Name: "Aaron Bell", Class: "Grade 10"})
	require.NoError(t, err)

	rows := [][]string{
		{"name", "class", "parent_contact", "parent_email", "dob"},
		{"Sarah Okafor", "Grade 9", "555-0144", "okafor@email.com", "2009-03-20"},
		{"Lena Park", "Kindergarten", "", "", ""},
	}

	n, err := d.ImportStudentsCSV(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Import replaces the roster wholesale; the seed student and the
	// manually added one are gone, and ids continue past the old max.
	students, err := d.Students()
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Sarah Okafor", students[0].Name)
	assert.Equal(t, 3, students[0].ID)
	assert.Equal(t, "Lena Park", students[1].Name)
	assert.Equal(t, 4, students[1].ID)

	classes, err := d.Classes()
	require.NoError(t, err)
	assert.Contains(t, classes, "Kindergarten")

	_, err = d.ImportStudentsCSV([][]string{{"name", "class"}})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = d.ImportStudentsCSV([][]string{{"name", "class"}, {"", "Grade 1"}})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

package report

import (
	"github.com/xuri/excelize/v2"

	"greenwood.com/sis/model"
)

var rosterHeaders = []string{
	"No.", "Student ID", "Full Name", "Class", "Age", "Date of Birth",
	"Parent Contact", "Parent Email", "Health Status", "Allergies",
	"Address", "Emergency Contact", "Enrollment Date",
}

// StudentsRoster writes the full student roster, optionally restricted to
// one class, and returns the generated file path.
func (g *Generator) StudentsRoster(classFilter string) (string, error) {
	var (
		students []model.Student
		err      error
	)
	if classFilter != "" {
		students, err = g.Directory.StudentsByClass(classFilter)
	} else {
		students, err = g.Directory.Students()
	}
	if err != nil {
		return "", err
	}

	rows := make([][]interface{}, 0, len(students))
	for i, s := range students {
		rows = append(rows, []interface{}{
			i + 1, s.ID, s.Name, s.Class, s.Age, s.DOB,
			s.ParentContact, s.ParentEmail, s.HealthStatus, s.Allergies,
			s.Address, s.EmergencyContact, s.EnrollmentDate,
		})
	}

	f := excelize.NewFile()
	const sheet = "Students"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}
	if err := writeSheet(f, sheet, rosterHeaders, rows); err != nil {
		f.Close()
		return "", err
	}

	base := "all_students"
	if classFilter != "" {
		base = "students_" + classFilter
	}
	path := g.reportPath(base)
	if err := save(f, path); err != nil {
		return "", err
	}
	return path, nil
}

// StudentResults writes one student's academic results with letter grades
// and remarks, plus a second sheet of identifying details.
func (g *Generator) StudentResults(studentID int) (string, error) {
	student, err := g.Directory.Student(studentID)
	if err != nil {
		return "", err
	}

	var rows [][]interface{}
	for _, term := range sortedKeys(student.AcademicResults) {
		subjects := student.AcademicResults[term]
		for _, subject := range sortedKeys(subjects) {
			score := subjects[subject]
			rows = append(rows, []interface{}{
				term, subject, score, gradeFromScore(score), remarksFromScore(score),
			})
		}
	}

	f := excelize.NewFile()
	const resultsSheet = "Results"
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return "", err
	}
	if err := writeSheet(f, resultsSheet,
		[]string{"Term", "Subject", "Score", "Grade", "Remarks"}, rows); err != nil {
		f.Close()
		return "", err
	}

	const infoSheet = "Student Info"
	if _, err := f.NewSheet(infoSheet); err != nil {
		f.Close()
		return "", err
	}
	info := [][]interface{}{
		{"Student Name", student.Name},
		{"Student ID", student.ID},
		{"Class", student.Class},
		{"Date of Birth", student.DOB},
		{"Age", student.Age},
	}
	if err := writeSheet(f, infoSheet, []string{"Field", "Value"}, info); err != nil {
		f.Close()
		return "", err
	}

	path := g.reportPath("results_" + student.Name)
	if err := save(f, path); err != nil {
		return "", err
	}
	return path, nil
}

func gradeFromScore(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func remarksFromScore(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Satisfactory"
	case score >= 60:
		return "Needs Improvement"
	default:
		return "Fail"
	}
}

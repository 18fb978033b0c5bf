package directory

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

// NewStudent carries the caller-supplied fields for enrollment. Age and
// enrollment date are derived, never accepted from outside.
type NewStudent struct {
	Name             string
	Class            string
	ParentContact    string
	ParentEmail      string
	DOB              string
	Address          string
	HealthStatus     string
	Allergies        string
	EmergencyContact string
}

func (d *Directory) Students() ([]model.Student, error) {
	doc, err := d.db.Students.Load()
	if err != nil {
		return nil, err
	}
	return doc.Students, nil
}

func (d *Directory) StudentsByClass(class string) ([]model.Student, error) {
	doc, err := d.db.Students.Load()
	if err != nil {
		return nil, err
	}
	return utils.Filter(doc.Students, func(s model.Student) bool {
		return s.Class == class
	}), nil
}

func (d *Directory) Classes() ([]string, error) {
	doc, err := d.db.Students.Load()
	if err != nil {
		return nil, err
	}
	return doc.Classes, nil
}

func (d *Directory) Student(studentID int) (model.Student, error) {
	doc, err := d.db.Students.Load()
	if err != nil {
		return model.Student{}, err
	}
	s := utils.Find(doc.Students, func(s model.Student) bool { return s.ID == studentID })
	if s == nil {
		return model.Student{}, fmt.Errorf("%w: student %d", core.ErrNotFound, studentID)
	}
	return *s, nil
}

// AddStudent enrolls a student. A student with the same name in the same
// class is rejected; an unseen class label is added to the class list.
func (d *Directory) AddStudent(n NewStudent) (int, error) {
	if n.Name == "" || n.Class == "" {
		return 0, fmt.Errorf("%w: name and class are required", core.ErrInvalidInput)
	}
	if n.HealthStatus == "" {
		n.HealthStatus = "Good"
	}

	var newID int
	err := d.db.Students.Transact(func(doc *model.StudentsDocument) error {
		for i := range doc.Students {
			s := &doc.Students[i]
			if strings.EqualFold(s.Name, n.Name) && s.Class == n.Class {
				return fmt.Errorf("%w: student %q already exists in %s",
					core.ErrInvalidInput, n.Name, n.Class)
			}
			if s.ID >= newID {
				newID = s.ID
			}
		}
		newID++

		if !slices.Contains(doc.Classes, n.Class) {
			doc.Classes = append(doc.Classes, n.Class)
		}

		results := map[string]map[string]float64{}
		doc.Students = append(doc.Students, model.Student{
			ID:                newID,
			Name:              n.Name,
			Class:             n.Class,
			ParentContact:     n.ParentContact,
			ParentEmail:       n.ParentEmail,
			DOB:               n.DOB,
			Age:               utils.CalculateAge(n.DOB),
			Address:           n.Address,
			HealthStatus:      n.HealthStatus,
			Allergies:         n.Allergies,
			EmergencyContact:  n.EmergencyContact,
			EnrollmentDate:    utils.Today(),
			AcademicResults:   results,
			AttendanceRecord:  model.AttendanceTally{},
			MonthlyAttendance: map[string]model.MonthlyAttendance{},
			TermAttendance:    map[string]model.TermAttendance{},
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

func (d *Directory) UpdateStudent(studentID int, update model.StudentUpdate) error {
	return d.db.Students.Transact(func(doc *model.StudentsDocument) error {
		for i := range doc.Students {
			if doc.Students[i].ID == studentID {
				doc.Students[i].Apply(update)
				if update.DOB != nil {
					doc.Students[i].Age = utils.CalculateAge(*update.DOB)
				}
				return nil
			}
		}
		return fmt.Errorf("%w: student %d", core.ErrNotFound, studentID)
	})
}

func (d *Directory) RemoveStudent(studentID int) error {
	return d.db.Students.Transact(func(doc *model.StudentsDocument) error {
		kept := utils.Filter(doc.Students, func(s model.Student) bool {
			return s.ID != studentID
		})
		if len(kept) == len(doc.Students) {
			return fmt.Errorf("%w: student %d", core.ErrNotFound, studentID)
		}
		doc.Students = kept
		return nil
	})
}

func (d *Directory) SearchStudents(query string) ([]model.Student, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []model.Student{}, nil
	}
	doc, err := d.db.Students.Load()
	if err != nil {
		return nil, err
	}
	return utils.Filter(doc.Students, func(s model.Student) bool {
		return strings.Contains(strings.ToLower(s.Name), query)
	}), nil
}

// StudentsGroupedByClass returns students bucketed by class label, each
// bucket sorted by name. Classes with no students are omitted.
func (d *Directory) StudentsGroupedByClass() (map[string][]model.Student, error) {
	doc, err := d.db.Students.Load()
	if err != nil {
		return nil, err
	}
	grouped := utils.GroupBy(doc.Students, func(s model.Student) string { return s.Class })
	for _, students := range grouped {
		sort.Slice(students, func(i, j int) bool {
			return students[i].Name < students[j].Name
		})
	}
	return grouped, nil
}

// UpdateStudentResults records a subject score for a term. Scores live on a
// 0-100 scale.
func (d *Directory) UpdateStudentResults(studentID int, term, subject string, score float64) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: score must be between 0 and 100", core.ErrInvalidInput)
	}
	if term == "" || subject == "" {
		return fmt.Errorf("%w: term and subject are required", core.ErrInvalidInput)
	}

	return d.db.Students.Transact(func(doc *model.StudentsDocument) error {
		for i := range doc.Students {
			s := &doc.Students[i]
			if s.ID != studentID {
				continue
			}
			if s.AcademicResults == nil {
				s.AcademicResults = map[string]map[string]float64{}
			}
			if s.AcademicResults[term] == nil {
				s.AcademicResults[term] = map[string]float64{}
			}
			s.AcademicResults[term][subject] = score
			return nil
		}
		return fmt.Errorf("%w: student %d", core.ErrNotFound, studentID)
	})
}

func (d *Directory) StudentResults(studentID int) (map[string]map[string]float64, error) {
	s, err := d.Student(studentID)
	if err != nil {
		return nil, err
	}
	if s.AcademicResults == nil {
		return map[string]map[string]float64{}, nil
	}
	return s.AcademicResults, nil
}

// AttendanceSummary renders the cumulative tally as percentages for display.
func (d *Directory) AttendanceSummary(studentID int) (string, error) {
	s, err := d.Student(studentID)
	if err != nil {
		return "", err
	}
	tally := s.AttendanceRecord
	total := tally.Total()
	if total == 0 {
		return "No attendance records", nil
	}
	pct := func(n int) float64 { return float64(n) / float64(total) * 100 }
	var b strings.Builder
	fmt.Fprintf(&b, "Attendance Summary for %s:\n", s.Name)
	fmt.Fprintf(&b, "Present: %d (%.1f%%)\n", tally.Present, pct(tally.Present))
	fmt.Fprintf(&b, "Absent: %d (%.1f%%)\n", tally.Absent, pct(tally.Absent))
	fmt.Fprintf(&b, "Late: %d (%.1f%%)\n", tally.Late, pct(tally.Late))
	fmt.Fprintf(&b, "Total Days: %d", total)
	return b.String(), nil
}

// AcademicSummary renders recorded scores per term for display. Terms with
// no scores yet are skipped.
func (d *Directory) AcademicSummary(studentID int) (string, error) {
	s, err := d.Student(studentID)
	if err != nil {
		return "", err
	}
	var terms []string
	for term, subjects := range s.AcademicResults {
		if len(subjects) > 0 {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return "No academic results available", nil
	}
	sort.Strings(terms)

	var b strings.Builder
	b.WriteString("Academic Results:\n")
	for _, term := range terms {
		subjects := s.AcademicResults[term]
		names := make([]string, 0, len(subjects))
		for name := range subjects {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "\n%s:\n", term)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %g/100\n", name, subjects[name])
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// ImportStudentsCSV replaces the roster from CSV rows of
// name,class,parent_contact[,parent_email[,dob]]. The first row is a header.
func (d *Directory) ImportStudentsCSV(rows [][]string) (int, error) {
	if len(rows) < 2 {
		return 0, fmt.Errorf("%w: no student rows", core.ErrInvalidInput)
	}

	imported := 0
	err := d.db.Students.Transact(func(doc *model.StudentsDocument) error {
		// Ids continue from the outgoing roster's max so references held
		// elsewhere (attendance tallies, results exports) never collide.
		nextID := 0
		for i := range doc.Students {
			if doc.Students[i].ID > nextID {
				nextID = doc.Students[i].ID
			}
		}

		var incoming []model.Student
		for i, row := range rows {
			if i == 0 {
				continue
			}
			if len(row) < 2 || row[0] == "" || row[1] == "" {
				return fmt.Errorf("%w: row %d must have name and class", core.ErrInvalidInput, i)
			}
			nextID++
			s := model.Student{
				ID:                nextID,
				Name:              row[0],
				Class:             row[1],
				HealthStatus:      "Good",
				EnrollmentDate:    utils.Today(),
				AcademicResults:   map[string]map[string]float64{},
				MonthlyAttendance: map[string]model.MonthlyAttendance{},
				TermAttendance:    map[string]model.TermAttendance{},
			}
			if len(row) > 2 {
				s.ParentContact = row[2]
			}
			if len(row) > 3 {
				s.ParentEmail = row[3]
			}
			if len(row) > 4 {
				s.DOB = row[4]
				s.Age = utils.CalculateAge(row[4])
			}
			if !slices.Contains(doc.Classes, s.Class) {
				doc.Classes = append(doc.Classes, s.Class)
			}
			incoming = append(incoming, s)
		}
		doc.Students = incoming
		imported = len(incoming)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

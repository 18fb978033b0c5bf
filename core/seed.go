package core

import (
	"golang.org/x/crypto/bcrypt"

	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

// Seed documents for a fresh install. These mirror what the school gets on
// first launch: a handful of staff accounts, the grade ladder, and standard
// working hours.

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func SeedEmployees() model.EmployeesDocument {
	return model.EmployeesDocument{
		Departments: []string{"Teaching", "Administration", "Support Staff", "Management", "Library"},
		Employees: []model.Employee{
			{
				ID:             1,
				Name:           "John Smith",
				Department:     "Teaching",
				AssignedGrades: []string{"Grade 10", "Grade 11"},
				Role:           "Math Teacher",
				Password:       mustHash("teacher123"),
				Email:          "john.smith@school.edu",
				Phone:          "555-0101",
				Address:        "123 Main St",
				WorkingHours:   &model.WorkingHours{Daily: 8, Weekly: 40},
			},
			{
				ID:             2,
				Name:           "Jane Doe",
				Department:     "Teaching",
				AssignedGrades: []string{"Grade 9", "Grade 12"},
				Role:           "Science Teacher",
				Password:       mustHash("teacher123"),
				Email:          "jane.doe@school.edu",
				Phone:          "555-0102",
				Address:        "456 Oak Ave",
				WorkingHours:   &model.WorkingHours{Daily: 8, Weekly: 40},
			},
			{
				ID:             3,
				Name:           "Bob Johnson",
				Department:     "Administration",
				AssignedGrades: []string{},
				Role:           "Registrar",
				Password:       mustHash("admin123"),
				Email:          "bob.johnson@school.edu",
				Phone:          "555-0103",
				Address:        "789 Pine Rd",
				WorkingHours:   &model.WorkingHours{Daily: 8, Weekly: 40},
			},
		},
	}
}

func SeedAttendance() model.AttendanceDocument {
	return model.AttendanceDocument{Attendance: []model.AttendanceRecord{}}
}

func SeedSettings() model.SettingsDocument {
	return model.SettingsDocument{
		AdminPassword: mustHash("admin123"),
		AutoBackup:    true,
		BackupDays:    7,
		SchoolName:    "Greenwood High School",
		SchoolYear:    "2024-2025",
		Terms:         []string{"Term 1", "Term 2", "Term 3"},
		Subjects:      []string{"Math", "Science", "English", "History", "Geography", "Art", "Music", "PE"},
		StandardWorkingHours: model.StandardHours{
			Daily:        8,
			Weekly:       40,
			OvertimeRate: 1.5,
		},
		TermDaysDefault: 60,
		TermDays:        map[string]int{},
	}
}

func SeedStudents() model.StudentsDocument {
	return model.StudentsDocument{
		Classes: []string{
			"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6",
			"Grade 7", "Grade 8", "Grade 9", "Grade 10", "Grade 11", "Grade 12",
		},
		Students: []model.Student{
			{
				ID:               1,
				Name:             "Michael Chen",
				Class:            "Grade 10",
				ParentContact:    "555-0101",
				ParentEmail:      "parent.chen@email.com",
				DOB:              "2008-05-15",
				Age:              utils.CalculateAge("2008-05-15"),
				Address:          "123 Student St, City",
				HealthStatus:     "Good",
				Allergies:        "None",
				EmergencyContact: "555-9999",
				EnrollmentDate:   utils.Today(),
				AcademicResults: map[string]map[string]float64{
					"Term 1": {}, "Term 2": {}, "Term 3": {},
				},
				AttendanceRecord:  model.AttendanceTally{},
				MonthlyAttendance: map[string]model.MonthlyAttendance{},
				TermAttendance:    map[string]model.TermAttendance{},
			},
		},
	}
}

func SeedCorrections() model.CorrectionRequestsDocument {
	return model.CorrectionRequestsDocument{Requests: []model.CorrectionRequest{}}
}

func SeedDashboard() model.DashboardDocument {
	return model.DashboardDocument{
		Announcements: []model.Announcement{
			{
				ID:          1,
				Title:       "Welcome to New School Year",
				Content:     "Welcome all staff and students to the 2024-2025 academic year!",
				Author:      "Admin",
				AuthorID:    0,
				Date:        utils.NowISO(),
				Priority:    "High",
				VisibleTo:   []string{"All"},
				Attachments: []string{},
				ReadBy:      []int{},
			},
		},
		Events: []model.Event{},
	}
}

func SeedWorkingHours() model.WorkingHoursDocument {
	return model.WorkingHoursDocument{
		StandardDailyHours:  8,
		StandardWeeklyHours: 40,
		OvertimeRate:        1.5,
		EmployeeSettings:    map[string]model.EmployeeHours{},
	}
}

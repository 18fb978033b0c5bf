package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"greenwood.com/sis/model"
)

// Manager owns the seven document stores that make up the school database.
// All packages read and write through it; nothing caches store state.
type Manager struct {
	DataDir string

	Employees    *Store[model.EmployeesDocument]
	Attendance   *Store[model.AttendanceDocument]
	Settings     *Store[model.SettingsDocument]
	Students     *Store[model.StudentsDocument]
	Corrections  *Store[model.CorrectionRequestsDocument]
	Dashboard    *Store[model.DashboardDocument]
	WorkingHours *Store[model.WorkingHoursDocument]
}

func NewManager(dataDir string) (*Manager, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir %s: %v", ErrPersistence, dataDir, err)
	}

	m := &Manager{
		DataDir:      dataDir,
		Employees:    NewStore(filepath.Join(dataDir, "employees.json"), SeedEmployees),
		Attendance:   NewStore(filepath.Join(dataDir, "database.json"), SeedAttendance),
		Settings:     NewStore(filepath.Join(dataDir, "settings.json"), SeedSettings),
		Students:     NewStore(filepath.Join(dataDir, "students.json"), SeedStudents),
		Corrections:  NewStore(filepath.Join(dataDir, "correction_requests.json"), SeedCorrections),
		Dashboard:    NewStore(filepath.Join(dataDir, "dashboard.json"), SeedDashboard),
		WorkingHours: NewStore(filepath.Join(dataDir, "working_hours.json"), SeedWorkingHours),
	}
	return m, nil
}

// Init materializes the seed documents for any store file that does not
// exist yet, so a fresh deployment starts with a usable database.
func (m *Manager) Init() error {
	if err := initStore(m.Employees); err != nil {
		return err
	}
	if err := initStore(m.Attendance); err != nil {
		return err
	}
	if err := initStore(m.Settings); err != nil {
		return err
	}
	if err := initStore(m.Students); err != nil {
		return err
	}
	if err := initStore(m.Corrections); err != nil {
		return err
	}
	if err := initStore(m.Dashboard); err != nil {
		return err
	}
	return initStore(m.WorkingHours)
}

func initStore[T any](s *Store[T]) error {
	if _, err := os.Stat(s.Path()); err == nil {
		return nil
	}
	doc, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(doc)
}

// CreateBackup snapshots the attendance database into the backups
// directory. The uuid fragment keeps two backups taken within the same
// second from colliding.
func (m *Manager) CreateBackup() (string, error) {
	doc, err := m.Attendance.Load()
	if err != nil {
		return "", err
	}

	backupDir := filepath.Join(m.DataDir, "backups")
	name := fmt.Sprintf("backup_%s_%s.json",
		time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	path := filepath.Join(backupDir, name)

	backup := NewStore(path, func() model.AttendanceDocument { return model.AttendanceDocument{} })
	if err := backup.Save(doc); err != nil {
		return "", err
	}
	return path, nil
}

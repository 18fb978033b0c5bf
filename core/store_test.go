package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	return m
}

func TestStoreRoundTrip(t *testing.T) {
	m := newTestManager(t)

	doc := model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			{
				EmployeeID:   7,
				EmployeeName: "John Smith",
				Department:   "Teaching",
				Date:         "2024-09-02",
				CheckIn:      utils.Ptr("08:00:00"),
				CheckOut:     utils.Ptr("17:30:00"),
				Status:       model.StatusPresent,
				Timestamp:    "2024-09-02T08:00:00",
			},
			{
				EmployeeID:   8,
				EmployeeName: "Jane Doe",
				Department:   "Teaching",
				Date:         "2024-09-02",
				CheckIn:      utils.Ptr("08:15:00"),
				CheckOut:     nil,
				Status:       model.StatusLate,
				Timestamp:    "2024-09-02T08:15:00",
			},
		},
	}

	require.NoError(t, m.Attendance.Save(doc))

	loaded, err := m.Attendance.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
	assert.Len(t, loaded.Attendance, 2)
	assert.Equal(t, 7, loaded.Attendance[0].EmployeeID)
	assert.Nil(t, loaded.Attendance[1].CheckOut)
}

func TestStoreLoadsSeedWhenMissing(t *testing.T) {
	m := newTestManager(t)

	doc, err := m.Employees.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Employees, 3)
	assert.Contains(t, doc.Departments, "Teaching")

	settings, err := m.Settings.Load()
	require.NoError(t, err)
	assert.Equal(t, 60, settings.TermDaysDefault)
	assert.Equal(t, 1.5, settings.StandardWorkingHours.OvertimeRate)
}

func TestStoreCorruptFileFails(t *testing.T) {
	m := newTestManager(t)
	path := m.Students.Path()
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := m.Students.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestStoreTransact(t *testing.T) {
	m := newTestManager(t)

	err := m.Corrections.Transact(func(doc *model.CorrectionRequestsDocument) error {
		doc.Requests = append(doc.Requests, model.CorrectionRequest{
			ID:         1,
			EmployeeID: 3,
			Status:     model.RequestPending,
		})
		return nil
	})
	require.NoError(t, err)

	doc, err := m.Corrections.Load()
	require.NoError(t, err)
	require.Len(t, doc.Requests, 1)
	assert.Equal(t, model.RequestPending, doc.Requests[0].Status)
}

func TestStoreTransactErrorDiscardsMutation(t *testing.T) {
	m := newTestManager(t)

	err := m.Corrections.Transact(func(doc *model.CorrectionRequestsDocument) error {
		doc.Requests = append(doc.Requests, model.CorrectionRequest{ID: 99})
		return ErrInvalidInput
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	doc, err := m.Corrections.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Requests)
}

func TestManagerInitMaterializesFiles(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Init())

	for _, name := range []string{
		"employees.json", "database.json", "settings.json", "students.json",
		"correction_requests.json", "dashboard.json", "working_hours.json",
	} {
		_, err := os.Stat(filepath.Join(m.DataDir, name))
		assert.NoError(t, err, name)
	}
}

func TestCreateBackup(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{{EmployeeID: 1, Date: "2024-09-02"}},
	}))

	path, err := m.CreateBackup()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "backup_"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "2024-09-02")
}

package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwood.com/sis/core"
	"greenwood.com/sis/model"
	"greenwood.com/sis/utils"
)

func TestSubmitCorrectionRequest(t *testing.T) {
	e, m := newTestEngine(t)
	require.NoError(t, m.Corrections.Save(model.CorrectionRequestsDocument{
		Requests: []model.CorrectionRequest{{ID: 4, Status: model.RequestApproved}},
	}))

	id, err := e.SubmitCorrectionRequest(3, "Bob Johnson", "2024-09-01", model.StatusAbsent,
		"Forgot to check in", model.CorrectionPatch{Status: utils.Ptr(model.StatusPresent)})
	require.NoError(t, err)
	assert.Equal(t, 5, id)

	reqs, err := e.CorrectionRequests(3)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, model.RequestPending, reqs[0].Status)
	assert.Equal(t, "Bob Johnson", reqs[0].EmployeeName)
	assert.Equal(t, "2024-09-01", reqs[0].OriginalDate)
	assert.NotEmpty(t, reqs[0].SubmittedDate)
	assert.Nil(t, reqs[0].ProcessedBy)
}

func TestSubmitCorrectionRequestValidation(t *testing.T) {
	e, _ := newTestEngine(t)

	tests := []struct {
		name  string
		date  string
		patch model.CorrectionPatch
	}{
		{"empty patch", "2024-09-01", model.CorrectionPatch{}},
		{"bad status", "2024-09-01", model.CorrectionPatch{Status: utils.Ptr("Vacation")}},
		{"bad check_in", "2024-09-01", model.CorrectionPatch{CheckIn: utils.Ptr("8am")}},
		{"bad check_out", "2024-09-01", model.CorrectionPatch{CheckOut: utils.Ptr("25:00:00")}},
		{"bad date", "09/01/2024", model.CorrectionPatch{Status: utils.Ptr(model.StatusPresent)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.SubmitCorrectionRequest(3, "Bob Johnson", tt.date, model.StatusAbsent, "r", tt.patch)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestApproveAppliesCorrection(t *testing.T) {
	e, m := newTestEngine(t)
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{
			record(3, "2024-09-01", "", ""),
		},
	}))

	id, err := e.SubmitCorrectionRequest(3, "Bob Johnson", "2024-09-01", model.StatusAbsent,
		"Forgot to check in", model.CorrectionPatch{
			Status:  utils.Ptr(model.StatusPresent),
			CheckIn: utils.Ptr("08:05:00"),
		})
	require.NoError(t, err)

	require.NoError(t, e.ProcessCorrectionRequest(id, model.RequestApproved, "Admin", "ok"))

	reqs, err := e.CorrectionRequests(3)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, model.RequestApproved, reqs[0].Status)
	require.NotNil(t, reqs[0].ProcessedBy)
	assert.Equal(t, "Admin", *reqs[0].ProcessedBy)
	assert.Equal(t, "ok", reqs[0].Notes)

	recs, err := e.EmployeeAttendance(3, "", "")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, model.StatusPresent, recs[0].Status)
	require.NotNil(t, recs[0].CheckIn)
	assert.Equal(t, "08:05:00", *recs[0].CheckIn)
	assert.True(t, recs[0].CorrectionApplied)
	assert.NotEmpty(t, recs[0].CorrectionDate)
}

func TestRejectLeavesAttendanceUntouched(t *testing.T) {
	e, m := newTestEngine(t)
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{record(3, "2024-09-01", "09:40:00", "17:00:00")},
	}))

	id, err := e.SubmitCorrectionRequest(3, "Bob Johnson", "2024-09-01", model.StatusLate,
		"Traffic", model.CorrectionPatch{Status: utils.Ptr(model.StatusPresent)})
	require.NoError(t, err)

	require.NoError(t, e.ProcessCorrectionRequest(id, model.RequestRejected, "Admin", "no"))

	recs, err := e.EmployeeAttendance(3, "", "")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.False(t, recs[0].CorrectionApplied)
	assert.Equal(t, model.StatusPresent, recs[0].Status)
}

func TestTerminalRequestCannotBeReprocessed(t *testing.T) {
	e, m := newTestEngine(t)
	require.NoError(t, m.Attendance.Save(model.AttendanceDocument{
		Attendance: []model.AttendanceRecord{record(3, "2024-09-01", "", "")},
	}))

	id, err := e.SubmitCorrectionRequest(3, "Bob Johnson", "2024-09-01", model.StatusAbsent,
		"r", model.CorrectionPatch{Status: utils.Ptr(model.StatusPresent)})
	require.NoError(t, err)
	require.NoError(t, e.ProcessCorrectionRequest(id, model.RequestApproved, "Admin", ""))

	for _, decision := range []string{model.RequestApproved, model.RequestRejected} {
		err := e.ProcessCorrectionRequest(id, decision, "Admin", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidState)
	}
}

func TestApproveWithoutAttendanceRecordFails(t *testing.T) {
	e, _ := newTestEngine(t)

	id, err := e.SubmitCorrectionRequest(3, "Bob Johnson", "2024-09-01", model.StatusAbsent,
		"r", model.CorrectionPatch{Status: utils.Ptr(model.StatusPresent)})
	require.NoError(t, err)

	err = e.ProcessCorrectionRequest(id, model.RequestApproved, "Admin", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)

	// The request must remain Pending so it can be retried or rejected.
	reqs, err := e.CorrectionRequests(3)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, model.RequestPending, reqs[0].Status)
}

func TestProcessUnknownRequestAndDecision(t *testing.T) {
	e, _ := newTestEngine(t)

	err := e.ProcessCorrectionRequest(123, model.RequestApproved, "Admin", "")
	assert.ErrorIs(t, err, core.ErrNotFound)

	id, err := e.SubmitCorrectionRequest(3, "Bob Johnson", "2024-09-01", model.StatusAbsent,
		"r", model.CorrectionPatch{Status: utils.Ptr(model.StatusPresent)})
	require.NoError(t, err)

	err = e.ProcessCorrectionRequest(id, "Maybe", "Admin", "")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

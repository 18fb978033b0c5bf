package client

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenwood.com/sis/attendance"
	"greenwood.com/sis/core"
	"greenwood.com/sis/directory"
	"greenwood.com/sis/model"
	"greenwood.com/sis/report"
	"greenwood.com/sis/utils"
	"greenwood.com/sis/web/handlers"
	"greenwood.com/sis/web/middlewares"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := core.NewManager(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, db.Init())

	engine := attendance.NewEngine(db)
	dir := directory.New(db)
	reports, err := report.NewGenerator(t.TempDir(), engine, dir)
	require.NoError(t, err)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	ep := handlers.NewEndpoint(db, engine, dir, reports, log)

	r := gin.New()
	r.GET("/api/students", ep.ListStudents)
	r.GET("/api/students/:id", ep.GetStudent)
	r.GET("/api/search/students", ep.SearchStudents)
	r.POST("/api/checkin", ep.CheckIn)
	r.POST("/api/checkout", ep.CheckOut)
	r.GET("/api/attendance", ep.ListAttendance)
	r.GET("/api/employee/:id/overtime", ep.EmployeeOvertime)
	r.POST("/api/corrections", ep.SubmitCorrection)
	r.GET("/api/corrections", ep.ListCorrections)

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AdminPassword(dir))
	admin.POST("/corrections/:id/process", ep.ProcessCorrection)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestStudentEndpoint(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, "")

	students, err := c.Students.List("")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Michael Chen", students[0].Name)

	student, err := c.Students.Get(students[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Grade 10", student.Class)

	found, err := c.Students.Search("chen")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = c.Students.Get(404)
	assert.Error(t, err)
}

func TestAttendanceEndpoint(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, "")

	require.NoError(t, c.Attendance.CheckIn(1))
	assert.Error(t, c.Attendance.CheckIn(1)) // already open

	records, err := c.Attendance.ByDate(utils.Today())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].EmployeeID)

	require.NoError(t, c.Attendance.CheckOut(1))
}

func TestCorrectionEndpoint(t *testing.T) {
	srv := newTestServer(t)
	admin := New(srv.URL, "admin123")

	require.NoError(t, admin.Attendance.CheckIn(1))

	id, err := admin.Corrections.Submit(CorrectionSubmission{
		EmployeeID:   1,
		EmployeeName: "John Smith",
		OriginalDate: utils.Today(),
		Reason:       "device missed the checkout",
		Patch:        model.CorrectionPatch{CheckOut: utils.Ptr("17:00:00")},
	})
	require.NoError(t, err)
	require.Equal(t, 1, id)

	require.NoError(t, admin.Corrections.Process(id, model.RequestApproved, "Admin", ""))

	requests, err := admin.Corrections.List(1)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, model.RequestApproved, requests[0].Status)

	// wrong secret is rejected before the engine sees the request
	outsider := New(srv.URL, "wrong")
	err = outsider.Corrections.Process(id, model.RequestRejected, "Admin", "")
	assert.Error(t, err)
}

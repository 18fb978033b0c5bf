package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenwood.com/sis/model"
	"greenwood.com/sis/web/common"
)

// CheckIn opens today's attendance record for the employee. A second
// check-in while one is open is rejected.
func (ep *Endpoint) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	emp, err := ep.Directory.Employee(req.EmployeeID)
	if err != nil {
		ep.fail(c, err)
		return
	}
	if err := ep.Engine.RecordCheckIn(emp.ID, emp.Name, emp.Department); err != nil {
		ep.fail(c, err)
		return
	}
	ep.Log.WithField("employee_id", emp.ID).Info("checked in")
	c.JSON(http.StatusOK, common.NewMessageResponse("%s checked in", emp.Name))
}

func (ep *Endpoint) CheckOut(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Engine.RecordCheckOut(req.EmployeeID); err != nil {
		ep.fail(c, err)
		return
	}
	ep.Log.WithField("employee_id", req.EmployeeID).Info("checked out")
	c.JSON(http.StatusOK, common.NewMessageResponse("employee %d checked out", req.EmployeeID))
}

func (ep *Endpoint) HasCheckedInToday(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	checked, err := ep.Engine.HasCheckedInToday(id)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"checked_in": checked}))
}

// ListAttendance returns records for ?date= or the inclusive
// ?start=..&end=.. range; with no filters it returns today's records.
func (ep *Endpoint) ListAttendance(c *gin.Context) {
	var (
		records []model.AttendanceRecord
		err     error
	)
	switch {
	case c.Query("date") != "":
		records, err = ep.Engine.AttendanceByDate(c.Query("date"))
	case c.Query("start") != "" && c.Query("end") != "":
		records, err = ep.Engine.AttendanceByRange(c.Query("start"), c.Query("end"))
	default:
		records, err = ep.Engine.TodayAttendance()
	}
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(records, len(records)))
}

func (ep *Endpoint) EmployeeAttendance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	records, err := ep.Engine.EmployeeAttendance(id, c.Query("start"), c.Query("end"))
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(records, len(records)))
}

func (ep *Endpoint) EmployeeOvertime(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("start and end query params are required"))
		return
	}
	summary, err := ep.Engine.CalculateOvertime(id, start, end)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(summary))
}

func (ep *Endpoint) MarkStudentAttendance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Engine.MarkStudentAttendance(id, req.Status); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("attendance recorded as %s", req.Status))
}

func (ep *Endpoint) SaveMonthlyAttendance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req MonthlyAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Engine.SaveStudentMonthlyAttendance(id, req.MonthKey, req.PresentDays); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("monthly attendance saved"))
}

func (ep *Endpoint) GetMonthlyAttendance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("month query param is required"))
		return
	}
	monthly, err := ep.Engine.StudentMonthlyAttendance(id, month)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(monthly))
}

func (ep *Endpoint) SaveTermAttendance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req TermAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Engine.SaveStudentTermAttendance(id, req.TermKey, *req.PresentDays); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("term attendance saved"))
}

func (ep *Endpoint) StudentAttendanceSummary(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	summary, err := ep.Directory.AttendanceSummary(id)
	if err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"summary": summary}))
}

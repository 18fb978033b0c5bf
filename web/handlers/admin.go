package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenwood.com/sis/model"
	"greenwood.com/sis/web/common"
)

// SystemStats is the dashboard snapshot.
type SystemStats struct {
	TotalEmployees int            `json:"total_employees"`
	TotalStudents  int            `json:"total_students"`
	PresentToday   int            `json:"present_today"`
	LateToday      int            `json:"late_today"`
	ClassCounts    map[string]int `json:"class_counts"`
	TotalClasses   int            `json:"total_classes"`
}

func (ep *Endpoint) GetStats(c *gin.Context) {
	employees, err := ep.Directory.Employees()
	if err != nil {
		ep.fail(c, err)
		return
	}
	students, err := ep.Directory.Students()
	if err != nil {
		ep.fail(c, err)
		return
	}
	classes, err := ep.Directory.Classes()
	if err != nil {
		ep.fail(c, err)
		return
	}
	today, err := ep.Engine.TodayAttendance()
	if err != nil {
		ep.fail(c, err)
		return
	}

	stats := SystemStats{
		TotalEmployees: len(employees),
		TotalStudents:  len(students),
		ClassCounts:    map[string]int{},
		TotalClasses:   len(classes),
	}
	for _, r := range today {
		switch r.Status {
		case model.StatusPresent:
			stats.PresentToday++
		case model.StatusLate:
			stats.LateToday++
		}
	}
	for _, class := range classes {
		stats.ClassCounts[class] = 0
	}
	for _, s := range students {
		stats.ClassCounts[s.Class]++
	}

	info, err := ep.Directory.SchoolInfo()
	if err != nil {
		ep.fail(c, err)
		return
	}
	terms, err := ep.Directory.Terms()
	if err != nil {
		ep.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"stats":       stats,
		"school_info": info,
		"terms":       terms,
	}))
}

func (ep *Endpoint) GetSettings(c *gin.Context) {
	settings, err := ep.Directory.Settings()
	if err != nil {
		ep.fail(c, err)
		return
	}
	// never serve the admin hash
	settings.AdminPassword = ""
	c.JSON(http.StatusOK, common.NewSuccessResponse(settings))
}

func (ep *Endpoint) ChangeAdminPassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.ChangeAdminPassword(req.OldPassword, req.NewPassword); err != nil {
		ep.fail(c, err)
		return
	}
	ep.Log.Warn("admin password changed")
	c.JSON(http.StatusOK, common.NewMessageResponse("admin password changed"))
}

func (ep *Endpoint) SetTermDays(c *gin.Context) {
	var req TermDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Directory.SetTermDays(req.TermKey, req.Days); err != nil {
		ep.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewMessageResponse("%s set to %d days", req.TermKey, req.Days))
}

// CreateBackup snapshots the attendance database and reports the file path.
func (ep *Endpoint) CreateBackup(c *gin.Context) {
	path, err := ep.DB.CreateBackup()
	if err != nil {
		ep.fail(c, err)
		return
	}
	ep.Log.WithField("path", path).Info("backup created")
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"path": path}))
}
